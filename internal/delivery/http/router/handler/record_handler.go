package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "github.com/oliviahealth/Careplan/internal/delivery/context"
	"github.com/oliviahealth/Careplan/internal/delivery/http/response"
	"github.com/oliviahealth/Careplan/internal/domain/entity"
	domainerrors "github.com/oliviahealth/Careplan/internal/domain/errors"
	"github.com/oliviahealth/Careplan/internal/usecase"
)

// RecordHandler serves all ten clinical form kinds. Every method is a
// factory producing an echo.HandlerFunc bound to one kind, so the router
// can register the per-kind routes from a single loop.
type RecordHandler struct {
	uc     usecase.RecordUsecase
	logger *slog.Logger
}

// NewRecordHandler is the constructor for RecordHandler, injected by Fx.
func NewRecordHandler(uc usecase.RecordUsecase, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		uc:     uc,
		logger: logger,
	}
}

// recordResponse flattens the payload and the record metadata into one
// object, mirroring how the form tables store them.
func recordResponse(record *entity.Record) map[string]any {
	body := make(map[string]any, len(record.Payload)+4)
	for key, value := range record.Payload {
		body[key] = value
	}
	body["id"] = record.ID.String()
	body["user_id"] = record.UserID.String()
	body["date_created"] = record.DateCreated.Format(time.RFC3339)
	body["date_last_modified"] = record.DateLastModified.Format(time.RFC3339)

	return body
}

// Add returns the handler creating a new record of the kind.
func (h *RecordHandler) Add(kind entity.RecordKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := deliverycontext.GetUserID(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		var payload entity.Payload
		if err := c.Bind(&payload); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Request body must be a JSON object")
		}

		record, err := h.uc.Create(c.Request().Context(), usecase.CreateRecordInput{
			OwnerID: userID,
			Kind:    kind,
			Payload: payload,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusCreated, recordResponse(record), "Record created successfully")
	}
}

// Get returns the handler fetching one record of the kind by id.
func (h *RecordHandler) Get(kind entity.RecordKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := deliverycontext.GetUserID(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		recordID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return domainerrors.ErrRecordNotFound
		}

		record, err := h.uc.Get(c.Request().Context(), userID, kind, recordID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, recordResponse(record), "")
	}
}

// List returns the handler fetching every record of the kind owned by the
// authenticated account.
func (h *RecordHandler) List(kind entity.RecordKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := deliverycontext.GetUserID(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		records, err := h.uc.List(c.Request().Context(), userID, kind)
		if err != nil {
			return errors.WithStack(err)
		}

		body := make([]map[string]any, 0, len(records))
		for _, record := range records {
			body = append(body, recordResponse(record))
		}

		return response.Success(c, http.StatusOK, body, "")
	}
}

// Update returns the handler replacing one record's payload wholesale.
func (h *RecordHandler) Update(kind entity.RecordKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := deliverycontext.GetUserID(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		recordID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return domainerrors.ErrRecordNotFound
		}

		var payload entity.Payload
		if err := c.Bind(&payload); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Request body must be a JSON object")
		}

		record, err := h.uc.Update(c.Request().Context(), usecase.UpdateRecordInput{
			OwnerID:  userID,
			Kind:     kind,
			RecordID: recordID,
			Payload:  payload,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, recordResponse(record), "Record updated successfully")
	}
}

// Delete returns the handler removing one record of the kind.
func (h *RecordHandler) Delete(kind entity.RecordKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := deliverycontext.GetUserID(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		recordID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return domainerrors.ErrRecordNotFound
		}

		if err := h.uc.Delete(c.Request().Context(), userID, kind, recordID); err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, nil, "Record deleted successfully")
	}
}
