package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	t.Parallel()

	existing := map[string]any{
		"env": map[string]any{
			"serviceName": "careplan",
			"log": map[string]any{
				"pretty": true,
			},
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		name   string
		rawKey string
		want   string
	}{
		{
			name:   "matches existing camelCase key",
			rawKey: "POSTGRES_SSLMODE",
			want:   "postgres.sslMode",
		},
		{
			name:   "nested key alignment",
			rawKey: "ENV_SERVICENAME",
			want:   "env.serviceName",
		},
		{
			name:   "deeply nested key",
			rawKey: "ENV_LOG_PRETTY",
			want:   "env.log.pretty",
		},
		{
			name:   "secret key access",
			rawKey: "SECRETKEY_ACCESS",
			want:   "secretKey.access",
		},
		{
			name:   "unknown key falls back to lowercase",
			rawKey: "HTTP_PORT",
			want:   "http.port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := canonicalizeEnvKey(tt.rawKey, existing)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "servicename", normalizeToken("service-name"))
	assert.Equal(t, "maxrequestbodysize", normalizeToken("maxRequestBodySize"))
}
