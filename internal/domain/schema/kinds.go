package schema

import "github.com/oliviahealth/Careplan/internal/domain/entity"

// Descriptor constructors. The registry below is the single source of truth
// for the shape of all ten clinical forms.

func required(name string) Field {
	return Field{Name: name, Type: Scalar, Required: true}
}

func optional(name string) Field {
	return Field{Name: name, Type: Scalar}
}

func object(name string, sub ...string) Field {
	return Field{Name: name, Type: Object, Required: true, SubFields: sub}
}

func arrayOf(name string, sub ...string) Field {
	return Field{Name: name, Type: ArrayOfObject, SubFields: sub}
}

// Shared sub-schemas.
var (
	medicationSub = []string{"medication", "dose", "prescriber", "notes"}
	substanceSub  = []string{"ever_used", "used_during_pregnancy", "date_last_used", "notes"}
	referralSub   = []string{"status", "organization", "organization_contact_information"}
)

var registry = map[entity.RecordKind]Schema{
	entity.KindMaternalDemographics: {
		Kind: entity.KindMaternalDemographics,
		Fields: []Field{
			required("name"),
			required("date_of_birth"),
			required("current_living_arrangement"),
			required("street_address"),
			required("city"),
			required("state"),
			required("zip_code"),
			required("county"),
			required("primary_phone_number"),
			required("phone_type"),
			optional("emergency_contact"),
			required("emergency_contact_phone"),
			required("relationship"),
			required("marital_status"),
			required("insurance_plan"),
			required("effective_date"),
			required("subscriber_id"),
			required("group_id"),
		},
	},

	entity.KindMaternalMedicalHistory: {
		Kind: entity.KindMaternalMedicalHistory,
		Fields: []Field{
			required("gestational_age"),
			required("anticipated_delivery_date"),
			required("planned_mode_delivery"),
			required("actual_mode_delivery"),
			required("attended_postpartum_visit"),
			optional("postpartum_visit_location"),
			optional("postpartum_visit_date"),
			required("total_num_pregnancies"),
			required("total_num_live_births"),
			required("total_num_children_with_mother"),
			required("prior_complications"),
			required("med_problems_diagnosis"),
			arrayOf("current_medication_list", "name", "dose", "prescriber", "notes"),
			optional("notes"),
		},
	},

	entity.KindPsychiatricHistory: {
		Kind: entity.KindPsychiatricHistory,
		Fields: []Field{
			arrayOf("diagnosis", "provider", "phone_number", "diagnosis", "date_of_diagnosis", "taking_medication"),
			optional("notes"),
		},
	},

	entity.KindSubstanceUseHistory: {
		Kind: entity.KindSubstanceUseHistory,
		Fields: []Field{
			object("alcohol", substanceSub...),
			object("benzodiazepines", substanceSub...),
			object("cocaine", substanceSub...),
			object("heroin", substanceSub...),
			object("kush", substanceSub...),
			object("marijuana", substanceSub...),
			object("methamphetamine", substanceSub...),
			object("prescription_drugs", substanceSub...),
			object("tobacco", substanceSub...),
			arrayOf("other_drugs", append([]string{"name"}, substanceSub...)...),
			optional("notes"),
		},
	},

	entity.KindMedicalServicesForSubstanceUse: {
		Kind: entity.KindMedicalServicesForSubstanceUse,
		Fields: []Field{
			required("mat_engaged"),
			optional("date_used_mat"),
			arrayOf("medications", "medication", "dose"),
			optional("mat_clinic_name"),
			optional("mat_clinic_phone"),
			required("used_addiction_medicine_services"),
			optional("date_used_medicine_service"),
			optional("addiction_medicine_clinic"),
			optional("addiction_medicine_clinic_phone"),
		},
	},

	entity.KindDrugScreeningResults: {
		Kind: entity.KindDrugScreeningResults,
		Fields: []Field{
			arrayOf("tests",
				"drug_name", "date_collected", "provider", "provider_location",
				"results", "specify_results", "provider_reviewed", "date_reviewed"),
		},
	},

	entity.KindFamilyAndSupports: {
		Kind: entity.KindFamilyAndSupports,
		Fields: []Field{
			arrayOf("people_living_in_home", "person", "date_of_birth", "relation"),
			arrayOf("clients_children_not_living_in_home", "person", "date_of_birth", "caregiver", "caregiver_number"),
			required("current_support_system"),
			required("strength_of_client_and_support_system"),
			required("goals"),
			optional("notes"),
		},
	},

	entity.KindInfantInformation: {
		Kind: entity.KindInfantInformation,
		Fields: []Field{
			required("child_name"),
			required("date_of_birth"),
			required("sex"),
			required("birth_weight"),
			required("gestational_age_at_birth"),
			required("NICU_stay"),
			optional("NICU_length_of_stay"),
			required("pediatrician_name"),
			required("pediatrician_contact_info"),
			required("infant_urine_drug_screening_at_birth"),
			optional("infant_urine_drug_screening_at_birth_specify"),
			required("meconium_results"),
			optional("meconium_results_specify"),
			required("neonatal_opiod_withdraw"),
			optional("neonatal_opiod_withdraw_treatment_method"),
			required("DX_problems_additional_information"),
			object("infant_care_needs_items",
				"breast_pump", "breast_pump_notes",
				"breastfeeding_support", "breastfeeding_support_notes",
				"car_seat", "car_seat_notes",
				"childcare", "childcare_notes",
				"clothing", "clothing_notes",
				"crib", "crib_notes",
				"diapers", "diapers_notes",
				"infant_formula", "infant_formula_notes",
				"infant_stroller", "infant_stroller_notes",
				"other", "other_name", "other_notes"),
			required("where_will_baby_sleep"),
			optional("where_will_baby_sleep_specify"),
			optional("infant_care_needs_additional_notes"),
			arrayOf("infant_medications", medicationSub...),
			optional("infant_medication_notes"),
			required("father_name"),
			required("father_date_of_birth"),
			required("father_street_address"),
			required("father_city"),
			required("father_state"),
			required("father_zip_code"),
			required("father_primary_phone_numbers"),
			required("father_involved_in_babys_life"),
			optional("father_involved_in_babys_life_comments"),
			optional("father_notes"),
		},
	},

	entity.KindReferralsAndServices: {
		Kind: entity.KindReferralsAndServices,
		Fields: []Field{
			object("parenting_classes", referralSub...),
			object("transportation_services", referralSub...),
			object("ssi_disability", referralSub...),
			object("temporary_assistance_for_needy_families", referralSub...),
			object("personal_safety", referralSub...),
			object("home_visitation_program", referralSub...),
			object("housing_assistance", referralSub...),
			object("healthy_start_program", referralSub...),
			arrayOf("support_services_other", append([]string{"name"}, referralSub...)...),
			object("breastfeeding_support", referralSub...),
			object("local_food_pantries", referralSub...),
			object("snap", referralSub...),
			object("women_infants_children", referralSub...),
			arrayOf("food_nutrition_other", append([]string{"name"}, referralSub...)...),
			object("health_insurance_enrollment", referralSub...),
			object("prenatal_healthcare", referralSub...),
			object("family_planning", referralSub...),
			object("primary_care", referralSub...),
			object("mental_health_counseling", referralSub...),
			object("smoking_cessation", referralSub...),
			arrayOf("healthcare_other", append([]string{"name"}, referralSub...)...),
			object("residential", referralSub...),
			object("outpatient", referralSub...),
			object("caring_for_two_program", referralSub...),
			object("the_cradles_program", referralSub...),
			object("recovery_support_services", referralSub...),
			object("medication_assisted_treatment", referralSub...),
			arrayOf("substance_use_treatment_other", append([]string{"name"}, referralSub...)...),
			object("early_childhood_intervention", referralSub...),
			object("early_head_start", referralSub...),
			object("NCI_childcare_subsidy", referralSub...),
			object("pediatrician_primary_care", referralSub...),
			object("safe_sleep_education", referralSub...),
			arrayOf("child_related_other", append([]string{"name"}, referralSub...)...),
			object("child_protective_service", referralSub...),
			object("legal_aid", referralSub...),
			object("specialty_court", referralSub...),
			arrayOf("legal_assistance_other", append([]string{"name"}, referralSub...)...),
			optional("additional_notes"),
		},
	},

	entity.KindRelapsePreventionPlan: {
		Kind: entity.KindRelapsePreventionPlan,
		Fields: []Field{
			required("three_things_that_trigger_desire_to_use"),
			required("three_skills_you_enjoy"),
			required("three_people_to_talk_to"),
			arrayOf("safe_caregivers", "name", "contact_number", "relationship"),
			required("have_naloxone"),
			optional("comments"),
		},
	},
}
