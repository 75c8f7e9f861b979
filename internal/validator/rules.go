package validator

import (
	"log"

	"castingfy/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds the domain enum validations. Registration
// failure is a startup error, not a request error.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-compensation-kind", validateCompensationKind)
	mustRegister("is-prescreen-kind", validatePrescreenKind)
	mustRegister("is-gender", validateGender)
}

// Empty values pass: 'required' is a separate concern.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleTalent, models.UserRoleProducer:
		return true
	default:
		return false
	}
}

func validateCompensationKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.CompensationKind(value) {
	case models.CompensationPaid, models.CompensationUnpaid, models.CompensationDeferred:
		return true
	default:
		return false
	}
}

func validatePrescreenKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.PrescreenKind(value) {
	case models.PrescreenKindText, models.PrescreenKindChoice:
		return true
	default:
		return false
	}
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch value {
	case "", "male", "female", "non_binary", "any":
		return true
	default:
		return false
	}
}
