package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-turf-booking/models"
	"github.com/go-playground/validator/v10"
)

// Go field names accepted by Validate for partial validation.
const (
	FieldEmail    = "Email"
	FieldPassword = "Password"
	FieldName     = "Name"
	FieldTurfName = "TurfName"
	FieldLocation = "Location"
	FieldPrice    = "Price"
	FieldDate     = "Date"
	FieldTime     = "Time"
)

// InputValidator validates request models against their `validate` struct
// tags using go-playground/validator.
type InputValidator struct {
	validate *validator.Validate
}

// NewInputValidator builds a validator that reports JSON field names and
// knows the "notblank" rule.
func NewInputValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("notblank", validateNotBlank)

	return &InputValidator{validate: v}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Validate checks obj, restricted to the given Go field names when any are passed.
// Only the request models of this service are supported; anything else
// returns ErrUnsupportedType.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.Credentials, *models.Credentials,
		models.NewTurf, *models.NewTurf,
		models.TurfUpdate, *models.TurfUpdate,
		models.NewBooking, *models.NewBooking,
		models.BookingUpdate, *models.BookingUpdate:
	default:
		return ErrUnsupportedType
	}

	if reflect.ValueOf(obj).Kind() == reflect.Ptr && reflect.ValueOf(obj).IsNil() {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		if err = v.checkFields(obj, fields); err != nil {
			return err
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return translateValidationErrors(validationErrs)
	}
	return err
}

func (v *InputValidator) checkFields(obj any, fields []string) error {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	validationErrors := make(ValidationErrors, 0, len(errs))

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "notblank":
			message = fmt.Sprintf("%s must not be blank", err.Field())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("%s must be greater than or equal to %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
