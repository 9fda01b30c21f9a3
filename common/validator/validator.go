package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apierrors "github.com/narender/vending-machine/common/apierrors"
)

// Singleton validator instance
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Money fields are validated through their float value so numeric tags (gte, gt) apply.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// ValidateStruct performs validation on the struct payload.
// Returns nil on success, or an AppError with ErrCodeRequestValidation on failure.
func ValidateStruct(payload any) *apierrors.AppError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors []string
	if vErrs, ok := err.(validator.ValidationErrors); ok {
		for _, vErr := range vErrs {
			validationErrors = append(validationErrors, fmt.Sprintf("Field '%s' failed validation on '%s' tag", vErr.Namespace(), vErr.Tag()))
		}
	} else {
		validationErrors = append(validationErrors, err.Error())
	}

	errMsg := "Validation failed: " + strings.Join(validationErrors, "; ")
	return apierrors.NewApplicationError(apierrors.ErrCodeRequestValidation, errMsg, err)
}
