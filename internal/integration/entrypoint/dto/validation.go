// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"errors"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// maxAmountDecimals is the number of fractional digits a monetary amount may carry.
const maxAmountDecimals = 2

// RegisterValidators installs the custom binding rules on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}

	// Struct-typed fields are not validated directly, so decimals are presented as strings.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(decimal.Decimal); ok {
			return val.String()
		}
		return nil
	}, decimal.Decimal{})

	return v.RegisterValidation("decimal_amount", validateDecimalAmount)
}

// validateDecimalAmount accepts non-negative amounts with at most two decimal places.
func validateDecimalAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	if amount.IsNegative() {
		return false
	}
	return amount.Equal(amount.Truncate(maxAmountDecimals))
}
