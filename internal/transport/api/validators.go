package api

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

// validateMoney проверяет, что сумма положительна и содержит не больше двух знаков после запятой.
func validateMoney(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	if !ok {
		return false
	}
	return d.IsPositive() && domain.IsMoney(d)
}

// validatePrice проверяет десятичный коэффициент: больше единицы и укладывается в формат хранения.
func validatePrice(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && d.GreaterThan(decimal.NewFromInt(1)) && domain.IsValidPrice(d)
}

// decimalField достает значение поля, приведенное decimalTypeFunc к строке.
func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// decimalTypeFunc позволяет валидатору работать с decimal.Decimal как со строкой.
func decimalTypeFunc(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
	}
	v.RegisterCustomTypeFunc(decimalTypeFunc, decimal.Decimal{})

	validations := map[string]validator.Func{
		"max_bytes": validateMaxBytes,
		"money":     validateMoney,
		"price":     validatePrice,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("validator registration: %s", err.Error())
		}
	}
	return nil
}
