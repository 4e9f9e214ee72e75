package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/wepayu/internal/domain"
)

// Validator проверяет запросы и переводит первую ошибку в сообщение для пользователя
type Validator struct {
	validate *validator.Validate
}

// NewValidator создаёт валидатор с тегами для денег и дат
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	for tag, fn := range map[string]validator.Func{
		"notblank": validators.NotBlank,
		"money":    isMoney,
		"nonneg":   isNonNegative,
		"positive": isPositive,
		"date_br":  isDate,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	return &Validator{validate: v}
}

// Struct проверяет запрос, поля проверяются в порядке объявления
func (v *Validator) Struct(req any) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	first := fieldErrs[0]
	if msg, ok := messages[first.Field()+"."+first.Tag()]; ok {
		return msg
	}
	return validationError(first.Error())
}

func isMoney(fl validator.FieldLevel) bool {
	_, err := domain.ParseMoney(fl.Field().String())
	return err == nil
}

func isNonNegative(fl validator.FieldLevel) bool {
	m, err := domain.ParseMoney(fl.Field().String())
	return err != nil || !m.IsNegative()
}

func isPositive(fl validator.FieldLevel) bool {
	m, err := domain.ParseMoney(fl.Field().String())
	return err != nil || m.IsPositive()
}

func isDate(fl validator.FieldLevel) bool {
	_, err := domain.ParseDate(fl.Field().String())
	return err == nil
}
