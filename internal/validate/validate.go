// Package validate wraps the request validator with english translations so
// handlers can turn tag failures into field-level error messages.
package validate

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// FieldError describes a single failed validation on a named field.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ = uni.GetTranslator("en")

	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}
}

// Struct validates v against its validate tags and returns one FieldError per
// failed field, or nil when v is valid.
func Struct(v any) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Msg: err.Error()}}
	}

	fieldErrs := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field: fe.Field(),
			Msg:   fe.Translate(translator),
		})
	}

	return fieldErrs
}
