package flow

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validatorOnce sync.Once
	validate      *validator.Validate
	translator    ut.Translator
)

func inputValidator() (*validator.Validate, ut.Translator) {
	validatorOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		enLocale := en.New()
		trans, _ := ut.New(enLocale, enLocale).GetTranslator("en")
		// Registration only fails on duplicate tags.
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		translator = trans

		// Report fields by their JSON names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate, translator
}

// Validate checks v against its validate tags and returns an ErrValidation
// error listing every invalid field, or nil.
func Validate(op string, v any) error {
	validate, trans := inputValidator()
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return Wrap(ErrValidation, op, err)
	}
	fields := make([]FieldViolation, 0, len(validationErrors))
	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		desc := fe.Translate(trans)
		fields = append(fields, FieldViolation{Field: fe.Field(), Description: desc})
		msgs = append(msgs, desc)
	}
	return &Error{Kind: ErrValidation, Op: op, Msg: strings.Join(msgs, ", "), Fields: fields}
}
