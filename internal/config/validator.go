package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// newValidator builds the validator used by Load. Field names in error
// messages come from the mapstructure tags so they match the YAML keys, and
// the template_file validation guards the optional template override paths.
func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	universalTranslator := ut.New(enLocale, enLocale)
	translator, _ := universalTranslator.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, nil, fmt.Errorf("enTranslations.RegisterDefaultTranslations > %w", err)
	}

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("template_file", isReadableTemplate); err != nil {
		return nil, nil, fmt.Errorf("validate.RegisterValidation > %w", err)
	}
	if err := validate.RegisterTranslation("template_file", translator, func(translator ut.Translator) error {
		return translator.Add("template_file", "{0} must point to a readable template file", true)
	}, func(translator ut.Translator, fieldError validator.FieldError) string {
		message, _ := translator.T("template_file", strings.TrimPrefix(fieldError.Namespace(), "Config."))
		return message
	}); err != nil {
		return nil, nil, fmt.Errorf("validate.RegisterTranslation > %w", err)
	}

	return validate, translator, nil
}

// isReadableTemplate accepts a path to an existing regular file the process
// can open, so a bad template override fails at startup instead of at render
// time.
func isReadableTemplate(fieldLevel validator.FieldLevel) bool {
	path := fieldLevel.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	file, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = file.Close()
	return true
}
