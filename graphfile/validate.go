package graphfile

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var validate, trans = newValidator()

// newValidator builds the shared validator with the "finite" tag, yaml
// field names and English messages.
func newValidator() (*validator.Validate, ut.Translator) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(err)
	}

	english := en.New()
	uni := ut.New(english, english)
	t, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(v, t); err != nil {
		panic(err)
	}
	err := v.RegisterTranslation("finite", t,
		func(t ut.Translator) error {
			return t.Add("finite", "{0} must be a finite number", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("finite", fe.Field())
			return msg
		},
	)
	if err != nil {
		panic(err)
	}

	return v, t
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Validate checks d and returns ErrInvalidDocument listing every problem.
func (d Document) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	msgs := translateError(verrs, trans)
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

// translateError renders each field error in English, sorted so that the
// message does not depend on map iteration order.
func translateError(verrs validator.ValidationErrors, t ut.Translator) []string {
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, e.Translate(t))
	}
	sort.Strings(msgs)

	return msgs
}
