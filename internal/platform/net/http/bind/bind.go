// Package bind decodes request bodies and validates them with go-playground/validator.
// Validation messages are short english sentences naming the json field.
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"

	perr "layoffs/internal/platform/errors"
)

// MaxBody caps a decoded request body; filter documents are tiny
const MaxBody = 64 << 10

// Validator pairs the struct validator with its message translator
type Validator struct {
	v     *validator.Validate
	trans ut.Translator
}

var shared = sync.OnceValue(newValidator)

// Default returns the process wide validator
func Default() *Validator { return shared() }

// short messages override the library defaults; {0} is the field, {1} the tag param
var messages = map[string]string{
	"required": "{0} is required",
	"oneof":    "{0} must be one of: {1}",
	"min":      "{0} must be at least {1}",
	"max":      "{0} must be at most {1}",
	"year":     "{0} must be a four digit year",
}

func newValidator() *Validator {
	loc := en.New()
	trans, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = v.RegisterValidation("year", validYear)
	_ = entrans.RegisterDefaultTranslations(v, trans)

	for tag, text := range messages {
		_ = v.RegisterTranslation(tag, trans,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				param := strings.ReplaceAll(fe.Param(), " ", ", ")
				msg, err := t.T(fe.Tag(), fe.Field(), param)
				if err != nil {
					return fe.Error()
				}
				return msg
			},
		)
	}
	return &Validator{v: v, trans: trans}
}

// jsonName reports fields by their json key so messages match the request
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// validYear accepts "" or exactly four ascii digits
func validYear(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	if len(s) != 4 {
		return false
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Struct validates s; the first failure becomes a Validation error naming its field
func (x *Validator) Struct(s any) error {
	err := x.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "validator misuse")
	}
	fe := verrs[0]
	return perr.WithField(perr.New(perr.ErrorCodeValidation, fe.Translate(x.trans)), fe.Field())
}

// ParseJSON decodes one JSON document into T and validates it. Unknown fields,
// trailing data and bodies over MaxBody are JSON errors. An empty body decodes
// to T's zero value, which still has to pass validation.
func ParseJSON[T any](r *http.Request) (T, error) {
	var dst, zero T
	if r.Body == nil {
		return dst, Default().Struct(dst)
	}
	body := http.MaxBytesReader(nil, r.Body, MaxBody)
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	switch err := dec.Decode(&dst); {
	case errors.Is(err, io.EOF):
	case err != nil:
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return zero, perr.JSONErrf("body exceeds %d bytes", tooBig.Limit)
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	default:
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return zero, perr.JSONErrf("unexpected data after the JSON document")
		}
	}

	if err := Default().Struct(dst); err != nil {
		return zero, err
	}
	return dst, nil
}
