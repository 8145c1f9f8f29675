package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	std     *validator.Validate
	stdOnce sync.Once
)

func registerCommon(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("displayname", "min=2,max=100")
	v.RegisterAlias("hasupper", "containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	v.RegisterAlias("hasdigit", "containsany=0123456789")
}

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags shared with Var.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCommon(v)
	}
}

func get() *validator.Validate {
	stdOnce.Do(func() {
		std = validator.New()
		registerCommon(std)
	})
	return std
}

// Email reports whether s is a syntactically valid email address.
func Email(s string) bool {
	return get().Var(s, "required,email") == nil
}

// DisplayName reports whether s is an acceptable profile name.
func DisplayName(s string) bool {
	return get().Var(s, "required,displayname") == nil
}

// HasUpper reports whether s contains an ASCII uppercase letter.
func HasUpper(s string) bool {
	return get().Var(s, "hasupper") == nil
}

// HasDigit reports whether s contains an ASCII digit.
func HasDigit(s string) bool {
	return get().Var(s, "hasdigit") == nil
}

// Message converts binding/validation errors into one client-facing sentence.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return "Invalid request body"
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return capitalize(fe.Field()) + " " + formatFieldError(fe)
	}

	return "Invalid request body"
}

func formatFieldError(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "is required"
	}
	if param := fe.Param(); param != "" {
		return fmt.Sprintf("failed '%s' with parameter '%s'", fe.Tag(), param)
	}
	return fmt.Sprintf("failed '%s'", fe.Tag())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
