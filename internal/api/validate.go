package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-shoppinglist/internal/service"
)

// validate is shared by all handlers; validator.Validate is safe for
// concurrent use once configured.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report JSON field names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// A recipe ID is a UUID or the "unknown" sentinel.
	if err := v.RegisterValidation("recipe_id", func(fl validator.FieldLevel) bool {
		id := strings.TrimSpace(fl.Field().String())
		if id == "" || id == service.UnknownRecipe {
			return true
		}
		_, err := uuid.Parse(id)
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// validationMessage turns validator output into one readable line such as
// "lines[2].name is required when original_text is missing".
func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, fieldPath(e)+" "+friendlyMessage(e))
	}
	return strings.Join(msgs, "; ")
}

// fieldPath drops the request struct name from the namespace.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return fmt.Sprintf("is required when %s is missing", jsonName(e.Param()))
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "recipe_id":
		return fmt.Sprintf("must be a UUID or %q", service.UnknownRecipe)
	default:
		return "is invalid"
	}
}

// jsonName maps the struct field names used in cross-field tags back to
// their JSON spelling.
func jsonName(field string) string {
	switch field {
	case "Name":
		return "name"
	case "OriginalText":
		return "original_text"
	default:
		return field
	}
}
