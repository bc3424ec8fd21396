package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"startupbridge/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// enumTags map custom tags to the fixed value sets they accept
var enumTags = map[string][]string{
	"user_role":      models.UserRoles,
	"post_type":      models.PostTypes,
	"activity_level": models.ActivityLevels,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names so messages match the request body
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.IsValidRole(fl.Field().String())
	})
	v.RegisterValidation("post_type", func(fl validator.FieldLevel) bool {
		return models.IsValidPostType(fl.Field().String())
	})
	v.RegisterValidation("activity_level", func(fl validator.FieldLevel) bool {
		return models.IsValidActivityLevel(fl.Field().String())
	})

	return v
}

// FieldError describes one failed rule
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// Message renders the failure for API clients
func (f FieldError) Message() string {
	if values, ok := enumTags[f.Tag]; ok {
		return fmt.Sprintf("%s must be one of [%s]", f.Field, strings.Join(values, " "))
	}

	switch f.Tag {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", f.Field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", f.Field, f.Param)
	case "min":
		return fmt.Sprintf("%s must be at least %s", f.Field, f.Param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", f.Field, f.Param)
	case "gte", "gt":
		return fmt.Sprintf("%s must be greater than or equal to %s", f.Field, f.Param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", f.Field)
	default:
		return fmt.Sprintf("field '%s' failed validation: %s", f.Field, f.Tag)
	}
}

// Errors is returned by ValidateStruct when one or more rules fail
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, f := range e {
		msgs = append(msgs, f.Message())
	}
	return strings.Join(msgs, "; ")
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if s == nil {
		return nil
	}

	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return fmt.Errorf("validator: expected a struct, got %T", s)
	}

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make(Errors, 0, len(ve))
		for _, e := range ve {
			out = append(out, FieldError{Field: fieldPath(e), Tag: e.Tag(), Param: e.Param()})
		}
		return out
	}

	return fmt.Errorf("validation failed: %w", err)
}

// fieldPath drops the struct name prefix from the namespace
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}
