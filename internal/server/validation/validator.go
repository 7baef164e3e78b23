package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/domunity/backend/internal/common"
	"github.com/go-playground/validator/v10"
)

// rules maps custom struct tags to the rule functions that both decide
// validity and supply the user-facing message.
var rules = map[string]func(string) error{
	"email_address":   Email,
	"phone_number":    Phone,
	"person_name":     Name,
	"strong_password": Password,
	"iso_date":        isoDate,
}

// Validator checks request structs. Built-in tags take their message from a
// `msg` tag of the form "tag:message|tag:message".
//
//	type offer struct {
//		City string `validate:"not_blank" msg:"not_blank:City cannot be empty"`
//	}
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	for tag, rule := range rules {
		rule := rule
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return rule(fl.Field().String()) == nil
		})
	}
	_ = v.RegisterValidation("not_blank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &Validator{v: v}
}

// Struct validates s and returns the first failing field, in declaration
// order, as an invalid-argument error.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate: %w", err)
	}

	fe := fieldErrs[0]
	if rule, ok := rules[fe.Tag()]; ok {
		if ruleErr := rule(fmt.Sprint(fe.Value())); ruleErr != nil {
			return ruleErr
		}
	}
	if msg := tagMessage(s, fe.StructField(), fe.Tag()); msg != "" {
		return common.InvalidArgument(msg)
	}
	return common.InvalidArgument(fmt.Sprintf("%s is invalid", fe.Field()))
}

func tagMessage(s any, field, tag string) string {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}

	sf, ok := t.FieldByName(field)
	if !ok {
		return ""
	}

	for _, entry := range strings.Split(sf.Tag.Get("msg"), "|") {
		if name, msg, ok := strings.Cut(entry, ":"); ok && name == tag {
			return msg
		}
	}
	return ""
}
