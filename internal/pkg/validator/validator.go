package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"buildconnect/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var ErrValidation = apperr.Validation("VALIDATION_ERROR", "Invalid request body")

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}

// Validate struct fields, keyed by json field name.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			out[fe.Field()] = fe.Tag() + "=" + fe.Param()
			continue
		}
		out[fe.Field()] = fe.Tag()
	}
	return out
}

// BindJSON decodes the request body into v, rejecting unknown fields and
// trailing data, then runs struct validation.
func BindJSON(c *gin.Context, v interface{}) error {
	if c.Request.Body == nil {
		return ErrValidation.WithDetails(map[string]string{"_": "empty body"})
	}

	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrValidation.WithDetails(map[string]string{"_": "empty body"})
		}
		return ErrValidation.WithDetails(decodeDetails(err))
	}
	if dec.More() {
		return ErrValidation.WithDetails(map[string]string{"_": "unexpected data after JSON body"})
	}

	if details := Validate(v); details != nil {
		return ErrValidation.WithDetails(details)
	}
	return nil
}

func decodeDetails(err error) map[string]string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return map[string]string{typeErr.Field: fmt.Sprintf("must be %s", typeErr.Type)}
	}

	msg := err.Error()
	if field, ok := strings.CutPrefix(msg, "json: unknown field "); ok {
		return map[string]string{strings.Trim(field, `"`): "unknown field"}
	}
	return map[string]string{"_": msg}
}
