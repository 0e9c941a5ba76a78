// Package validation binds request payloads through gin and renders failures
// as the API error body.
package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	MinPublishedYear = 1000
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Status  int          `json:"status"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

var (
	registerOnce sync.Once
	hexRGB       = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Register installs the custom rules on gin's validator engine. Safe to call repeatedly.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("notblank", notBlank)
		_ = v.RegisterValidation("pubyear", publishedYear)
		_ = v.RegisterValidation("sortorder", sortOrder)
		_ = v.RegisterValidation("hexrgb", hexColor)
	})
}

func BindAndValidateJSON(c *gin.Context, dst any) bool {
	Register()

	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithBindError(c, err, "invalid request body")
		return false
	}

	return true
}

func BindAndValidateQuery(c *gin.Context, dst any) bool {
	Register()

	if err := c.ShouldBindQuery(dst); err != nil {
		abortWithBindError(c, err, "invalid query parameters")
		return false
	}

	return true
}

// Abort stops the chain with an error body carrying no field errors.
func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Status:  status,
		Code:    code,
		Message: message,
		Errors:  []FieldError{},
	})
}

// AbortField rejects a request over a single field that failed a check made
// after binding.
func AbortField(c *gin.Context, field, rule, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_FAILED",
		Message: "validation failed",
		Errors: []FieldError{
			{Field: field, Rule: rule, Message: message},
		},
	})
}

func abortWithBindError(c *gin.Context, err error, syntaxMessage string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.AbortWithStatusJSON(http.StatusBadRequest, formatValidationErrors(verrs))
		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "INVALID_REQUEST",
		Message: syntaxMessage,
		Errors: []FieldError{
			{
				Field:   "",
				Rule:    "syntax",
				Message: err.Error(),
			},
		},
	})
}

func formatValidationErrors(verrs validator.ValidationErrors) ErrorResponse {
	fields := make([]FieldError, 0, len(verrs))

	for _, fe := range verrs {
		name := toJSONFieldName(fe.Field())
		fields = append(fields, FieldError{
			Field:   name,
			Rule:    fe.Tag(),
			Message: buildMessage(name, fe),
		})
	}

	return ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_FAILED",
		Message: "validation failed",
		Errors:  fields,
	}
}

// fieldName reports json names for bodies and form names for query structs.
func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func toJSONFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func buildMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "pubyear":
		return fmt.Sprintf("%s must be between %d and %d", field, MinPublishedYear, time.Now().Year())
	case "sortorder":
		return field + " must be ASC or DESC"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must not exceed " + fe.Param()
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "hexrgb":
		return field + " must be a color like #1a2b3c"
	case "url":
		return field + " must be a valid URL"
	case "dive":
		return field + " contains an invalid item"
	default:
		return field + " is invalid (" + fe.Tag() + ")"
	}
}

// hexColor accepts #rrggbb only.
func hexColor(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.String && hexRGB.MatchString(fl.Field().String())
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return !field.IsZero()
	}
	return strings.TrimSpace(field.String()) != ""
}

// publishedYear accepts 0 for an unknown year.
func publishedYear(fl validator.FieldLevel) bool {
	var year int64
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		year = fl.Field().Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		year = int64(fl.Field().Uint())
	default:
		return false
	}

	if year == 0 {
		return true
	}
	return year >= MinPublishedYear && year <= int64(time.Now().Year())
}

func sortOrder(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return strings.EqualFold(s, "asc") || strings.EqualFold(s, "desc")
}
