package api

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// formErrors turns a binding failure into messages for the re-rendered
// form. A request without any query parameters is a blank form and gets
// no messages.
func formErrors(c *gin.Context, err error) []string {
	if len(c.Request.URL.Query()) == 0 {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	out := []string{}
	for _, fe := range validationErrors {
		field := formFieldNames[fe.Field()]
		if field == "" {
			field = fe.Field()
		}
		switch fe.Tag() {
		case "required":
			out = append(out, fmt.Sprintf("%s is required", field))
		case "max":
			out = append(out, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		default:
			out = append(out, fmt.Sprintf("%s is invalid", field))
		}
	}
	return out
}

var formFieldNames = map[string]string{
	"Ticker":     "ticker",
	"TimeSeries": "time_series",
}
