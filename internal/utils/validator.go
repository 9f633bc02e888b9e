package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorDetail describes a single failed field.
type ValidationErrorDetail struct {
	Field    string      `json:"field"`
	Message  string      `json:"message"`
	Expected string      `json:"expected"`
	Received interface{} `json:"received"`
}

// ValidationErrorData is the data payload of a validation error response.
type ValidationErrorData struct {
	Errors []ValidationErrorDetail `json:"errors"`
}

// BindAndValidate binds the request body to obj and validates it. On
// failure it writes a formatted 400 response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var details []ValidationErrorDetail

		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, e := range errs {
				detail := ValidationErrorDetail{
					Field:    e.Field(),
					Message:  fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", e.Field(), e.Tag()),
					Expected: e.Param(),
					Received: e.Value(),
				}
				if detail.Expected == "" {
					detail.Expected = e.Tag()
				}
				switch e.Tag() {
				case "required":
					detail.Message = fmt.Sprintf("Field '%s' is required", e.Field())
					detail.Expected = "not null"
				case "min":
					detail.Message = fmt.Sprintf("Field '%s' must have at least %s items or characters", e.Field(), e.Param())
				case "oneof":
					detail.Message = fmt.Sprintf("Field '%s' must be one of: %s", e.Field(), e.Param())
				}
				details = append(details, detail)
			}
		} else if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
			details = append(details, ValidationErrorDetail{
				Field:    jsonErr.Field,
				Message:  fmt.Sprintf("Field '%s' has invalid type", jsonErr.Field),
				Expected: jsonErr.Type.String(),
				Received: jsonErr.Value,
			})
		} else {
			details = append(details, ValidationErrorDetail{
				Field:    "body",
				Message:  "Malformed JSON or invalid request body",
				Expected: "valid JSON",
				Received: "invalid",
			})
		}

		c.JSON(http.StatusBadRequest, Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request parameters",
			Data:    ValidationErrorData{Errors: details},
		})
		return false
	}
	return true
}
