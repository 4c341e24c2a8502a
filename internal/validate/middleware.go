package validate

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequireValidID rejects requests whose :id path parameter is not a
// 24-hex-character identifier, before any guard or handler runs.
func RequireValidID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !ID(c.Param("id")) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid ID")
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo and registers the domain format tags.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator builds the request validator used by handlers via c.Validate.
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("hexid", func(fl validator.FieldLevel) bool {
		return ID(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return Phone(fl.Field().String())
	})
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return Email(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
