package router

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/vladimirfomene/raggnet/internal/auth"
	"github.com/vladimirfomene/raggnet/internal/config"
	"github.com/vladimirfomene/raggnet/internal/handler"
	"github.com/vladimirfomene/raggnet/internal/validate"
)

// Register wires routes, guards, and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	guards *auth.Guards,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	resourceHandler *handler.ResourceHandler,
	adminHandler *handler.AdminHandler,
) {
	// Request logging only outside production
	if !cfg.IsProduction() {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.Recover())

	e.Validator = validate.NewCustomValidator()
	e.HTTPErrorHandler = errorHandler(cfg)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Users
	e.GET("/users", userHandler.ListUsers, guards.AdminRequired())
	e.POST("/users", userHandler.CreateUser)
	e.GET("/users/:id", userHandler.GetUser, validate.RequireValidID, guards.AdminRequired())
	e.PUT("/users/:id", userHandler.UpdateUser, validate.RequireValidID, guards.LoginRequired(), guards.VerifyUser())
	e.DELETE("/users/:id", userHandler.DeleteUser, validate.RequireValidID, guards.LoginRequired(), guards.VerifyUser())

	// Resources
	e.GET("/resources", resourceHandler.ListResources)
	e.POST("/resources", resourceHandler.CreateResource, guards.AdminRequired())
	e.GET("/resources/books", resourceHandler.ListBooks)
	e.GET("/resources/courses", resourceHandler.ListCourses)
	e.GET("/resources/:id", resourceHandler.GetResource, validate.RequireValidID)
	e.PUT("/resources/:id", resourceHandler.UpdateResource, validate.RequireValidID, guards.AdminRequired())
	e.POST("/resources/:id", resourceHandler.ApproveResource, validate.RequireValidID, guards.SuperAdminRequired())
	e.DELETE("/resources/:id", resourceHandler.DeleteResource, validate.RequireValidID, guards.SuperAdminRequired())
	e.GET("/resources/:id/other-resources", resourceHandler.GetOtherResources, validate.RequireValidID)

	// Admins
	e.POST("/admins", adminHandler.CreateAdmin, guards.SuperAdminRequired())
	e.GET("/admins/resources", adminHandler.ListUnapprovedResources, guards.SuperAdminRequired())

	// Auth
	e.POST("/auth/token", authHandler.Login)
	e.PUT("/auth/token", authHandler.Logout)
}

// errorHandler returns the terminal error handler: in production it
// answers with a bare status code and no body; otherwise it logs the
// error and includes a JSON message.
func errorHandler(cfg *config.Config) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Requests that matched no route get a bare 404 in every mode.
		if err == echo.ErrNotFound {
			_ = c.NoContent(http.StatusNotFound)
			return
		}

		code := http.StatusInternalServerError
		var body interface{} = map[string]string{"message": http.StatusText(code)}
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				body = map[string]string{"message": msg}
			} else {
				body = he.Message
			}
		}

		if cfg.IsProduction() {
			_ = c.NoContent(code)
			return
		}

		log.Printf("request error: %v", err)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}
