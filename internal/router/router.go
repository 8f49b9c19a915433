package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tasktracker/internal/auth"
	"tasktracker/internal/handler"
	"tasktracker/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	tokenService *auth.TokenService,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// Bearer-token guard. All verification goes through the token service so
	// that every rejection reason collapses to a uniform 401 externally.
	requireToken := echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return tokenService.Verify(tokenString)
		},
	})

	// Identity resolution, once per request: the verified subject is looked
	// up and handed to handlers through the echo context.
	resolveUser := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject, ok := c.Get("user").(uuid.UUID)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			user, err := authService.UserByID(c.Request().Context(), subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			c.Set(handler.CurrentUserKey, user)
			return next(c)
		}
	}

	e.GET("/auth/me", authHandler.Me, requireToken, resolveUser)

	// Task routes (require authentication)
	tasks := e.Group("/tasks", requireToken, resolveUser)
	tasks.POST("/", taskHandler.Create)
	tasks.GET("/", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)
	tasks.POST("/:id/complete", taskHandler.Complete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
