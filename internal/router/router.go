package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"burritoapi/internal/auth"
	"burritoapi/internal/config"
	"burritoapi/internal/handler"
	"burritoapi/internal/logger"
	"burritoapi/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg config.Config,
	log *logger.Logger,
	tokens auth.TokenService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	burritoHandler *handler.BurritoHandler,
) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(requestLogger(log))
	e.Use(contextLogger(log))

	e.Validator = &CustomValidator{}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if cfg.StaticDir != "" {
		e.Static("/", cfg.StaticDir)
	}

	requireAuth := auth.Middleware(tokens)

	// Public routes
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.GET("/burritos", burritoHandler.List)
	e.GET("/burritos/:id", burritoHandler.Get)
	e.GET("/api/search", burritoHandler.Search)

	// Burrito mutations
	e.POST("/burritos", burritoHandler.Create, requireAuth)
	e.PUT("/burritos/:id", burritoHandler.Replace, requireAuth)
	e.PATCH("/burritos/:id", burritoHandler.Patch, requireAuth)
	e.DELETE("/burritos/:id", burritoHandler.Delete, requireAuth)
	e.PATCH("/burritos/:id/like", burritoHandler.Like, requireAuth)
	e.PATCH("/burritos/:id/dislike", burritoHandler.Dislike, requireAuth)

	// Current user
	me := e.Group("/users/me", requireAuth)
	me.GET("", userHandler.GetMe)
	me.PATCH("", userHandler.UpdateMe)
	me.PATCH("/password", userHandler.ChangePassword)
	me.DELETE("", userHandler.DeleteMe)
}

// requestLogger logs one line per request through zerolog.
func requestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

// contextLogger attaches a logger carrying the request id to the request context.
func contextLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqLog := log.With().
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Logger()
			req := c.Request()
			c.SetRequest(req.WithContext(reqLog.WithContext(req.Context())))
			return next(c)
		}
	}
}

// CustomValidator adapts the model validator to echo.
type CustomValidator struct{}

// Validate implements echo.Validator interface. Failures are *errors.ValidationError.
func (cv *CustomValidator) Validate(i interface{}) error {
	return model.ValidateStruct(i).Err()
}
