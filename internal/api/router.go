package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskforge/todo-system/internal/api/handler"
	"github.com/taskforge/todo-system/internal/api/middleware"
	"github.com/taskforge/todo-system/internal/core/auth"
	"github.com/taskforge/todo-system/internal/core/ports"
	"github.com/taskforge/todo-system/internal/core/service"
	mongorepo "github.com/taskforge/todo-system/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, codec *auth.TokenCodec, notifier ports.NotificationQueue, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("todo"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	taskRepo := mongorepo.NewTaskRepository(db)

	hasher := auth.NewHasher()
	resolver := auth.NewResolver(codec, userRepo)

	authService := service.NewAuthService(userRepo, hasher, codec, log)
	userService := service.NewUserService(userRepo, hasher, notifier, log)
	taskService := service.NewTaskService(taskRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)
	authMiddleware := middleware.Auth(resolver)

	v1 := e.Group("/api/v1")

	// --- Login ---
	v1.POST("/login/access-token", authHandler.Login)

	// --- Users ---
	// Registration is open; everything else needs a bearer token.
	users := v1.Group("/users")
	users.POST("", userHandler.Register)

	usersAuthed := users.Group("", authMiddleware)
	usersAuthed.GET("", userHandler.List)
	usersAuthed.GET("/me", userHandler.GetMe)
	usersAuthed.PUT("/me", userHandler.PutMe)
	usersAuthed.PATCH("/me", userHandler.PatchMe)
	usersAuthed.GET("/:id", userHandler.Get)
	usersAuthed.PUT("/:id", userHandler.Put)
	usersAuthed.PATCH("/:id", userHandler.Patch)
	usersAuthed.DELETE("/:id", userHandler.Delete)

	// --- Tasks ---
	tasks := v1.Group("/tasks", authMiddleware)
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Put)
	tasks.PATCH("/:id", taskHandler.Patch)
	tasks.DELETE("/:id", taskHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Ready)  // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
