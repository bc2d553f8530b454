// Package api wires the HTTP surface: routing, middleware, validation,
// and error rendering.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/bookverse/bookstore-api/internal/api/handler"
	"github.com/bookverse/bookstore-api/internal/api/middleware"
	"github.com/bookverse/bookstore-api/internal/core/domain"
	"github.com/bookverse/bookstore-api/internal/core/service"
	"github.com/bookverse/bookstore-api/internal/infrastructure/config"
	mongorepo "github.com/bookverse/bookstore-api/internal/infrastructure/db/mongo"
	redisrepo "github.com/bookverse/bookstore-api/internal/infrastructure/db/redis"
)

// NewRouter assembles the full application: repositories over the given
// stores, services on top, handlers on top of those, and all routes with
// their middleware chains.
func NewRouter(db *mongodriver.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echoprometheus.NewMiddleware("bookstore"))

	// Repositories.
	userRepo := mongorepo.NewUserRepository(db)
	bookRepo := mongorepo.NewBookRepository(db)
	orderRepo := mongorepo.NewOrderRepository(db)
	bookCache := redisrepo.NewBookCache(rdb)

	// Services.
	tokenSvc := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := service.NewAuthService(userRepo, tokenSvc, log)
	userSvc := service.NewUserService(userRepo, log)
	bookSvc := service.NewBookService(bookRepo, bookCache, log)
	cartSvc := service.NewCartService(userRepo, bookRepo, log)
	orderSvc := service.NewOrderService(orderRepo, userRepo, bookRepo, log)

	// Handlers.
	authHandler := handler.NewAuthHandler(authSvc, log)
	userHandler := handler.NewUserHandler(userSvc)
	bookHandler := handler.NewBookHandler(bookSvc, log)
	cartHandler := handler.NewCartHandler(cartSvc)
	favHandler := handler.NewFavouriteHandler(cartSvc)
	orderHandler := handler.NewOrderHandler(orderSvc, log)
	healthHandler := handler.NewHealthHandler(db, rdb)

	// Operational endpoints.
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// Public endpoints.
	e.POST("/sign-up", authHandler.SignUp)
	e.POST("/sign-in", authHandler.SignIn)
	e.GET("/get-all-books", bookHandler.GetAll)
	e.GET("/get-recent-books", bookHandler.GetRecent)
	e.GET("/get-book-by-id/:id", bookHandler.GetByID)

	// Authenticated endpoints. Identity comes from the verified token.
	auth := middleware.Auth(tokenSvc)

	e.GET("/get-user-information", userHandler.GetInformation, auth)
	e.PUT("/update-address", userHandler.UpdateAddress, auth)

	e.PUT("/add-to-cart", cartHandler.Add, auth)
	e.PUT("/remove-from-cart/:bookid", cartHandler.Remove, auth)
	e.GET("/get-user-cart", cartHandler.Get, auth)

	e.PUT("/add-book-to-favourite", favHandler.Add, auth)
	e.PUT("/remove-book-from-favourite", favHandler.Remove, auth)
	e.GET("/get-favourite-books", favHandler.Get, auth)

	e.POST("/place-order", orderHandler.Place, auth)
	e.GET("/get-order-history", orderHandler.History, auth)

	// Admin endpoints.
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	e.POST("/add-book", bookHandler.Add, auth, adminOnly)
	e.PUT("/update-book/:id", bookHandler.Update, auth, adminOnly)
	e.DELETE("/delete-book/:id", bookHandler.Delete, auth, adminOnly)
	e.GET("/get-all-orders", orderHandler.ListAll, auth, adminOnly)
	e.PUT("/update-status/:id", orderHandler.UpdateStatus, auth, adminOnly)

	return e
}
