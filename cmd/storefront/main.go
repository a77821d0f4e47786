package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/craftroots/storefront/internal/catalog"
	"github.com/craftroots/storefront/internal/config"
	"github.com/craftroots/storefront/internal/handler"
	"github.com/craftroots/storefront/internal/middleware"
	"github.com/craftroots/storefront/internal/service"
	"github.com/craftroots/storefront/internal/state"
	"github.com/craftroots/storefront/internal/storage"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	// Storage
	backend, err := storage.NewFileBackend(cfg.Storage.Dir)
	if err != nil {
		log.Error("open storage", "error", err)
		os.Exit(1)
	}
	bridge := storage.NewBridge(backend, log)
	log.Info("storage ready", "dir", cfg.Storage.Dir)

	// Catalog
	products := catalog.New()

	// State containers (hydrate from storage on construction)
	cart := state.NewCart(bridge, log)
	favorites := state.NewFavorites(bridge, log)
	auth := state.NewAuth(bridge, cfg.Auth, log)

	// Services
	checkoutSvc := service.NewCheckoutService(cart, bridge, cfg.Checkout, log)

	// Handlers
	authH := handler.NewAuthHandler(auth)
	productH := handler.NewProductHandler(products)
	cartH := handler.NewCartHandler(cart, products)
	favoritesH := handler.NewFavoritesHandler(favorites, products)
	orderH := handler.NewOrderHandler(checkoutSvc)
	healthH := handler.NewHealthHandler(backend)

	// Router
	router := gin.Default()
	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		authRoutes.POST("/register", authH.Register)
		authRoutes.POST("/login", authH.Login)
		authRoutes.POST("/logout", authH.Logout)
		authRoutes.GET("/session", authH.Session)

		productRoutes := v1.Group("/products")
		productRoutes.GET("", productH.List)
		productRoutes.GET("/:id", productH.GetByID)

		cartRoutes := v1.Group("/cart")
		cartRoutes.GET("", cartH.GetCart)
		cartRoutes.POST("/items", cartH.AddItem)
		cartRoutes.PUT("/items/:id", cartH.UpdateItem)
		cartRoutes.DELETE("/items/:id", cartH.DeleteItem)
		cartRoutes.DELETE("", cartH.Clear)

		favoriteRoutes := v1.Group("/favorites")
		favoriteRoutes.GET("", favoritesH.GetFavorites)
		favoriteRoutes.POST("/toggle", favoritesH.Toggle)
		favoriteRoutes.DELETE("/:id", favoritesH.Delete)
		favoriteRoutes.DELETE("", favoritesH.Clear)

		orderRoutes := v1.Group("/orders", middleware.RequireAuth(auth))
		orderRoutes.POST("/checkout", orderH.Checkout)
		orderRoutes.GET("", orderH.ListOrders)
		orderRoutes.GET("/:id", orderH.GetOrder)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown. State is persisted synchronously on every change,
	// so draining in-flight requests is all that remains.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	log.Info("server stopped")
}
