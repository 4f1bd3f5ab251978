package main

import (
	"context"
	"log"
	"net/http"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/core/cache"
	"shoedash-gateway/internal/core/config"
	"shoedash-gateway/internal/core/httpclient"
	"shoedash-gateway/internal/core/logger"
	"shoedash-gateway/internal/core/server"
	authadapter "shoedash-gateway/internal/features/auth/adapters"
	authhandler "shoedash-gateway/internal/features/auth/handler"
	authservice "shoedash-gateway/internal/features/auth/service"
	catalogadapter "shoedash-gateway/internal/features/catalog/adapters"
	cataloghandler "shoedash-gateway/internal/features/catalog/handler"
	couponadapter "shoedash-gateway/internal/features/coupons/adapters"
	couponhandler "shoedash-gateway/internal/features/coupons/handler"
	customeradapter "shoedash-gateway/internal/features/customers/adapters"
	customerhandler "shoedash-gateway/internal/features/customers/handler"
	inventoryadapter "shoedash-gateway/internal/features/inventory/adapters"
	inventoryhandler "shoedash-gateway/internal/features/inventory/handler"
	orderadapter "shoedash-gateway/internal/features/orders/adapters"
	orderhandler "shoedash-gateway/internal/features/orders/handler"
	orderservice "shoedash-gateway/internal/features/orders/service"
	statsadapter "shoedash-gateway/internal/features/stats/adapters"
	statshandler "shoedash-gateway/internal/features/stats/handler"
	statsservice "shoedash-gateway/internal/features/stats/service"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// @title ShoeDash Gateway API
// @version 1.0
// @description Staff dashboard gateway for the shoe shop commerce backend.
// @contact.name API Support
// @contact.email support@shoedash.io
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx := context.Background()

	// Cache and credential storage
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		// The in-memory fallback keeps the session usable; warn and go on.
		l.Warn("Redis unreachable, token storage degrades to in-memory", zap.Error(err))
	} else {
		l.Info("Redis connection verified")
	}

	tokenStore := authadapter.NewDualTokenStore(redisCache, cfg.Auth)

	// Auth provider uses a plain client; the refresh call must never pass
	// through the authenticated transport.
	authProvider := authadapter.NewBackendAuthProvider(cfg.Backend.URL, cfg.Backend.Timeout)
	authSvc := authservice.NewAuthService(authProvider, tokenStore)

	// Authenticated pipeline to the commerce backend
	transport := backend.NewAuthTransport(
		&httpclient.LoggingRoundTripper{Proxied: http.DefaultTransport},
		tokenStore,
		authProvider,
		authSvc.HandleSessionExpired,
	)
	client := backend.NewClient(cfg.Backend.URL, cfg.Backend.Timeout, transport)

	// Sign in with the configured staff account
	if _, err := authSvc.SignIn(ctx, cfg.Auth.Username, cfg.Auth.Password); err != nil {
		l.Fatal("Staff sign-in failed", zap.Error(err))
	}

	// Orders
	orderAdapter := orderadapter.NewBackendOrderAdapter(client)
	orderSvc := orderservice.NewOrderService(orderAdapter)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)
	if err := orderSvc.SyncGraph(ctx); err != nil {
		l.Warn("Initial graph sync failed, using reference configuration", zap.Error(err))
	}

	// Thin proxy features
	authHdl := authhandler.NewAuthHandler(authSvc)
	catalogHdl := cataloghandler.NewCatalogHandler(catalogadapter.NewBackendCatalogAdapter(client))
	inventoryHdl := inventoryhandler.NewInventoryHandler(inventoryadapter.NewBackendInventoryAdapter(client))
	couponHdl := couponhandler.NewCouponHandler(couponadapter.NewBackendCouponAdapter(client))
	customerHdl := customerhandler.NewCustomerHandler(customeradapter.NewBackendCustomerAdapter(client))

	statsSvc := statsservice.NewStatsService(
		statsadapter.NewBackendStatsAdapter(client),
		redisCache,
		cfg.Redis.StatsTTL,
	)
	statsHdl := statshandler.NewStatsHandler(statsSvc)

	// Background jobs
	jobs := cron.New()
	if _, err := jobs.AddFunc(cfg.Jobs.GraphSyncSchedule, func() {
		if err := orderSvc.SyncGraph(context.Background()); err != nil {
			l.Warn("Scheduled graph sync failed", zap.Error(err))
		}
	}); err != nil {
		l.Fatal("Invalid graph sync schedule", zap.Error(err))
	}
	if _, err := jobs.AddFunc(cfg.Jobs.StatsWarmSchedule, func() {
		if err := statsSvc.WarmCurrentMonth(context.Background()); err != nil {
			l.Warn("Scheduled stats warmup failed", zap.Error(err))
		}
	}); err != nil {
		l.Fatal("Invalid stats warmup schedule", zap.Error(err))
	}
	jobs.Start()
	defer jobs.Stop()

	srv := server.New(cfg)
	app := srv.App

	// Session routes
	app.Post("/auth/sign-in", authHdl.SignIn)
	app.Post("/auth/sign-out", authHdl.SignOut)
	app.Get("/auth/me", authHdl.Me)

	// Orders and transition configuration
	app.Get("/orders", orderHdl.ListOrders)
	app.Get("/orders/:id", orderHdl.GetOrder)
	app.Get("/orders/:id/logs", orderHdl.StatusLogs)
	app.Post("/orders/:id/status", authhandler.RequirePermission(authSvc, "orders:write"), orderHdl.UpdateStatus)
	app.Get("/order-statuses", orderHdl.ListStatuses)
	app.Get("/order-statuses/transitions", orderHdl.ListTransitions)
	app.Post("/order-statuses/transitions", authhandler.RequirePermission(authSvc, "statuses:write"), orderHdl.CreateTransition)
	app.Delete("/order-statuses/transitions/:from/:to", authhandler.RequirePermission(authSvc, "statuses:write"), orderHdl.DeleteTransition)

	// Catalog
	app.Get("/products", catalogHdl.ListProducts)
	app.Get("/products/:id", catalogHdl.GetProduct)
	app.Post("/products", authhandler.RequirePermission(authSvc, "catalog:write"), catalogHdl.CreateProduct)
	app.Put("/products/:id", authhandler.RequirePermission(authSvc, "catalog:write"), catalogHdl.UpdateProduct)
	app.Delete("/products/:id", authhandler.RequirePermission(authSvc, "catalog:write"), catalogHdl.DeleteProduct)
	app.Get("/brands", catalogHdl.ListBrands)
	app.Post("/brands", authhandler.RequirePermission(authSvc, "catalog:write"), catalogHdl.CreateBrand)
	app.Delete("/brands/:id", authhandler.RequirePermission(authSvc, "catalog:write"), catalogHdl.DeleteBrand)
	app.Get("/categories", catalogHdl.ListCategories)
	app.Post("/categories", authhandler.RequirePermission(authSvc, "catalog:write"), catalogHdl.CreateCategory)
	app.Delete("/categories/:id", authhandler.RequirePermission(authSvc, "catalog:write"), catalogHdl.DeleteCategory)

	// Inventory
	app.Get("/inventory/stock", inventoryHdl.StockLevels)
	app.Get("/inventory/imports", inventoryHdl.ListPurchaseImports)
	app.Post("/inventory/imports", authhandler.RequirePermission(authSvc, "inventory:write"), inventoryHdl.CreatePurchaseImport)
	app.Get("/inventory/damage-reports", inventoryHdl.ListDamageReports)
	app.Post("/inventory/damage-reports", authhandler.RequirePermission(authSvc, "inventory:write"), inventoryHdl.CreateDamageReport)

	// Coupons
	app.Get("/coupons", couponHdl.ListCoupons)
	app.Post("/coupons", authhandler.RequirePermission(authSvc, "coupons:write"), couponHdl.CreateCoupon)
	app.Delete("/coupons/:id", authhandler.RequirePermission(authSvc, "coupons:write"), couponHdl.DeleteCoupon)

	// Customers and chat
	app.Get("/customers", customerHdl.ListCustomers)
	app.Get("/customers/:id", customerHdl.GetCustomer)
	app.Get("/customers/:id/messages", customerHdl.ListMessages)
	app.Post("/customers/:id/messages", customerHdl.SendMessage)

	// Stats
	app.Get("/stats/revenue", statsHdl.Revenue)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
