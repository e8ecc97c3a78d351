package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Bart563/KBZ-Computers/internal/config"
	"github.com/Bart563/KBZ-Computers/internal/db"
	"github.com/Bart563/KBZ-Computers/internal/httpserver"
	"github.com/Bart563/KBZ-Computers/internal/payment"
	"github.com/Bart563/KBZ-Computers/internal/pricing"
	alertrepo "github.com/Bart563/KBZ-Computers/internal/repository/alert"
	cartrepo "github.com/Bart563/KBZ-Computers/internal/repository/cart"
	checkoutrepo "github.com/Bart563/KBZ-Computers/internal/repository/checkout"
	custrepo "github.com/Bart563/KBZ-Computers/internal/repository/customer"
	listrepo "github.com/Bart563/KBZ-Computers/internal/repository/list"
	orderrepo "github.com/Bart563/KBZ-Computers/internal/repository/order"
	productrepo "github.com/Bart563/KBZ-Computers/internal/repository/product"
	alertsvc "github.com/Bart563/KBZ-Computers/internal/service/alert"
	cartsvc "github.com/Bart563/KBZ-Computers/internal/service/cart"
	catalogsvc "github.com/Bart563/KBZ-Computers/internal/service/catalog"
	checkoutsvc "github.com/Bart563/KBZ-Computers/internal/service/checkout"
	customersvc "github.com/Bart563/KBZ-Computers/internal/service/customer"
	listsvc "github.com/Bart563/KBZ-Computers/internal/service/list"
	ordersvc "github.com/Bart563/KBZ-Computers/internal/service/order"
)

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags)
	cfg := config.FromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	docs, err := db.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatalf("connect mongo: %v", err)
	}
	defer func() {
		if err := docs.Disconnect(context.Background()); err != nil {
			logger.Printf("mongo disconnect: %v", err)
		}
	}()
	mongoDB := docs.Database(cfg.MongoDatabase)

	policy := pricing.Policy{
		FreeShippingThresholdCents: cfg.Pricing.FreeShippingThresholdCents,
		ShippingFeeCents:           cfg.Pricing.ShippingFeeCents,
		TaxRateBasisPoints:         cfg.Pricing.TaxRateBasisPoints,
		CouponCode:                 cfg.Pricing.CouponCode,
		CouponBasisPoints:          cfg.Pricing.CouponBasisPoints,
	}

	products := productrepo.NewPostgres(pool, logger)
	customers := custrepo.NewPostgres(pool, logger)
	carts := cartrepo.NewPostgres(pool)
	sessions := checkoutrepo.NewPostgres(pool)
	orders := orderrepo.NewPostgres(pool, logger)
	lists := listrepo.NewMongo(mongoDB, logger)
	alerts := alertrepo.NewMongo(mongoDB, logger)

	cartService := cartsvc.New(carts, products, policy)

	deps := httpserver.Deps{
		CatalogSvc:  catalogsvc.New(products),
		CartSvc:     cartService,
		ListSvc:     listsvc.New(lists, cfg.ListTimeout, cfg.CompareMax),
		CheckoutSvc: checkoutsvc.New(sessions, cartService, products, orders, payment.NewStub(logger)),
		OrderSvc:    ordersvc.New(orders),
		CustomerSvc: customersvc.New(customers, cfg.JWTSecret, cfg.TokenTTL),
		AlertSvc:    alertsvc.New(alerts, products, cfg.ListTimeout),
	}

	srv := httpserver.New(cfg.HTTPAddr, logger, pool, docs, deps)

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("listening on %s", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server: %v", err)
		}
	case <-ctx.Done():
		logger.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Printf("shutdown: %v", err)
		}
	}
}
