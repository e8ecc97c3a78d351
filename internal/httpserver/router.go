package httpserver

import (
	"context"
	"log"

	"github.com/Bart563/KBZ-Computers/internal/domain"
	alertsvc "github.com/Bart563/KBZ-Computers/internal/service/alert"
	cartsvc "github.com/Bart563/KBZ-Computers/internal/service/cart"
	catalogsvc "github.com/Bart563/KBZ-Computers/internal/service/catalog"
	checkoutsvc "github.com/Bart563/KBZ-Computers/internal/service/checkout"
	customersvc "github.com/Bart563/KBZ-Computers/internal/service/customer"
	ordersvc "github.com/Bart563/KBZ-Computers/internal/service/order"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
)

// Deps carries the services the router needs. Everything is injected
// so handler tests can substitute stubs.
type Deps struct {
	CatalogSvc  *catalogsvc.Service
	CartSvc     *cartsvc.Service
	ListSvc     listService
	CheckoutSvc *checkoutsvc.Service
	OrderSvc    *ordersvc.Service
	CustomerSvc *customersvc.Service
	AlertSvc    *alertsvc.Service
}

type listService interface {
	List(ctx context.Context, kind domain.ListKind, userID string) ([]domain.ListEntry, error)
	Toggle(ctx context.Context, kind domain.ListKind, userID, productID string) ([]domain.ListEntry, error)
	Remove(ctx context.Context, kind domain.ListKind, userID, productID string) ([]domain.ListEntry, error)
	Clear(ctx context.Context, kind domain.ListKind, userID string) error
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, docs *mongo.Client, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db, docs))

	api := router.Group("/api")
	{
		api.POST("/register", registerHandler(deps.CustomerSvc))
		api.POST("/login", loginHandler(deps.CustomerSvc))

		api.GET("/products", listProductsHandler(deps.CatalogSvc))
		api.GET("/products/compare", compareTableHandler(deps.CatalogSvc))
		api.GET("/products/:id", getProductHandler(deps.CatalogSvc))
	}

	auth := router.Group("/api", authMiddleware(deps.CustomerSvc))
	{
		auth.GET("/profile", profileHandler(deps.CustomerSvc))
		auth.PUT("/profile", updateProfileHandler(deps.CustomerSvc))

		auth.GET("/cart", getCartHandler(deps.CartSvc))
		auth.POST("/cart", addToCartHandler(deps.CartSvc))
		auth.PUT("/cart/:productId", setCartQuantityHandler(deps.CartSvc))
		auth.DELETE("/cart/:productId", removeCartLineHandler(deps.CartSvc))
		auth.GET("/cart/totals", cartTotalsHandler(deps.CartSvc))

		auth.GET("/wishlist", listEntriesHandler(deps.ListSvc, domain.ListWishlist))
		auth.POST("/wishlist/toggle", toggleEntryHandler(deps.ListSvc, domain.ListWishlist))
		auth.DELETE("/wishlist/:productId", removeEntryHandler(deps.ListSvc, domain.ListWishlist))

		auth.GET("/compare", listEntriesHandler(deps.ListSvc, domain.ListCompare))
		auth.POST("/compare/toggle", toggleEntryHandler(deps.ListSvc, domain.ListCompare))
		auth.DELETE("/compare/:productId", removeEntryHandler(deps.ListSvc, domain.ListCompare))
		auth.POST("/compare/clear", clearEntriesHandler(deps.ListSvc, domain.ListCompare))

		auth.GET("/checkout", checkoutSessionHandler(deps.CheckoutSvc))
		auth.POST("/checkout/address", checkoutAddressHandler(deps.CheckoutSvc))
		auth.POST("/checkout/payment", checkoutPaymentHandler(deps.CheckoutSvc))
		auth.POST("/checkout/back", checkoutBackHandler(deps.CheckoutSvc))
		auth.POST("/checkout/place", checkoutPlaceHandler(deps.CheckoutSvc))

		auth.GET("/orders", listOrdersHandler(deps.OrderSvc))
		auth.GET("/orders/:orderId", getOrderHandler(deps.OrderSvc))

		auth.GET("/alerts", listAlertsHandler(deps.AlertSvc))
		auth.POST("/alerts", createAlertHandler(deps.AlertSvc))
		auth.DELETE("/alerts/:alertId", deactivateAlertHandler(deps.AlertSvc))
	}

	return router
}
