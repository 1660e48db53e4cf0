package httpserver

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"centrodrinks/internal/domain"
	cartsvc "centrodrinks/internal/service/cart"
	customersvc "centrodrinks/internal/service/customer"
	tracksvc "centrodrinks/internal/service/track"
)

type authService interface {
	Register(ctx context.Context, in customersvc.RegisterInput) (*domain.Customer, error)
	Login(ctx context.Context, email, password string) (string, *domain.Customer, error)
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	Authenticate(ctx context.Context, token string) (string, error)
	Logout(ctx context.Context, token string) error
}

type cartService interface {
	View(ctx context.Context, uid string) (*cartsvc.View, error)
	AddProduct(ctx context.Context, uid, productID string) (*domain.CartItem, error)
	ChangeQuantity(ctx context.Context, uid, itemID string, delta int) (*domain.CartItem, bool, error)
	Remove(ctx context.Context, uid, itemID string) error
}

type orderService interface {
	Checkout(ctx context.Context, uid string) (*domain.Order, error)
	List(ctx context.Context, uid string) ([]domain.Order, error)
}

type profileService interface {
	Get(ctx context.Context, uid string) (*domain.Profile, error)
	Save(ctx context.Context, uid string, edits domain.Profile) (*domain.Profile, error)
	SavePhoto(ctx context.Context, uid string, r io.Reader) (string, error)
}

type locationService interface {
	Save(ctx context.Context, uid string, coord domain.Coordinate, address string) (*domain.UserLocation, error)
	Get(ctx context.Context, uid string) (*domain.UserLocation, error)
}

type favoriteService interface {
	Add(ctx context.Context, uid, productID string) (*domain.Favorite, error)
	List(ctx context.Context, uid string) ([]domain.Favorite, error)
	Remove(ctx context.Context, uid, id string) error
}

type trackService interface {
	Estimate(ctx context.Context, uid string) (*tracksvc.Estimate, bool, error)
}

// Deps carries the services the router dispatches to. FilesDir, when set,
// is served under /files so uploaded profile photos resolve.
type Deps struct {
	Auth      authService
	Cart      cartService
	Orders    orderService
	Profiles  profileService
	Locations locationService
	Favorites favoriteService
	Track     trackService
	FilesDir  string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	if deps.FilesDir != "" {
		router.Static("/files", deps.FilesDir)
	}

	router.POST("/signup", signupHandler(deps.Auth))
	router.POST("/login", loginHandler(deps.Auth))
	router.POST("/password-reset", passwordResetHandler(deps.Auth))

	router.GET("/products", productsHandler)

	authed := router.Group("/", authMiddleware(deps.Auth))
	{
		authed.POST("/logout", logoutHandler(deps.Auth))

		authed.GET("/cart", cartViewHandler(deps.Cart))
		authed.POST("/cart/items", cartAddHandler(deps.Cart))
		authed.PATCH("/cart/items/:id/quantity", cartQuantityHandler(deps.Cart))
		authed.DELETE("/cart/items/:id", cartRemoveHandler(deps.Cart))
		authed.POST("/cart/checkout", checkoutHandler(deps.Orders))

		authed.GET("/orders", ordersHandler(deps.Orders))
		authed.GET("/orders/track", trackHandler(deps.Track))

		authed.GET("/profile", profileGetHandler(deps.Profiles))
		authed.PUT("/profile", profilePutHandler(deps.Profiles))
		authed.POST("/profile/photo", profilePhotoHandler(deps.Profiles))

		authed.GET("/location", locationGetHandler(deps.Locations))
		authed.PUT("/location", locationPutHandler(deps.Locations))

		authed.GET("/favorites", favoritesListHandler(deps.Favorites))
		authed.POST("/favorites", favoritesAddHandler(deps.Favorites))
		authed.DELETE("/favorites/:id", favoritesRemoveHandler(deps.Favorites))
	}

	return router, nil
}
