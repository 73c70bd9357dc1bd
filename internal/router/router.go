package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greenbowl/greenbowl-backend/config"
	"github.com/greenbowl/greenbowl-backend/internal/app/controller"
	"github.com/greenbowl/greenbowl-backend/internal/middleware"
)

type Router struct {
	authController     *controller.AuthController
	catalogController  *controller.CatalogController
	cartController     *controller.CartController
	checkoutController *controller.CheckoutController
	adminController    *controller.AdminController
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	catalogController *controller.CatalogController,
	cartController *controller.CartController,
	checkoutController *controller.CheckoutController,
	adminController *controller.AdminController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		catalogController:  catalogController,
		cartController:     cartController,
		checkoutController: checkoutController,
		adminController:    adminController,
		authMiddleware:     authMiddleware,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())

	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "./web/static")
	router.Static("/uploads", r.config.Storage.UploadDir)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "GREENBOWL is running",
		})
	})

	// Public pages; login state only changes the navigation.
	public := router.Group("", r.authMiddleware.OptionalAuthenticate())
	{
		public.GET("/", r.catalogController.Index)
		public.GET("/menu", r.catalogController.Menu)

		public.GET("/register", r.authController.ShowRegister)
		public.POST("/register", r.authController.Register)
		public.GET("/login", r.authController.ShowLogin)
		public.POST("/login", r.authController.Login)
	}

	// Everything touching a cart or account requires a session.
	private := router.Group("", r.authMiddleware.Authenticate())
	{
		private.GET("/logout", r.authController.Logout)
		private.GET("/profile", r.authController.Profile)

		private.POST("/add_to_cart/:product_id", r.cartController.AddToCart)
		private.GET("/cart", r.cartController.ViewCart)
		private.POST("/cart/update/:cart_id", r.cartController.UpdateCart)
		private.POST("/cart/remove/:cart_id", r.cartController.RemoveFromCart)

		private.GET("/checkout", r.checkoutController.Checkout)
		private.POST("/process-payment", r.checkoutController.ProcessPayment)
		private.GET("/payment-success", r.checkoutController.PaymentSuccess)
		private.GET("/orders", r.checkoutController.Orders)
	}

	admin := router.Group("/admin")
	{
		admin.GET("/setup", r.adminController.Setup)
		admin.GET("/add_products", r.adminController.AddProducts)
		admin.POST("/upload_image", r.adminController.UploadImage)
	}

	return router
}
