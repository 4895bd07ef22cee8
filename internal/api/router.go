package api

import (
	"marketplace/internal/config"
	"marketplace/internal/middleware"
	"marketplace/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// RegisterRoutes wires every endpoint onto the engine. Public routes
// cover auth and catalog reads; everything else sits behind JWT, with
// admin surfaces additionally behind a policy check.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {
	authSvc := service.NewAuthService(db, cfg)
	userSvc := service.NewUserService(db)
	addressSvc := service.NewAddressService(db)
	categorySvc := service.NewCategoryService(db)
	marketSvc := service.NewMarketService(db)
	storeSvc := service.NewStoreService(db)
	productSvc := service.NewProductService(db)
	reviewSvc := service.NewReviewService(db)
	orderSvc := service.NewOrderService(db)
	txnSvc := service.NewTransactionService(db)
	walletSvc := service.NewWalletService(db)
	kycSvc := service.NewKycService(db)

	// Public: authentication and catalog reads
	auth := r.Group("/auth")
	{
		auth.POST("/signup", SignupHandler(authSvc))
		auth.POST("/login", LoginHandler(authSvc))
		auth.POST("/request-otp", RequestOTPHandler(authSvc))
		auth.POST("/verify-otp", VerifyOTPHandler(authSvc))
		auth.POST("/forgot-password", RequestOTPHandler(authSvc))
		auth.POST("/reset-password", ResetPasswordHandler(authSvc))
	}

	r.GET("/markets", ListMarketsHandler(marketSvc))
	r.GET("/markets/:id", GetMarketHandler(marketSvc))
	r.GET("/categories", ListCategoriesHandler(categorySvc))
	r.GET("/categories/:id", GetCategoryHandler(categorySvc))
	r.GET("/stores", ListStoresHandler(storeSvc))
	r.GET("/stores/:id", GetStoreHandler(storeSvc))
	r.GET("/products", ListProductsHandler(productSvc))
	r.GET("/products/:id", GetProductHandler(productSvc, rdb))
	r.GET("/reviews", ListReviewsHandler(reviewSvc))
	r.GET("/reviews/:id", GetReviewHandler(reviewSvc))

	// Authenticated surface
	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware(db, cfg.JWTSecret))
	{
		authed.PUT("auth/profile/:userId", UpdateProfileHandler(authSvc))

		authed.POST("addresses", CreateAddressHandler(addressSvc))
		authed.GET("addresses", ListAddressesHandler(addressSvc))
		authed.GET("addresses/:id", GetAddressHandler(addressSvc))
		authed.PUT("addresses/:id", UpdateAddressHandler(addressSvc))
		authed.DELETE("addresses/:id", DeleteAddressHandler(addressSvc))

		authed.POST("stores", CreateStoreHandler(storeSvc))
		authed.PUT("stores/:id", UpdateStoreHandler(storeSvc))
		authed.DELETE("stores/:id", DeleteStoreHandler(storeSvc))

		authed.POST("products", CreateProductHandler(productSvc))
		authed.PUT("products/:id", UpdateProductHandler(productSvc, rdb))
		authed.DELETE("products/:id", DeleteProductHandler(productSvc, rdb))

		authed.POST("reviews", CreateReviewHandler(reviewSvc, rdb))
		authed.PUT("reviews/:id", UpdateReviewHandler(reviewSvc, rdb))
		authed.DELETE("reviews/:id", DeleteReviewHandler(reviewSvc, rdb))

		authed.POST("orders", CreateOrderHandler(orderSvc))
		authed.GET("orders", ListOrdersHandler(orderSvc))
		authed.GET("orders/:id", GetOrderHandler(orderSvc))
		authed.PUT("orders/:id", UpdateOrderHandler(orderSvc))
		authed.DELETE("orders/:id", DeleteOrderHandler(orderSvc))

		authed.POST("transactions", CreateTransactionHandler(txnSvc))
		authed.GET("transactions", ListTransactionsHandler(txnSvc))
		authed.GET("transactions/:id", GetTransactionHandler(txnSvc))
		authed.PUT("transactions/:id/status", UpdateTransactionStatusHandler(txnSvc))

		authed.POST("wallets", CreateWalletHandler(walletSvc))
		authed.GET("wallets/by-user", GetWalletByUserHandler(walletSvc, rdb))
		authed.GET("wallets/:id", GetWalletHandler(walletSvc))
		authed.POST("wallets/credit", CreditWalletHandler(walletSvc, rdb))
		authed.POST("wallets/debit", DebitWalletHandler(walletSvc, rdb))
		authed.GET("wallets/:id/transactions", WalletTransactionsHandler(walletSvc))

		authed.POST("kyc", CreateKycHandler(kycSvc))
		authed.GET("kyc/:id", GetKycHandler(kycSvc))
		authed.PUT("kyc/:id", UpdateKycHandler(kycSvc))

		// Organization admins see their own organization's roster
		authed.GET("organizations/:organizationId/users",
			middleware.RequirePolicy(middleware.PolicyOrganizationAdmin),
			ListOrganizationUsersHandler(userSvc))

		// Store approval is shop-scoped; org admins get their ownership
		// check settled inside the handler
		authed.PUT("shops/:shopId/approve",
			middleware.RequirePolicy(middleware.PolicyShopAdmin),
			ApproveStoreHandler(storeSvc))
	}

	// Super admin surface
	admin := r.Group("/admin")
	admin.Use(
		middleware.JWTAuthMiddleware(db, cfg.JWTSecret),
		middleware.RequirePolicy(middleware.PolicySuperAdminOnly),
	)
	{
		admin.GET("/users", ListUsersHandler(userSvc))
		admin.GET("/users/:id", GetUserHandler(userSvc))
		admin.PUT("/users/:id/activate", ActivateUserHandler(userSvc))
		admin.PUT("/users/:id/deactivate", DeactivateUserHandler(userSvc))
		admin.DELETE("/users/:id", DeleteUserHandler(userSvc))

		admin.POST("/markets", CreateMarketHandler(marketSvc))
		admin.PUT("/markets/:id", UpdateMarketHandler(marketSvc))
		admin.DELETE("/markets/:id", DeleteMarketHandler(marketSvc))

		admin.POST("/categories", CreateCategoryHandler(categorySvc))
		admin.PUT("/categories/:id", UpdateCategoryHandler(categorySvc))
		admin.DELETE("/categories/:id", DeleteCategoryHandler(categorySvc))

		admin.GET("/kyc", ListKycHandler(kycSvc))
		admin.DELETE("/kyc/:id", DeleteKycHandler(kycSvc))
	}
}
