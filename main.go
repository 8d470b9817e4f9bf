package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ministore/storefront/checkout"
	"github.com/ministore/storefront/config"
	"github.com/ministore/storefront/controllers"
	"github.com/ministore/storefront/database"
	"github.com/ministore/storefront/mailer"
	"github.com/ministore/storefront/middleware"
	"github.com/ministore/storefront/sheets"
	"github.com/ministore/storefront/store"
	"github.com/ministore/storefront/utils"
)

type stores struct {
	products store.ProductStore
	vouchers store.VoucherStore
	orders   store.OrderStore
}

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file, using system environment")
	}

	cfg := config.Load()
	st := buildStores(cfg, log)

	notifier := mailer.New(mailer.Config{
		Host:       cfg.EmailHost,
		Port:       cfg.EmailPort,
		Username:   cfg.EmailUser,
		Password:   cfg.EmailPassword,
		From:       cfg.EmailFrom,
		AdminEmail: cfg.AdminEmail,
	}, log)

	validator := checkout.NewValidator(st.vouchers)
	orderSvc := checkout.NewService(st.orders, validator, notifier, log)

	// Image storage is optional; without it the upload endpoint reports 503.
	var r2 *utils.R2Client
	if cfg.R2Bucket != "" {
		r2, err = utils.NewR2Client(context.Background(),
			cfg.R2Endpoint, cfg.R2AccessKeyID, cfg.R2SecretAccessKey, cfg.R2Bucket, cfg.R2PublicDomain)
		if err != nil {
			log.Warn("image storage disabled", zap.Error(err))
		}
	}

	r := gin.New()
	r.Use(corsMiddleware(cfg.AllowedOrigins))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/products", controllers.GetProducts(st.products))
	r.GET("/vouchers", controllers.GetVouchers(st.vouchers))
	r.POST("/vouchers/validate", controllers.ValidateVoucher(validator))
	r.POST("/orders", controllers.PlaceOrder(orderSvc))

	r.POST("/admin/login", controllers.Login(cfg))

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		admin.GET("/products", controllers.GetProducts(st.products))
		admin.POST("/products", controllers.AddProduct(st.products, log))
		admin.PUT("/products", controllers.UpdateProduct(st.products, log))
		admin.DELETE("/products", controllers.DeleteProduct(st.products, log))
		admin.POST("/products/images", controllers.UploadProductImages(r2))

		admin.GET("/vouchers", controllers.GetVouchers(st.vouchers))
		admin.POST("/vouchers", controllers.AddVoucher(st.vouchers, log))
		admin.PUT("/vouchers", controllers.UpdateVoucher(st.vouchers, log))
		admin.DELETE("/vouchers", controllers.DeleteVoucher(st.vouchers, log))

		admin.GET("/orders", controllers.GetOrders(st.orders))
	}

	log.Info("listening", zap.String("port", cfg.Port), zap.String("store", cfg.Driver()))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func buildStores(cfg *config.Config, log *zap.Logger) stores {
	switch cfg.Driver() {
	case "sheets":
		gw := sheets.NewGateway(cfg.SheetURL, log)
		s := sheets.NewStore(gw, log, cfg.SheetProducts, cfg.SheetVouchers, cfg.SheetOrders)
		return stores{products: s, vouchers: s, orders: s}
	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := database.Connect(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatal("mongo unavailable", zap.Error(err))
		}
		s := database.NewStore(client, cfg.MongoDatabase)
		return stores{products: s, vouchers: s, orders: s}
	default:
		log.Info("no backing store configured, serving demo catalog")
		m := store.NewMemory()
		return stores{products: m, vouchers: m, orders: m}
	}
}

func corsMiddleware(origins string) gin.HandlerFunc {
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
