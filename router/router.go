package router

import (
	"github.com/gin-gonic/gin"

	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/controllers"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/middlewares"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/services"
)

func SetupRouter(sessions *services.SessionStore, passes *services.PassService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	authCtrl := controllers.NewAuthController(sessions)
	passCtrl := controllers.NewPassController(sessions, passes)
	paymentCtrl := controllers.NewPaymentController(sessions)
	receiptCtrl := controllers.NewReceiptController(sessions)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewLoginRateLimiter())
	{
		public.POST("/login", authCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", authCtrl.GetProfile)
	auth.POST("/logout", authCtrl.Logout)

	// PASS
	auth.GET("/pass", passCtrl.GetPass)
	auth.GET("/pass/pdf", passCtrl.DownloadPassPDF)
	auth.POST("/passes", passCtrl.ApplyPass)
	auth.POST("/passes/renew", passCtrl.RenewPass)

	// PAYMENTS
	auth.GET("/payments", paymentCtrl.GetPayments)
	auth.GET("/payments/:payment_id/receipt", receiptCtrl.DownloadReceipt)

	return r
}
