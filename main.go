package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/config"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/database"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/router"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/services"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/utils"
)

func init() {
	// Load .env sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := services.NewSessionStore(database.NewKVStore(db))
	if err := sessions.Restore(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to restore session state: %v", err)
	}

	gateway := services.NewGatewayService(cfg.GatewayDelay)
	passes := services.NewPassService(sessions, gateway)

	r := router.SetupRouter(sessions, passes)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
