package main

import (
	"FlashVault/config"
	"FlashVault/internal/repo"
	"FlashVault/internal/storage"
	"FlashVault/router"
	"FlashVault/utils"
	"log"
)

// main initializes services and starts the HTTP server.
func main() {
	config.InitConfig()
	repo.InitMysql()
	repo.InitRedis()
	utils.InitCacheManager()

	switch backend := config.MediaConfigInstance.Backend; backend {
	case "local":
		storage.InitLocal()
	case "minio":
		storage.InitMinio()
	default:
		log.Fatalln("unknown media backend:", backend)
	}

	router := router.InitRouter()

	router.Run(":8000")
}
