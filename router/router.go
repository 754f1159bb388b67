package router

import (
	"FlashVault/config"
	"FlashVault/internal/handler"
	"FlashVault/utils"

	"github.com/gin-gonic/gin"
)

// InitRouter builds API routes.
func InitRouter() *gin.Engine {
	r := gin.Default()
	r.Use(utils.CORSMiddleware())

	uploadLimiter := utils.NewUploadLimiter(config.AppConfig.UploadRate, config.AppConfig.UploadBurst)

	api := r.Group("/api")
	{
		api.POST("/register", handler.Register)
		api.GET("/activate", handler.Activate)
		api.POST("/login", handler.Login)
		api.GET("/media/*object", handler.ServeMedia)

		auth := api.Group("")
		auth.Use(utils.AuthMiddleware())

		subject := auth.Group("/subject")
		{
			subject.POST("", handler.CreateSubject)
			subject.GET("", handler.ListSubjects)
			subject.GET("/:id", handler.GetSubject)
			subject.PUT("/:id", handler.UpdateSubject)
			subject.DELETE("/:id", handler.DeleteSubject)
			subject.POST("/:id/deck", handler.CreateDeck)
			subject.GET("/:id/decks", handler.ListDecks)
		}

		deck := auth.Group("/deck")
		{
			deck.GET("/:id", handler.GetDeck)
			deck.PUT("/:id", handler.UpdateDeck)
			deck.DELETE("/:id", handler.DeleteDeck)
			deck.GET("/:id/cards", handler.ListCards)
			deck.GET("/:id/quiz", handler.Quiz)
			deck.POST("/:id/card", uploadLimiter.Middleware(), handler.CreateCard)
		}

		card := auth.Group("/card")
		{
			card.GET("/:id", handler.GetCard)
			card.PUT("/:id", uploadLimiter.Middleware(), handler.UpdateCard)
			card.DELETE("/:id", handler.DeleteCard)
		}

		profile := auth.Group("/profile")
		{
			profile.GET("", handler.GetProfile)
			profile.PUT("", uploadLimiter.Middleware(), handler.UpdateProfile)
		}
	}
	return r
}
