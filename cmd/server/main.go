package main

import (
	"encoding/json"

	"github.com/neo-rakk/smala/internal/config"
	"github.com/neo-rakk/smala/internal/database"
	"github.com/neo-rakk/smala/internal/game"
	"github.com/neo-rakk/smala/internal/handlers"
	"github.com/neo-rakk/smala/internal/middleware"
	"github.com/neo-rakk/smala/internal/models"
	"github.com/neo-rakk/smala/internal/services"
	"github.com/neo-rakk/smala/internal/store"
	"github.com/neo-rakk/smala/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Famille DZ en Or API
// @version         1.0
// @description     Backend for the live game show: régie action dispatch, spectator state feed, leaderboard
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()
	gameStore := store.NewGormStore(db)

	authService := services.NewAuthService(db, cfg.JWTSecret)
	leaderboardService := services.NewLeaderboardService(db)
	gameService := services.NewGameService(gameStore, game.NewReducer(), leaderboardService, cfg.RoomKey)

	// Every successful write to the room document reaches every open
	// display through this bridge; handlers never talk to the hub.
	gameStore.Subscribe(cfg.RoomKey, func(doc *models.RoomDocument) {
		if doc == nil {
			hub.Broadcast(game.RoomCode, ws.WSMessage{Type: "room_reset", Data: nil})
			return
		}
		var room game.Room
		if err := json.Unmarshal(doc.Payload, &room); err != nil {
			logrus.WithError(err).Warn("broadcast: bad room payload")
			return
		}
		hub.Broadcast(game.RoomCode, ws.WSMessage{Type: "room_update", Data: &room})
	})

	authHandler := handlers.NewAuthHandler(authService)
	gameHandler := handlers.NewGameHandler(gameService, cfg.PublicBaseURL+"/play")
	playHandler := handlers.NewPlayHandler(gameService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	wsHandler := handlers.NewWSHandler(hub, gameService, game.RoomCode)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/room/:code", wsHandler.HandleRoomWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		gameRoutes := api.Group("/game")
		{
			gameRoutes.GET("/state", gameHandler.GetState)
			gameRoutes.GET("/qr", gameHandler.JoinQR)
			gameRoutes.POST("/actions", middleware.JWTAuth(authService), gameHandler.DispatchAction)
		}

		play := api.Group("/play")
		{
			play.POST("/join", playHandler.Join)
			play.POST("/leave", playHandler.Leave)
		}

		leaderboard := api.Group("/leaderboard")
		{
			leaderboard.GET("", leaderboardHandler.List)
			leaderboard.DELETE("/:id", middleware.JWTAuth(authService), leaderboardHandler.Delete)
		}
	}

	logrus.Infof("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
