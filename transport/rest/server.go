package rest

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	router *echo.Echo
}

func New(handler GameHandler) *Server {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.Use(middleware.Recover())

	router.GET("/ping", handler.Ping)

	api := router.Group("/api")
	api.POST("/game/new", handler.NewGame)
	api.POST("/game/:id/move", handler.MakeMove)
	api.POST("/game/:id/undo", handler.UndoMove)
	api.GET("/game/:id/state", handler.GameState)
	api.GET("/statistics", handler.Statistics)
	api.GET("/health", handler.Health)

	return &Server{router: router}
}

// Start - starts the HTTP server.
func (that *Server) Start(port string) error {
	that.router.Server.ReadTimeout = 10 * time.Second
	that.router.Server.WriteTimeout = 10 * time.Second
	that.router.Server.IdleTimeout = 30 * time.Second

	if err := that.router.Start(":" + port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
