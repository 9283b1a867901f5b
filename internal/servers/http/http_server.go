package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"taxOffice/configs"
	"taxOffice/internal/handlers"
	"taxOffice/internal/notifications"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx           context.Context
	config        *configs.Config
	router        *gin.Engine
	restHandler   *handlers.RestHandler
	socketHandler *handlers.SocketHandler
	hub           *notifications.Hub
}

func NewHttpServer(
	ctx context.Context,
	config *configs.Config,
	restHandler *handlers.RestHandler,
	socketHandler *handlers.SocketHandler,
	hub *notifications.Hub,
) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:           ctx,
			config:        config,
			restHandler:   restHandler,
			socketHandler: socketHandler,
			hub:           hub,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRestfulRoutes()
	hs.setupWebSocketRoutes()

	hs.startHeartbeat()

	server := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	hs.waitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.Default()
}

func (hs *HttpServer) setupRestfulRoutes() {
	hs.router.POST("/login", hs.restHandler.Login)
	hs.router.POST("/register", hs.restHandler.Register)
	hs.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := hs.router.Group("/api", handlers.MustAuthenticateMiddleware())
	{
		api.GET("/profile", hs.restHandler.Profile)
		api.GET("/ws/token", hs.restHandler.SocketToken)

		api.POST("/cases", hs.restHandler.CreateCase)
		api.GET("/cases", hs.restHandler.GetCases)
		api.GET("/cases/:id/documents", hs.restHandler.GetCaseDocuments)

		api.POST("/documents", hs.restHandler.UploadDocument)

		api.POST("/appointments", hs.restHandler.CreateAppointment)
		api.GET("/appointments", hs.restHandler.GetAppointments)

		api.POST("/messages", hs.restHandler.SendMessage)
		api.GET("/messages/:userId", hs.restHandler.GetConversation)

		staff := api.Group("", handlers.MustBeStaffMiddleware())
		{
			staff.PUT("/cases/:id/status", hs.restHandler.UpdateCaseStatus)
			staff.PUT("/appointments/:id/status", hs.restHandler.UpdateAppointmentStatus)
			staff.GET("/admin/connections", hs.restHandler.ConnectionStats)
		}
	}
}

func (hs *HttpServer) setupWebSocketRoutes() {
	hs.router.GET("/ws/notifications", hs.socketHandler.HandleNotificationSocketRoute)
}

func (hs *HttpServer) startHeartbeat() {
	interval := hs.config.Viper.GetInt("socket.heartbeat_interval_seconds")
	if interval <= 0 {
		interval = 30
	}
	hs.hub.StartHeartbeat(hs.ctx, time.Duration(interval)*time.Second)
}

func (hs *HttpServer) startServer() *http.Server {
	port := hs.config.Viper.GetInt("server.port")
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: hs.router,
	}

	go func() {
		log.Printf("HTTP server started on :%d", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close all WebSocket connections
	hs.hub.CloseAll()

	log.Println("Server exiting")
}
