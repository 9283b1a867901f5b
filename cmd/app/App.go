package app

import (
	"context"
	"sync"
	"taxOffice/configs"
	"taxOffice/internal/handlers"
	"taxOffice/internal/notifications"
	"taxOffice/internal/repositories"
	"taxOffice/internal/servers/database"
	"taxOffice/internal/servers/http"
	"taxOffice/internal/services"

	"github.com/redis/go-redis/v9"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)
	authRepo := repositories.NewAuthenticationRepository(db)
	authService := services.NewAuthenticationService(authRepo, app.configs)
	caseRepo := repositories.NewCaseRepository(db)
	caseService := services.NewCaseService(caseRepo)
	documentRepo := repositories.NewDocumentRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db)
	appointmentService := services.NewAppointmentService(appointmentRepo)
	messageRepo := repositories.NewMessageRepository(db)
	messageService := services.NewMessageService(messageRepo)

	minioService := services.NewMinioService(app.configs)
	fileManagerService := services.NewFileManagerService(minioService)
	documentService := services.NewDocumentService(documentRepo, fileManagerService)

	presenceService := services.NewPresenceService(app.redis, app.ctx)

	hub := notifications.NewHub(app.configs.Viper.GetInt("socket.max_connections_per_user"))
	notifier := notifications.NewNotifier(hub)

	restHandler := handlers.NewRestHandler(
		authService,
		caseService,
		documentService,
		appointmentService,
		messageService,
		presenceService,
		notifier,
		hub,
	)
	socketHandler := handlers.NewSocketHandler(hub, notifier, authService, presenceService, app.configs)

	http.NewHttpServer(
		app.ctx,
		app.configs,
		restHandler,
		socketHandler,
		hub,
	).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.address"),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
