package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/shop-backoffice/docs"
	"github.com/SergeyBogomolovv/shop-backoffice/internal/app"
	"github.com/SergeyBogomolovv/shop-backoffice/internal/backend"
	"github.com/SergeyBogomolovv/shop-backoffice/internal/config"
	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shop-backoffice/internal/handler"
	"github.com/SergeyBogomolovv/shop-backoffice/internal/postgres"
	"github.com/SergeyBogomolovv/shop-backoffice/internal/repo"
	"github.com/SergeyBogomolovv/shop-backoffice/internal/service"
	"github.com/SergeyBogomolovv/shop-backoffice/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Shop Backoffice API
// @version         1.0
// @description     Order creation and order management for the shop back office
// @BasePath        /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	submissionRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	backendClient := backend.NewClient(logger, conf.Backend)

	mode := entities.CustomerMode(conf.Ordering.CustomerMode)
	catalogLoader := service.NewCatalogLoader(logger, backendClient, mode, conf.Catalog)

	publisher := handler.NewKafkaPublisher(logger, conf.Kafka)
	orderingService := service.NewOrderingService(
		logger,
		conf.Ordering,
		catalogLoader,
		backendClient,
		txManager,
		submissionRepo,
		publisher,
	)
	orderAdminService := service.NewOrderAdminService(logger, backendClient)
	journalService := service.NewJournalService(logger, submissionRepo)
	stockService := service.NewStockService(logger, backendClient, orderingService)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderingService)
	httpHandler := handler.NewHTTPHandler(logger, orderingService, orderAdminService, journalService, stockService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderingService)
	app.SetClosers(publisher)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
