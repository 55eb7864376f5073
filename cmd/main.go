package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/microcart/internal/app"
	"github.com/SergeyBogomolovv/microcart/internal/config"
	"github.com/SergeyBogomolovv/microcart/internal/handler"
	"github.com/SergeyBogomolovv/microcart/internal/postgres"
	"github.com/SergeyBogomolovv/microcart/internal/repo"
	"github.com/SergeyBogomolovv/microcart/internal/service"
	"github.com/SergeyBogomolovv/microcart/internal/telemetry"
	"github.com/SergeyBogomolovv/microcart/internal/web"
	"github.com/SergeyBogomolovv/microcart/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Order Service API
// @version         1.0
// @description     Документация HTTP API
// @BasePath        /
func main() {
	conf, err := config.New()
	panicIfErr("failed to load config", err)
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, conf.Telemetry, conf.Env)
	panicIfErr("failed to setup tracer", err)
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Error("failed to shutdown tracer", slog.Any("error", err))
		}
	}()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to apply migrations", postgres.Migrate(ctx, db))

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderService := service.NewOrderService(logger, txManager, orderRepo)

	httpHandler := handler.NewHTTPHandler(logger, orderService)
	webHandler := web.NewHandler(logger, web.NewClient(conf.Web), conf.Web.UserID)

	app := app.New(logger, conf, db)
	app.SetHTTPHandlers(httpHandler, webHandler)

	if conf.Kafka.Enabled {
		handler.RegisterMetrics()
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}

	panicIfErr("application stopped with error", app.Run(ctx))
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	var h slog.Handler
	switch env {
	case "production":
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(telemetry.NewContextHandler(h))
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
