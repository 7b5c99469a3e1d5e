package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/library-borrowing/borrowing/config"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/handler"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/notify"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/repository"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/server"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/service"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/worker"
	"github.com/Astemirdum/library-borrowing/borrowing/migrations"
	"github.com/Astemirdum/library-borrowing/pkg/checkout"
	"github.com/Astemirdum/library-borrowing/pkg/kafka"
	"github.com/Astemirdum/library-borrowing/pkg/logger"
	"github.com/Astemirdum/library-borrowing/pkg/postgres"
	"github.com/Astemirdum/library-borrowing/pkg/telegram"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "borrowing")
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	defer db.Close()
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %v", err)
	}

	loc, err := time.LoadLocation(cfg.Overdue.TimeZone)
	if err != nil {
		return fmt.Errorf("time zone %v", err)
	}

	gg, ctx := errgroup.WithContext(ctx)

	tg := telegram.New(cfg.Telegram, log)
	var queue kafka.Enqueuer
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka.NewProducer %v", err)
		}
		defer producer.Close()
		queue = kafka.NewEnqueuer(producer)

		consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.NotificationConsumerGroup)
		if err != nil {
			return fmt.Errorf("kafka.NewConsumer %v", err)
		}
		gg.Go(func() error {
			return kafka.Consume(ctx, consumer, handler.NewConsumer(tg.Send, log), log, kafka.NotificationTopic)
		})
	}

	svc := service.NewService(repo,
		checkout.New(cfg.Stripe, log),
		notify.New(tg, queue, log),
		log,
		service.WithClock(func() time.Time { return time.Now().In(loc) }),
		service.WithAuth(cfg.Auth),
	)

	if cfg.Overdue.Enabled {
		sweep, err := worker.NewOverdue(cfg.Overdue, svc, log)
		if err != nil {
			return err
		}
		sweep.Start()
		gg.Go(func() error {
			<-ctx.Done()
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return sweep.Stop(closeCtx)
		})
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter(cfg.Auth))
	log.Info("http server start ON: ", zap.String("addr", srv.Addr()))
	gg.Go(srv.Run)
	gg.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown")
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err = gg.Wait(); err != nil {
		log.Error("shutdown", zap.Error(err))
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
