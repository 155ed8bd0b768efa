package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/expense-bot/internal/clients/kafka"
	"max.ks1230/expense-bot/internal/clients/mail"
	"max.ks1230/expense-bot/internal/clients/tg"
	"max.ks1230/expense-bot/internal/config"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/keys"
	"max.ks1230/expense-bot/internal/model/reports"
	"max.ks1230/expense-bot/internal/model/storage"
	"max.ks1230/expense-bot/internal/tracing"
)

func main() {
	defer logger.Sync()
	logger.Info("Reporter init - start")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	// The reporter reads records written by the bot, so only shared backends make sense here.
	var records *storage.RecordStore
	keyManager := keys.NewManager(conf.Storage().KeysDir())
	if conf.Storage().Kind() == config.BackendPostgres {
		db, err := storage.NewPostgresStorage(conf.Postgres())
		if err != nil {
			logger.Fatal("failed to init postgres", zap.Error(err))
		}
		defer db.Close()
		records = storage.NewRecordStore(db, keyManager)
	} else {
		records = storage.NewRecordStore(storage.NewFileBlobs(conf.Storage().Dir()), keyManager)
	}

	client, err := tg.New(conf.Telegram(), conf.App().UpdateTimeout())
	if err != nil {
		logger.Fatal("failed to init client", zap.Error(err))
	}

	generator := reports.NewGenerator(mail.New(conf.SMTP()), client)
	consumer, err := kafka.NewConsumer(conf.Kafka(), reports.NewWorker(records, generator))
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	health, err := reports.NewHealthServer(conf.Kafka().ReporterHealthPort())
	if err != nil {
		logger.Fatal("failed to init health server", zap.Error(err))
	}

	logger.Info("Reporter init - end")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		health.SetServing(true)
		health.Serve()
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		health.SetServing(false)
		health.Shutdown()
		return nil
	})
	g.Go(func() error {
		return consumer.StartConsuming(ctx)
	})

	if err = g.Wait(); err != nil {
		logger.Error("reporter stopped with error", zap.Error(err))
	}
}
