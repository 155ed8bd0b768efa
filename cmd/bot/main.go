package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/expense-bot/internal/clients/cache"
	"max.ks1230/expense-bot/internal/clients/exchange"
	"max.ks1230/expense-bot/internal/clients/kafka"
	"max.ks1230/expense-bot/internal/clients/mail"
	"max.ks1230/expense-bot/internal/clients/tg"
	"max.ks1230/expense-bot/internal/config"
	"max.ks1230/expense-bot/internal/entity/user"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/keys"
	"max.ks1230/expense-bot/internal/model/messages"
	"max.ks1230/expense-bot/internal/model/notifier"
	"max.ks1230/expense-bot/internal/model/rates"
	"max.ks1230/expense-bot/internal/model/receipts"
	"max.ks1230/expense-bot/internal/model/reports"
	"max.ks1230/expense-bot/internal/model/storage"
	"max.ks1230/expense-bot/internal/tracing"
)

const metricsShutdownTimeout = 5 * time.Second

type blobStore interface {
	Read(ctx context.Context, userID int64) ([]byte, error)
	Write(ctx context.Context, userID int64, blob []byte) error
	List(ctx context.Context) ([]int64, error)
}

type lastKnownStore interface {
	SaveRates(rates map[string]float64) error
	LoadRate(code string) (float64, error)
}

type reportSender interface {
	SendReport(ctx context.Context, userID int64, rec user.Record) error
}

type receiptStore interface {
	SaveReceipt(ctx context.Context, userID int64, photo []byte) (string, error)
}

func main() {
	defer logger.Sync()
	logger.Info("Bot init - start")

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

	blobs, closeBlobs := newBlobStore(conf)
	defer closeBlobs()
	records := storage.NewRecordStore(blobs, keys.NewManager(conf.Storage().KeysDir()))

	converter := rates.NewConverter(
		exchange.New(conf.Rates()),
		rates.NewCache(conf.Rates().TTL(), time.Now),
		newLastKnownStore(conf),
	)

	client, err := tg.New(conf.Telegram(), conf.App().UpdateTimeout())
	if err != nil {
		logger.Fatal("failed to init client", zap.Error(err))
	}

	reporter, closeReporter := newReportSender(conf, client)
	defer closeReporter()

	msgService := messages.NewService(client, records, converter, newReceiptStore(ctx, conf), conf.App())
	scheduler := notifier.NewScheduler(
		conf.Scheduler(),
		conf.App().Location(),
		notifier.New(records, client, reporter, conf.App().Location()),
	)
	puller := rates.NewPuller(converter, conf.App())

	logger.Info("Bot init - end")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		client.ListenUpdates(ctx, msgService)
		return nil
	})
	g.Go(func() error {
		scheduler.Run(ctx)
		return nil
	})
	g.Go(func() error {
		puller.Pull(ctx)
		return nil
	})
	g.Go(func() error {
		return serveMetrics(ctx, conf.App().MetricsAddr())
	})

	if err = g.Wait(); err != nil {
		logger.Error("bot stopped with error", zap.Error(err))
	}
}

func newBlobStore(conf *config.Service) (blobStore, func()) {
	switch conf.Storage().Kind() {
	case config.BackendPostgres:
		db, err := storage.NewPostgresStorage(conf.Postgres())
		if err != nil {
			logger.Fatal("failed to init postgres", zap.Error(err))
		}
		return db, db.Close
	case config.BackendMemory:
		return storage.NewInMemStorage(), func() {}
	default:
		return storage.NewFileBlobs(conf.Storage().Dir()), func() {}
	}
}

// newLastKnownStore returns nil when memcached is off or unreachable; rates then
// fall back to the in-process cache only.
func newLastKnownStore(conf *config.Service) lastKnownStore {
	if !conf.Memcached().Enabled() {
		return nil
	}
	mc, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Warn("memcached unavailable, last-known rates disabled", zap.Error(err))
		return nil
	}
	return mc
}

func newReportSender(conf *config.Service, client *tg.Client) (reportSender, func()) {
	if conf.Scheduler().ReportDelivery() == config.DeliveryKafka {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer", zap.Error(err))
		}
		return reports.NewQueue(producer), producer.Close
	}
	return reports.NewGenerator(mail.New(conf.SMTP()), client), func() {}
}

func newReceiptStore(ctx context.Context, conf *config.Service) receiptStore {
	if conf.Receipts().Kind() == config.BackendS3 {
		store, err := receipts.NewS3Store(ctx, conf.Receipts())
		if err != nil {
			logger.Fatal("failed to init s3 receipts", zap.Error(err))
		}
		return store
	}
	return receipts.NewLocalStore(conf.Receipts().LocalDir())
}

func serveMetrics(ctx context.Context, addr string) error {
	if addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics server listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "metrics server")
	}
	return nil
}
