package rates

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/logger"
)

type refresher interface {
	Refresh(ctx context.Context) error
}

type config interface {
	PullingDelayMinutes() int64
}

// Puller keeps the converter's cache warm so chat commands rarely wait on the network.
type Puller struct {
	refresher    refresher
	pullingDelay int64
}

func NewPuller(refresher refresher, config config) *Puller {
	return &Puller{
		refresher:    refresher,
		pullingDelay: config.PullingDelayMinutes(),
	}
}

func (p *Puller) Pull(ctx context.Context) {
	if p.pullingDelay <= 0 {
		logger.Info("Rates pulling disabled")
		return
	}

	ticker := time.NewTicker(time.Duration(p.pullingDelay) * time.Minute)
	defer ticker.Stop()
	firstTick := make(chan struct{}, 1)
	firstTick <- struct{}{}

	logger.Info("Start pulling rates")
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop pulling rates")
			return
		// fake first tick to pull rates immediately
		case <-firstTick:
			p.pullOnce(ctx)
		case <-ticker.C:
			p.pullOnce(ctx)
		}
	}
}

func (p *Puller) pullOnce(ctx context.Context) {
	logger.Info("Pulling current rates...")

	span, ctx := opentracing.StartSpanFromContext(ctx, "pullRates")
	defer span.Finish()

	if err := p.refresher.Refresh(ctx); err != nil {
		logger.Error("cannot get rates", zap.Error(err))
		return
	}

	logger.Info("Successfully pulled current rates")
}
