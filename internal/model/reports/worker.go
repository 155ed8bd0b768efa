package reports

//go:generate minimock -i recordLoader,reportSender -o ./mock/ -s _mock.go

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/entity/user"
	"max.ks1230/expense-bot/internal/logger"
)

type recordLoader interface {
	Load(ctx context.Context, userID int64) (user.Record, bool)
}

type reportSender interface {
	SendReport(ctx context.Context, userID int64, rec user.Record) error
}

// Worker serves report requests consumed from the queue.
type Worker struct {
	records recordLoader
	sender  reportSender
}

func NewWorker(records recordLoader, sender reportSender) *Worker {
	return &Worker{records: records, sender: sender}
}

func (w *Worker) HandleReportRequest(ctx context.Context, payload []byte) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleReportRequest")
	defer span.Finish()

	req, err := DecodeRequest(payload)
	if err != nil {
		ext.Error.Set(span, true)
		return err
	}
	span.SetTag("userID", req.UserID)

	rec, ok := w.records.Load(ctx, req.UserID)
	if !ok {
		logger.Warn("no readable record for report", zap.Int64("userID", req.UserID))
		return nil
	}

	if err = w.sender.SendReport(ctx, req.UserID, rec); err != nil {
		ext.Error.Set(span, true)
		return errors.Wrap(err, "handle report request")
	}
	return nil
}
