package notifier

//go:generate minimock -i recordStore,messageSender,reportSender -o ./mock/ -s _mock.go

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/entity/user"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/utils"
)

type recordStore interface {
	Users(ctx context.Context) ([]int64, error)
	Load(ctx context.Context, userID int64) (user.Record, bool)
}

type messageSender interface {
	SendMessage(text string, userID int64) error
}

type reportSender interface {
	SendReport(ctx context.Context, userID int64, rec user.Record) error
}

// Notifier holds the job bodies. Every job recomputes from stored records, so
// running one twice only repeats the messages.
type Notifier struct {
	records  recordStore
	sender   messageSender
	reports  reportSender
	location *time.Location
	clock    func() time.Time
}

func New(records recordStore, sender messageSender, reports reportSender, location *time.Location) *Notifier {
	return &Notifier{
		records:  records,
		sender:   sender,
		reports:  reports,
		location: location,
		clock:    time.Now,
	}
}

func (n *Notifier) DailySummary(ctx context.Context) error {
	today := now.With(n.clock().In(n.location))
	from, to := today.BeginningOfDay(), today.EndOfDay()

	return n.forEachUser(ctx, jobDailySummary, func(_ context.Context, userID int64, rec user.Record) error {
		total := rec.SpentBetween(from, to)
		return n.sender.SendMessage(
			fmt.Sprintf("📊 Today's total: %s %s", utils.FormatMoney(total), rec.Currency),
			userID,
		)
	})
}

func (n *Notifier) CheckLimits(ctx context.Context) error {
	return n.forEachUser(ctx, jobLimitCheck, func(_ context.Context, userID int64, rec user.Record) error {
		text := limitWarnings(rec)
		if text == "" {
			return nil
		}
		return n.sender.SendMessage(text, userID)
	})
}

func (n *Notifier) MonthlyReports(ctx context.Context) error {
	return n.forEachUser(ctx, jobMonthlyReport, func(ctx context.Context, userID int64, rec user.Record) error {
		if rec.EmailAddress() == "" {
			return nil
		}
		return n.reports.SendReport(ctx, userID, rec)
	})
}

func limitWarnings(rec user.Record) string {
	over := rec.Overspent()
	lines := make([]string, 0, len(over))
	for _, o := range over {
		lines = append(lines, fmt.Sprintf("⚠️ %s overspent by %s", o.Category, utils.FormatMoney(o.Overage)))
	}
	return strings.Join(lines, "\n")
}

// forEachUser skips unreadable records and keeps going after per-user failures.
func (n *Notifier) forEachUser(
	ctx context.Context,
	jobName string,
	fn func(ctx context.Context, userID int64, rec user.Record) error,
) error {
	ids, err := n.records.Users(ctx)
	if err != nil {
		return errors.Wrap(err, jobName)
	}

	failed := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rec, ok := n.records.Load(ctx, id)
		if !ok {
			skippedUsers.WithLabelValues(jobName).Inc()
			logger.Warn("skipping unreadable record", zap.String("job", jobName), zap.Int64("userID", id))
			continue
		}
		if err = fn(ctx, id, rec); err != nil {
			failed++
			logger.Error("job failed for user", zap.String("job", jobName), zap.Int64("userID", id), zap.Error(err))
		}
	}

	if failed > 0 {
		return errors.Errorf("%s failed for %d of %d users", jobName, failed, len(ids))
	}
	return nil
}
