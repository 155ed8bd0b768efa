package reports

//go:generate minimock -i mailer,messageSender -o ./mock/ -s _mock.go

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/clients/mail"
	"max.ks1230/expense-bot/internal/entity/user"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/customerr"
)

const (
	reportSubject = "Your Monthly Expense Report"
	reportBody    = "Attached is your monthly expense report."
	reportSuffix  = "_report.csv"
)

type mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

type messageSender interface {
	SendMessage(text string, userID int64) error
}

// Generator renders a user's expenses to CSV, mails them and confirms in chat.
type Generator struct {
	mailer mailer
	sender messageSender
}

func NewGenerator(mailer mailer, sender messageSender) *Generator {
	return &Generator{
		mailer: mailer,
		sender: sender,
	}
}

// SendReport is a no-op for users without an email address.
func (g *Generator) SendReport(ctx context.Context, userID int64, rec user.Record) error {
	email := rec.EmailAddress()
	if email == "" {
		return nil
	}

	logger.Info("SendReport - start", zap.Int64("userID", userID))
	defer logger.Info("SendReport - end", zap.Int64("userID", userID))

	body, err := ReportCSV(rec.Expenses)
	if err != nil {
		return errors.Wrap(err, "generate report")
	}

	err = g.mailer.Send(ctx, mail.Message{
		To:             email,
		Subject:        reportSubject,
		Body:           reportBody,
		AttachmentName: strconv.FormatInt(userID, 10) + reportSuffix,
		Attachment:     body,
	})
	if err != nil {
		return customerr.NewNetworkError("mail report", err)
	}

	if err = g.sender.SendMessage("📧 Monthly report sent to "+email, userID); err != nil {
		logger.Error("cannot confirm report in chat", zap.Int64("userID", userID), zap.Error(err))
	}
	return nil
}
