package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-bot/internal/clients/mail"
	"max.ks1230/expense-bot/internal/entity/user"
	"max.ks1230/expense-bot/internal/model/customerr"
	"max.ks1230/expense-bot/internal/model/reports/mock"
)

func recordWithEmail(email string) user.Record {
	rec := user.NewRecord()
	if email != "" {
		rec.SetEmail(email)
	}
	rec.Expenses = []user.ExpenseRecord{
		{Amount: 12, Category: "food", Created: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), Description: "spent 12 on food"},
		{Amount: 7.5, Category: "taxi", Created: time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)},
	}
	return rec
}

func Test_ExportCSV_ShouldIncludeDescription(t *testing.T) {
	out, err := ExportCSV(recordWithEmail("").Expenses)

	require.NoError(t, err)
	assert.Equal(t,
		"date,amount,category,description\n"+
			"2024-05-01T12:00:00Z,12.00,food,spent 12 on food\n"+
			"2024-05-02T08:30:00Z,7.50,taxi,\n",
		string(out))
}

func Test_ReportCSV_ShouldOmitDescription(t *testing.T) {
	out, err := ReportCSV(recordWithEmail("").Expenses)

	require.NoError(t, err)
	assert.Equal(t,
		"date,amount,category\n"+
			"2024-05-01T12:00:00Z,12.00,food\n"+
			"2024-05-02T08:30:00Z,7.50,taxi\n",
		string(out))
}

func Test_ReportCSV_OnNoExpenses_ShouldWriteHeaderOnly(t *testing.T) {
	out, err := ReportCSV(nil)

	require.NoError(t, err)
	assert.Equal(t, "date,amount,category\n", string(out))
}

func Test_OnSendReport_ShouldMailAttachmentAndConfirm(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	mailer := mock.NewMailerMock(m)
	sender := mock.NewMessageSenderMock(m)
	gen := NewGenerator(mailer, sender)

	var sent mail.Message
	mailer.SendMock.
		Inspect(func(_ context.Context, msg mail.Message) {
			sent = msg
		}).
		Return(nil)
	sender.SendMessageMock.
		Expect("📧 Monthly report sent to a@b.io", int64(42)).
		Return(nil)

	err := gen.SendReport(context.Background(), 42, recordWithEmail("a@b.io"))

	require.NoError(t, err)
	assert.Equal(t, "a@b.io", sent.To)
	assert.Equal(t, "Your Monthly Expense Report", sent.Subject)
	assert.Equal(t, "42_report.csv", sent.AttachmentName)
	assert.Contains(t, string(sent.Attachment), "2024-05-01T12:00:00Z,12.00,food")
}

func Test_OnSendReport_WithoutEmail_ShouldDoNothing(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	gen := NewGenerator(mock.NewMailerMock(m), mock.NewMessageSenderMock(m))

	err := gen.SendReport(context.Background(), 42, recordWithEmail(""))

	assert.NoError(t, err)
}

func Test_OnSendReport_MailFailure_ShouldReturnNetworkError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	mailer := mock.NewMailerMock(m)
	gen := NewGenerator(mailer, mock.NewMessageSenderMock(m))

	mailer.SendMock.Return(errors.New("relay down"))

	err := gen.SendReport(context.Background(), 42, recordWithEmail("a@b.io"))

	assert.True(t, customerr.IsNetwork(err))
}

func Test_OnQueueSendReport_ShouldProduceKeyedRequest(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	producer := mock.NewProducerMock(m)
	queue := NewQueue(producer)
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	queue.clock = func() time.Time { return at }

	var payload []byte
	producer.ProduceMessageMock.
		Inspect(func(key, value []byte) {
			assert.Equal(m, []byte("42"), key)
			payload = value
		}).
		Return(nil)

	err := queue.SendReport(context.Background(), 42, recordWithEmail("a@b.io"))
	require.NoError(t, err)

	req, err := DecodeRequest(payload)
	require.NoError(t, err)
	assert.Equal(t, Request{UserID: 42, RequestedAt: at}, req)
}

func Test_DecodeRequest_OnGarbage_ShouldFail(t *testing.T) {
	_, err := DecodeRequest([]byte("not json"))
	assert.Error(t, err)

	_, err = DecodeRequest([]byte(`{"requested_at":"2024-06-01T09:00:00Z"}`))
	assert.Error(t, err)
}

func Test_OnWorkerRequest_ShouldReloadRecordAndSend(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	records := mock.NewRecordLoaderMock(m)
	sender := mock.NewReportSenderMock(m)
	worker := NewWorker(records, sender)
	rec := recordWithEmail("a@b.io")

	records.LoadMock.
		Inspect(func(_ context.Context, userID int64) {
			assert.Equal(m, int64(42), userID)
		}).
		Return(rec, true)
	sender.SendReportMock.
		Inspect(func(_ context.Context, userID int64, got user.Record) {
			assert.Equal(m, int64(42), userID)
			assert.Equal(m, rec, got)
		}).
		Return(nil)

	err := worker.HandleReportRequest(context.Background(), []byte(`{"user_id":42,"requested_at":"2024-06-01T09:00:00Z"}`))

	assert.NoError(t, err)
}

func Test_OnWorkerRequest_UnreadableRecord_ShouldSkip(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	records := mock.NewRecordLoaderMock(m)
	worker := NewWorker(records, mock.NewReportSenderMock(m))

	records.LoadMock.Return(user.Record{}, false)

	err := worker.HandleReportRequest(context.Background(), []byte(`{"user_id":42}`))

	assert.NoError(t, err)
}
