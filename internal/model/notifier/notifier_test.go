package notifier

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-bot/internal/clients/mail"
	"max.ks1230/expense-bot/internal/entity/user"
	"max.ks1230/expense-bot/internal/model/keys"
	"max.ks1230/expense-bot/internal/model/notifier/mock"
	"max.ks1230/expense-bot/internal/model/reports"
	"max.ks1230/expense-bot/internal/model/storage"
)

var testNow = time.Date(2024, 5, 10, 20, 0, 0, 0, time.UTC)

type fixture struct {
	notifier *Notifier
	sender   *mock.MessageSenderMock
	reports  *mock.ReportSenderMock
	records  *storage.RecordStore
	blobs    *storage.InMemStorage
}

func newFixture(t *testing.T) *fixture {
	m := minimock.NewController(t)
	t.Cleanup(m.Finish)
	f := &fixture{
		sender:  mock.NewMessageSenderMock(m),
		reports: mock.NewReportSenderMock(m),
		blobs:   storage.NewInMemStorage(),
	}
	f.records = storage.NewRecordStore(f.blobs, keys.NewManager(t.TempDir()))
	f.notifier = New(f.records, f.sender, f.reports, time.UTC)
	f.notifier.clock = func() time.Time { return testNow }
	return f
}

func (f *fixture) save(t *testing.T, userID int64, mutate func(rec *user.Record)) {
	rec := user.NewRecord()
	mutate(&rec)
	require.NoError(t, f.records.Save(context.Background(), userID, rec))
}

func (f *fixture) corrupt(t *testing.T, userID int64) {
	f.save(t, userID, func(*user.Record) {})
	blob, err := f.blobs.Read(context.Background(), userID)
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0xff
	require.NoError(t, f.blobs.Write(context.Background(), userID, blob))
}

func expense(amount float64, category string, at time.Time) user.ExpenseRecord {
	return user.ExpenseRecord{Amount: amount, Category: category, Created: at}
}

func Test_OnCheckLimits_ShouldWarnOnlyAboutOverspentCategories(t *testing.T) {
	f := newFixture(t)
	f.save(t, 1, func(rec *user.Record) {
		rec.SetLimit("food", 100)
		rec.SetLimit("taxi", 100)
		rec.Expenses = []user.ExpenseRecord{
			expense(70, "food", testNow),
			expense(50, "food", testNow),
			expense(30, "taxi", testNow),
		}
	})
	f.save(t, 2, func(rec *user.Record) {
		rec.Expenses = []user.ExpenseRecord{expense(120, "food", testNow)}
	})
	f.corrupt(t, 3)

	f.sender.SendMessageMock.
		Expect("⚠️ food overspent by 20.00", int64(1)).
		Return(nil)

	err := f.notifier.CheckLimits(context.Background())

	assert.NoError(t, err)
}

func Test_OnCheckLimits_ShouldJoinSortedWarnings(t *testing.T) {
	f := newFixture(t)
	f.save(t, 1, func(rec *user.Record) {
		rec.SetLimit("taxi", 10)
		rec.SetLimit("food", 10)
		rec.Expenses = []user.ExpenseRecord{
			expense(15, "taxi", testNow),
			expense(12.5, "food", testNow),
		}
	})

	f.sender.SendMessageMock.
		Expect("⚠️ food overspent by 2.50\n⚠️ taxi overspent by 5.00", int64(1)).
		Return(nil)

	assert.NoError(t, f.notifier.CheckLimits(context.Background()))
}

func Test_OnDailySummary_ShouldSumTodayAndSkipUnreadable(t *testing.T) {
	f := newFixture(t)
	f.save(t, 1, func(rec *user.Record) {
		rec.Expenses = []user.ExpenseRecord{
			expense(0.1, "tea", testNow.Add(-time.Hour)),
			expense(0.2, "tea", testNow.Add(-2*time.Hour)),
			expense(99, "rent", testNow.AddDate(0, 0, -1)),
		}
	})
	f.save(t, 2, func(rec *user.Record) {
		rec.Currency = "EUR"
	})
	f.corrupt(t, 3)

	f.sender.SendMessageMock.
		When("📊 Today's total: 0.30 USD", int64(1)).Then(nil).
		SendMessageMock.
		When("📊 Today's total: 0.00 EUR", int64(2)).Then(nil)

	assert.NoError(t, f.notifier.DailySummary(context.Background()))
}

func Test_OnMonthlyReports_ShouldContinueAfterDeliveryFailure(t *testing.T) {
	f := newFixture(t)
	f.save(t, 1, func(rec *user.Record) { rec.SetEmail("one@b.io") })
	f.save(t, 2, func(rec *user.Record) {})
	f.save(t, 3, func(rec *user.Record) { rec.SetEmail("three@b.io") })

	var reported []int64
	f.reports.SendReportMock.Set(func(_ context.Context, userID int64, rec user.Record) error {
		reported = append(reported, userID)
		if userID == 1 {
			return errors.New("relay down")
		}
		return nil
	})

	err := f.notifier.MonthlyReports(context.Background())

	assert.Error(t, err)
	assert.ElementsMatch(t, []int64{1, 3}, reported)
}

func Test_OnUsersFailure_ShouldFailJob(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	records := mock.NewRecordStoreMock(m)
	n := New(records, mock.NewMessageSenderMock(m), mock.NewReportSenderMock(m), time.UTC)

	records.UsersMock.Return(nil, errors.New("disk gone"))

	assert.Error(t, n.DailySummary(context.Background()))
}

type relayConfig struct {
	addr *net.TCPAddr
}

func (c relayConfig) Host() string           { return c.addr.IP.String() }
func (c relayConfig) Port() int              { return c.addr.Port }
func (c relayConfig) Username() string       { return "" }
func (c relayConfig) Password() string       { return "" }
func (c relayConfig) From() string           { return "bot@example.com" }
func (c relayConfig) Timeout() time.Duration { return 200 * time.Millisecond }

// silentRelay accepts connections and never sends an SMTP greeting.
func silentRelay(t *testing.T) *net.TCPAddr {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = lis.Close() })

	go func() {
		var conns []net.Conn
		defer func() {
			for _, c := range conns {
				_ = c.Close()
			}
		}()
		for {
			conn, err := lis.Accept()
			if err != nil {
				return
			}
			conns = append(conns, conn)
		}
	}()
	return lis.Addr().(*net.TCPAddr)
}

func Test_OnMonthlyReports_StalledRelay_ShouldGiveUpAndCarryOn(t *testing.T) {
	f := newFixture(t)
	f.save(t, 1, func(rec *user.Record) { rec.SetEmail("one@b.io") })
	f.save(t, 2, func(rec *user.Record) { rec.SetEmail("two@b.io") })

	generator := reports.NewGenerator(mail.New(relayConfig{addr: silentRelay(t)}), f.sender)
	n := New(f.records, f.sender, generator, time.UTC)

	done := make(chan error, 1)
	go func() {
		done <- n.MonthlyReports(context.Background())
	}()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("monthly reports blocked on a relay that never greets")
	}
}
