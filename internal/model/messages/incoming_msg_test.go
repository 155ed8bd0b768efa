package messages

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-bot/internal/entity/user"
	"max.ks1230/expense-bot/internal/model/customerr"
	"max.ks1230/expense-bot/internal/model/keys"
	"max.ks1230/expense-bot/internal/model/messages/mock"
	"max.ks1230/expense-bot/internal/model/storage"
)

const userID = int64(123)

var testNow = time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

type utcConfig struct{}

func (utcConfig) Location() *time.Location { return time.UTC }

type fixture struct {
	t         *testing.T
	svc       *Service
	chat      *mock.ChatClientMock
	converter *mock.CurrencyConverterMock
	receipts  *mock.ReceiptStoreMock
	records   *storage.RecordStore

	replies  []string
	replying bool
}

func newFixture(t *testing.T) *fixture {
	m := minimock.NewController(t)
	t.Cleanup(m.Finish)
	f := &fixture{
		t:         t,
		chat:      mock.NewChatClientMock(m),
		converter: mock.NewCurrencyConverterMock(m),
		receipts:  mock.NewReceiptStoreMock(m),
		records:   storage.NewRecordStore(storage.NewInMemStorage(), keys.NewManager(t.TempDir())),
	}
	f.svc = NewService(f.chat, f.records, f.converter, f.receipts, utcConfig{})
	f.svc.clock = func() time.Time { return testNow }
	t.Cleanup(func() {
		assert.Empty(t, f.replies, "expected replies were never sent")
	})
	return f
}

// registered stores a record and, when it has a PIN, unlocks the session.
func (f *fixture) registered(t *testing.T, pin string, mutate func(rec *user.Record)) {
	_, err := f.records.Update(context.Background(), userID, func(rec *user.Record) error {
		if pin != "" {
			rec.SetPin(pin)
		}
		if mutate != nil {
			mutate(rec)
		}
		return nil
	})
	require.NoError(t, err)
	if pin != "" {
		f.svc.sessions.unlock(userID)
	}
}

// expectReply queues the next chat message the service has to send, in order.
func (f *fixture) expectReply(text string) {
	if !f.replying {
		f.replying = true
		f.chat.SendMessageMock.Set(func(got string, id int64) error {
			assert.Equal(f.t, userID, id)
			if assert.NotEmpty(f.t, f.replies, "unexpected reply %q", got) {
				assert.Equal(f.t, f.replies[0], got)
				f.replies = f.replies[1:]
			}
			return nil
		})
	}
	f.replies = append(f.replies, text)
}

// rates answers Convert calls from a table keyed by "amount FROM TO".
func (f *fixture) rates(answers map[string]float64, err error) {
	f.converter.ConvertMock.Set(func(_ context.Context, amount float64, from, to string) (float64, error) {
		if err != nil {
			return 0, err
		}
		key := fmt.Sprintf("%g %s %s", amount, from, to)
		converted, ok := answers[key]
		assert.True(f.t, ok, "unexpected conversion %s", key)
		return converted, nil
	})
}

func (f *fixture) send(t *testing.T, text string) {
	err := f.svc.HandleIncomingMessage(context.Background(), Message{Text: text, UserID: userID})
	require.NoError(t, err)
}

func (f *fixture) press(t *testing.T, data string) {
	err := f.svc.HandleIncomingMessage(context.Background(), Message{CallbackData: data, UserID: userID})
	require.NoError(t, err)
}

func (f *fixture) load(t *testing.T) user.Record {
	rec, ok := f.records.Load(context.Background(), userID)
	require.True(t, ok)
	return rec
}

func Test_OnStartCommand_ShouldOnboardNewUser(t *testing.T) {
	f := newFixture(t)

	f.expectReply(welcomeMessage)
	f.send(t, "/start")

	f.expectReply(invalidPinMessage)
	f.send(t, "12ab")

	f.expectReply(pinSetMessage)
	f.send(t, "1234")

	f.expectReply("💰 Added 50.00 USD for food")
	f.send(t, "spent 50 on food")

	rec := f.load(t)
	assert.True(t, f.records.VerifyPin(context.Background(), userID, "1234"))
	assert.Equal(t, []user.ExpenseRecord{
		{Amount: 50, Category: "food", Created: testNow, Description: "spent 50 on food"},
	}, rec.Expenses)
}

func Test_OnDataCommandBeforeStart_ShouldAskToStart(t *testing.T) {
	f := newFixture(t)

	f.expectReply(startFirstMessage)
	f.send(t, "/summary")

	f.expectReply(startFirstMessage)
	f.send(t, "spent 50 on food")
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	f := newFixture(t)

	f.expectReply(dontUnderstandMessage)
	f.send(t, "/none")
}

func Test_OnLockedRecord_ShouldRequirePin(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "1234", func(rec *user.Record) {
		rec.Expenses = []user.ExpenseRecord{
			{Amount: 12, Category: "food", Created: testNow.Add(-time.Hour)},
			{Amount: 5, Category: "food", Created: testNow.AddDate(0, 0, -1)},
		}
	})
	f.svc.sessions.set(userID, session{})

	f.expectReply(pinRequiredMessage)
	f.send(t, "/summary")

	f.expectReply(incorrectPinMessage)
	f.send(t, "0000")

	f.expectReply(accessGrantedMessage)
	f.send(t, "1234")

	f.expectReply("📊 Today: 12.00 USD")
	f.send(t, "/summary")
}

func Test_OnStart_KnownUserWithPin_ShouldLockSession(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "1234", nil)

	f.expectReply(welcomeBackMessage)
	f.send(t, "/start")

	f.expectReply(pinRequiredMessage)
	f.send(t, "/export")
}

func Test_OnSummary_WithBudget_ShouldShowMonthSpend(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "", func(rec *user.Record) {
		rec.Budget = 100
		rec.Expenses = []user.ExpenseRecord{
			{Amount: 30, Category: "food", Created: testNow.Add(-time.Hour)},
			{Amount: 50, Category: "rent", Created: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)},
			{Amount: 40, Category: "rent", Created: time.Date(2024, 4, 30, 10, 0, 0, 0, time.UTC)},
		}
	})

	f.expectReply("📊 Today: 30.00 USD\n📅 This month: 80.00 of 100.00 USD\nRemaining: 20.00 USD")
	f.send(t, "/summary")
}

func Test_OnLimitCommand_ShouldValidateAndSave(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "", nil)

	f.expectReply("✅ Limit set: food → 500.00 USD")
	f.send(t, "/limit Food 500")

	f.expectReply(limitPromptMessage)
	f.send(t, "/limit")

	f.expectReply(limitFormatMessage)
	f.send(t, "food")

	f.expectReply(limitFormatMessage)
	f.send(t, "food -3")

	f.expectReply("✅ Limit set: food → 20.00 USD")
	f.send(t, "food 20")

	rec := f.load(t)
	limit, ok := rec.Limit("food")
	assert.True(t, ok)
	assert.Equal(t, 20.0, limit)
}

func Test_OnBudgetCommand_ShouldRejectNegativeAmount(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "", nil)

	f.expectReply(budgetPromptMessage)
	f.send(t, "/setbudget")

	f.expectReply(invalidBudgetMessage)
	f.send(t, "-5")

	f.expectReply("✅ Monthly budget set to 2000.00 USD")
	f.send(t, "2000")

	assert.Equal(t, 2000.0, f.load(t).Budget)
}

func Test_OnRecurringCommand_ShouldKeepTemplateOnly(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "", nil)

	f.expectReply(recurringSavedMessage)
	f.send(t, "/recurring Netflix 100")

	rec := f.load(t)
	assert.Empty(t, rec.Expenses)
	assert.Equal(t, []user.ExpenseRecord{
		{Amount: 100, Category: "netflix", Description: "Netflix 100"},
	}, rec.Recurring)
}

func Test_OnCurrencyChange_ShouldConvertBudgetAndLimits(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "", func(rec *user.Record) {
		rec.Budget = 100
		rec.SetLimit("food", 50)
	})

	f.expectReply(currencyPromptMessage)
	f.press(t, settingsCurrencyCallback)

	f.rates(map[string]float64{
		"100 USD EUR": 90,
		"50 USD EUR":  45,
	}, nil)
	f.expectReply("✅ Currency updated to EUR.")
	f.send(t, "eur")

	rec := f.load(t)
	assert.Equal(t, "EUR", rec.Currency)
	assert.Equal(t, 90.0, rec.Budget)
	assert.Equal(t, map[string]float64{"food": 45}, rec.CategoryLimits)
}

func Test_OnCurrencyChange_WithoutRates_ShouldKeepCurrency(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "", func(rec *user.Record) {
		rec.Budget = 100
	})

	f.expectReply(currencyPromptMessage)
	f.press(t, settingsCurrencyCallback)

	f.rates(nil, errors.Wrap(customerr.ErrRateUnavailable, "rate EUR"))
	f.expectReply("⚠️ Can't get exchange rates for EUR right now. Your currency was not changed, try again later.")
	f.send(t, "EUR")

	rec := f.load(t)
	assert.Equal(t, "USD", rec.Currency)
	assert.Equal(t, 100.0, rec.Budget)
}

func Test_OnCurrencyChange_ShouldRejectMalformedCode(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "", nil)

	f.expectReply(currencyPromptMessage)
	f.press(t, settingsCurrencyCallback)

	f.expectReply(invalidCurrencyMessage)
	f.send(t, "e1r")

	f.expectReply("✅ Currency updated to USD.")
	f.send(t, "usd")
}

func Test_OnSettings_ShouldShowMenuAndChangeEmail(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "1234", nil)

	f.chat.SendMenuMock.
		Expect(settingsMenuMessage, userID, settingsMenu("USD")).
		Return(nil)
	f.send(t, "/settings")

	f.expectReply(settingsEmailMessage)
	f.press(t, settingsEmailCallback)

	f.expectReply(invalidEmailMessage)
	f.send(t, "bad@")

	f.expectReply("📩 Email saved: a@b.io")
	f.send(t, "a@b.io")

	rec := f.load(t)
	assert.Equal(t, "a@b.io", rec.EmailAddress())
}

func Test_OnSettingsPin_ShouldReplacePin(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "1234", nil)

	f.expectReply(newPinPromptMessage)
	f.press(t, settingsPinCallback)

	f.expectReply(pinUpdatedMessage)
	f.send(t, "4321")

	assert.True(t, f.records.VerifyPin(context.Background(), userID, "4321"))
	assert.False(t, f.records.VerifyPin(context.Background(), userID, "1234"))
}

func Test_OnPhoto_ShouldStoreReceipt(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "", nil)

	f.expectReply(uploadPromptMessage)
	f.send(t, "/upload")

	f.expectReply(uploadPromptMessage)
	f.send(t, "where is it")

	f.chat.DownloadFileMock.
		Inspect(func(_ context.Context, fileID string) {
			assert.Equal(t, "file-1", fileID)
		}).
		Return([]byte("jpeg"), nil)
	f.receipts.SaveReceiptMock.
		Inspect(func(_ context.Context, id int64, photo []byte) {
			assert.Equal(t, userID, id)
			assert.Equal(t, []byte("jpeg"), photo)
		}).
		Return("receipts/123/a.jpg", nil)
	f.expectReply(receiptSavedMessage)

	err := f.svc.HandleIncomingMessage(context.Background(), Message{PhotoFileID: "file-1", UserID: userID})
	assert.NoError(t, err)
}

func Test_OnPhotoDownloadFailure_ShouldApologise(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "", nil)

	f.chat.DownloadFileMock.
		Return(nil, customerr.NewNetworkError("download file", errors.New("timeout")))
	f.expectReply("Sorry, something wrong happened...\n" + receiptFailedMessage)

	err := f.svc.HandleIncomingMessage(context.Background(), Message{PhotoFileID: "file-1", UserID: userID})
	assert.Error(t, err)
}

func Test_OnExport_ShouldSendCSVDocument(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "", func(rec *user.Record) {
		rec.Expenses = []user.ExpenseRecord{{Amount: 12, Category: "food", Created: testNow, Description: "lunch"}}
	})

	f.chat.SendDocumentMock.
		Expect(userID, exportFileName, []byte("date,amount,category,description\n2024-05-10T15:00:00Z,12.00,food,lunch\n")).
		Return(nil)
	f.send(t, "/export")
}

func Test_OnExport_WithoutExpenses_ShouldSayNothingToExport(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "", nil)

	f.expectReply(noExportMessage)
	f.send(t, "/export")
}

func Test_OnConvertCommand_ShouldConvertAmount(t *testing.T) {
	f := newFixture(t)

	f.rates(map[string]float64{"100 EUR USD": 108.7}, nil)
	f.expectReply("💱 100.00 EUR = 108.70 USD")
	f.send(t, "/convert 100 eur usd")

	f.expectReply(convertUsageMessage)
	f.send(t, "/convert 100")
}

func Test_OnCancel_ShouldReturnToIdle(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "", nil)

	f.expectReply(budgetPromptMessage)
	f.send(t, "/setbudget")

	f.expectReply(cancelledMessage)
	f.send(t, "/cancel")

	f.expectReply("💰 Added 7.00 USD for taxi")
	f.send(t, "7 taxi")
}

func Test_OnStorageFailure_ShouldApologiseAndReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	chat := mock.NewChatClientMock(m)
	records := mock.NewRecordStoreMock(m)
	svc := NewService(chat, records, mock.NewCurrencyConverterMock(m), mock.NewReceiptStoreMock(m), utcConfig{})

	records.LoadMock.Return(user.NewRecord(), true)
	records.UpdateMock.Return(user.Record{}, customerr.NewStorageError("save record", errors.New("disk full")))
	chat.SendMessageMock.
		Expect("Sorry, something wrong happened...\n"+cannotSaveMessage, userID).
		Return(nil)

	err := svc.HandleIncomingMessage(context.Background(), Message{Text: "spent 5 on tea", UserID: userID})

	assert.True(t, customerr.IsStorage(err))
}

func Test_OnCurrencyChange_ShouldFetchRatesOutsideRecordLock(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "", func(rec *user.Record) {
		rec.Budget = 100
	})

	f.expectReply(currencyPromptMessage)
	f.press(t, settingsCurrencyCallback)

	f.converter.ConvertMock.Set(func(ctx context.Context, amount float64, from, to string) (float64, error) {
		updated := make(chan error, 1)
		go func() {
			_, err := f.records.Update(ctx, userID, func(*user.Record) error { return nil })
			updated <- err
		}()
		select {
		case err := <-updated:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Error("record stayed locked while rates were fetched")
		}
		return 90, nil
	})
	f.expectReply("✅ Currency updated to EUR.")
	f.send(t, "EUR")

	assert.Equal(t, 90.0, f.load(t).Budget)
}

func Test_OnCurrencyChange_RecordChangedMeanwhile_ShouldAskAgain(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "", func(rec *user.Record) {
		rec.Budget = 100
	})

	f.expectReply(currencyPromptMessage)
	f.press(t, settingsCurrencyCallback)

	f.converter.ConvertMock.Set(func(ctx context.Context, amount float64, from, to string) (float64, error) {
		_, err := f.records.Update(ctx, userID, func(rec *user.Record) error {
			rec.Budget = 300
			return nil
		})
		require.NoError(t, err)
		return 90, nil
	})
	f.expectReply(recordChangedMessage)
	f.send(t, "EUR")

	rec := f.load(t)
	assert.Equal(t, "USD", rec.Currency)
	assert.Equal(t, 300.0, rec.Budget)
}

func Test_OnBudgetCommand_ShouldRejectNonFiniteAmount(t *testing.T) {
	f := newFixture(t)
	f.registered(t, "", nil)

	f.expectReply(invalidBudgetMessage)
	f.send(t, "/setbudget 1e400")

	assert.Equal(t, 0.0, f.load(t).Budget)
}
