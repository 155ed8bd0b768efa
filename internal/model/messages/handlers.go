package messages

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/entity/user"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/customerr"
	"max.ks1230/expense-bot/internal/model/parser"
	"max.ks1230/expense-bot/internal/model/reports"
	"max.ks1230/expense-bot/internal/model/storage"
	"max.ks1230/expense-bot/internal/utils"
)

const welcomeMessage = "👋 Welcome to Expense Tracker Bot! 🧾💸\n\n" +
	"This bot helps you securely track expenses:\n" +
	"✅ Add expenses\n" +
	"✅ View summaries\n" +
	"✅ Set budgets & limits\n" +
	"✅ Upload receipts\n" +
	"✅ Export monthly CSV to email\n\n" +
	"Commands:\n" +
	"/add - Add expense\n" +
	"/recurring - Recurring expense\n" +
	"/limit - Category limit\n" +
	"/setbudget - Monthly budget\n" +
	"/setemail - Save email\n" +
	"/summary - Today's summary\n" +
	"/upload - Upload receipt\n" +
	"/export - Export CSV\n" +
	"/convert - Convert an amount, e.g. /convert 100 EUR USD\n" +
	"/settings - Manage PIN, currency, preferences\n" +
	"/cancel - Stop the current step\n\n" +
	"🔐 Set a 4-digit PIN to protect your data:"

const (
	welcomeBackMessage    = "👋 Welcome back! 🔐\n\nPlease enter your 4-digit PIN to access your data."
	setPinMessage         = "🔐 Set a 4-digit PIN to protect your data:"
	startFirstMessage     = "Please send /start first."
	pinRequiredMessage    = "🔐 Please enter your 4-digit PIN first."
	dontUnderstandMessage = "I don't understand you :("
	cancelledMessage      = "Cancelled. Use /add or /summary."
	tryLaterMessage       = "Please try again later."

	invalidPinMessage    = "PIN must be 4 digits. Try again:"
	incorrectPinMessage  = "❌ Incorrect PIN. Try again:"
	pinSetMessage        = "✅ PIN set! Start tracking expenses."
	pinUpdatedMessage    = "✅ PIN updated."
	accessGrantedMessage = "🔓 Access granted! Use /add to log expenses."

	addPromptMessage         = "Send your expense like 'Spent 50 on food'"
	unparsedExpenseMessage   = "Couldn't understand. Try 'Spent 50 on food'"
	recurringPromptMessage   = "Send recurring expense like: 'Netflix 100'"
	unparsedRecurringMessage = "Couldn't parse. Try again."
	recurringSavedMessage    = "✅ Recurring expense saved."
	limitPromptMessage       = "Send category limit like 'food 500'"
	limitFormatMessage       = "Format: category amount (e.g., food 500)"
	budgetPromptMessage      = "Enter your monthly budget (e.g., 2000):"
	invalidBudgetMessage     = "❌ Invalid input. Please enter a non-negative number (e.g., 2000):"
	emailPromptMessage       = "Enter your email for monthly reports:"
	invalidEmailMessage      = "❌ Invalid email. Enter again:"

	noExpensesMessage       = "No expenses recorded yet."
	noExportMessage         = "No expenses to export."
	uploadPromptMessage     = "📸 Please send the receipt photo now."
	receiptSavedMessage     = "🧾 Receipt saved."
	receiptFailedMessage    = "❗ Couldn't save the receipt."
	convertUsageMessage     = "Usage: /convert <amount> <FROM> <TO>, e.g. /convert 100 EUR USD"
	ratesUnavailableMessage = "⚠️ Exchange rates are unavailable right now, try again later."
	cannotSaveMessage       = "Can't save your data atm. Try later"

	exportFileName = "expenses.csv"
)

const (
	startCommand     = "/start"
	addCommand       = "/add"
	recurringCommand = "/recurring"
	limitCommand     = "/limit"
	budgetCommand    = "/setbudget"
	emailCommand     = "/setemail"
	summaryCommand   = "/summary"
	uploadCommand    = "/upload"
	exportCommand    = "/export"
	settingsCommand  = "/settings"
	convertCommand   = "/convert"
	cancelCommand    = "/cancel"
)

type handler func(ctx context.Context, arg string, userID int64) (string, error)

// recordHandler runs behind the PIN gate with the user's current record.
type recordHandler func(ctx context.Context, arg string, userID int64, rec user.Record) (string, error)

type handlerMap map[string]handler

func newMap(s *Service) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[cancelCommand] = s.handleCancel
	m[convertCommand] = s.handleConvert

	m[addCommand] = s.withRecord(s.promptOr(stateAwaitingExpense, addPromptMessage, s.saveExpense))
	m[recurringCommand] = s.withRecord(s.promptOr(stateAwaitingRecurring, recurringPromptMessage, s.saveRecurring))
	m[limitCommand] = s.withRecord(s.promptOr(stateAwaitingLimit, limitPromptMessage, s.saveLimit))
	m[budgetCommand] = s.withRecord(s.promptOr(stateAwaitingBudget, budgetPromptMessage, s.saveBudget))
	m[emailCommand] = s.withRecord(s.promptOr(stateAwaitingEmail, emailPromptMessage, s.saveEmail))
	m[uploadCommand] = s.withRecord(s.handleUpload)
	m[summaryCommand] = s.withRecord(s.handleSummary)
	m[exportCommand] = s.withRecord(s.handleExport)
	m[settingsCommand] = s.withRecord(s.handleSettings)

	return m
}

func (s *Service) handleStart(ctx context.Context, _ string, userID int64) (string, error) {
	rec, ok := s.records.Load(ctx, userID)
	if !ok {
		_, err := s.records.Update(ctx, userID, func(*user.Record) error { return nil })
		if err != nil {
			return cannotSaveMessage, errors.Wrap(err, "handle start")
		}
		s.sessions.set(userID, session{state: stateAwaitingNewPin})
		return welcomeMessage, nil
	}

	if !rec.HasPin() {
		s.sessions.set(userID, session{state: stateAwaitingNewPin})
		return setPinMessage, nil
	}
	s.sessions.set(userID, session{state: stateAwaitingPin})
	return welcomeBackMessage, nil
}

func (s *Service) handleCancel(_ context.Context, _ string, userID int64) (string, error) {
	s.sessions.setState(userID, stateIdle)
	return cancelledMessage, nil
}

func (s *Service) saveNewPin(ctx context.Context, text string, userID int64, rec user.Record) (string, error) {
	if !storage.ValidPin(text) {
		return "", customerr.NewUserInputError(invalidPinMessage)
	}
	if err := s.records.SetPin(ctx, userID, text); err != nil {
		return cannotSaveMessage, errors.Wrap(err, "save pin")
	}
	s.sessions.unlock(userID)

	if rec.HasPin() {
		return pinUpdatedMessage, nil
	}
	return pinSetMessage, nil
}

func (s *Service) verifyPin(ctx context.Context, text string, userID int64) (string, error) {
	if !s.records.VerifyPin(ctx, userID, text) {
		logger.Info("wrong pin", zap.Int64("userID", userID))
		return "", customerr.NewUserInputError(incorrectPinMessage)
	}
	s.sessions.unlock(userID)
	return accessGrantedMessage, nil
}

func (s *Service) saveExpense(ctx context.Context, text string, userID int64, _ user.Record) (string, error) {
	exp, ok := parser.ParseAt(text, s.clock())
	if !ok {
		return "", customerr.NewUserInputError(unparsedExpenseMessage)
	}

	rec, err := s.records.Update(ctx, userID, func(rec *user.Record) error {
		rec.Expenses = append(rec.Expenses, exp)
		return nil
	})
	if err != nil {
		return cannotSaveMessage, errors.Wrap(err, "save expense")
	}
	s.sessions.setState(userID, stateIdle)

	return fmt.Sprintf("💰 Added %s %s for %s", utils.FormatMoney(exp.Amount), rec.Currency, exp.Category), nil
}

// saveRecurring only keeps a template; recurring entries are never booked automatically.
func (s *Service) saveRecurring(ctx context.Context, text string, userID int64, _ user.Record) (string, error) {
	exp, ok := parser.Parse(text)
	if !ok {
		return "", customerr.NewUserInputError(unparsedRecurringMessage)
	}

	_, err := s.records.Update(ctx, userID, func(rec *user.Record) error {
		rec.Recurring = append(rec.Recurring, exp)
		return nil
	})
	if err != nil {
		return cannotSaveMessage, errors.Wrap(err, "save recurring")
	}
	s.sessions.setState(userID, stateIdle)
	return recurringSavedMessage, nil
}

func (s *Service) saveLimit(ctx context.Context, text string, userID int64, _ user.Record) (string, error) {
	args := strings.Fields(text)
	if len(args) != 2 {
		return "", customerr.NewUserInputError(limitFormatMessage)
	}
	limit, ok := parseAmount(args[1])
	if !ok {
		return "", customerr.NewUserInputError(limitFormatMessage)
	}
	category := user.NormalizeCategory(args[0])

	rec, err := s.records.Update(ctx, userID, func(rec *user.Record) error {
		rec.SetLimit(category, limit)
		return nil
	})
	if err != nil {
		return cannotSaveMessage, errors.Wrap(err, "save limit")
	}
	s.sessions.setState(userID, stateIdle)
	return fmt.Sprintf("✅ Limit set: %s → %s %s", category, utils.FormatMoney(limit), rec.Currency), nil
}

func (s *Service) saveBudget(ctx context.Context, text string, userID int64, _ user.Record) (string, error) {
	budget, ok := parseAmount(text)
	if !ok {
		return "", customerr.NewUserInputError(invalidBudgetMessage)
	}

	rec, err := s.records.Update(ctx, userID, func(rec *user.Record) error {
		rec.Budget = budget
		return nil
	})
	if err != nil {
		return cannotSaveMessage, errors.Wrap(err, "save budget")
	}
	s.sessions.setState(userID, stateIdle)
	return fmt.Sprintf("✅ Monthly budget set to %s %s", utils.FormatMoney(budget), rec.Currency), nil
}

func (s *Service) saveEmail(ctx context.Context, text string, userID int64, _ user.Record) (string, error) {
	if !validEmail(text) {
		return "", customerr.NewUserInputError(invalidEmailMessage)
	}

	_, err := s.records.Update(ctx, userID, func(rec *user.Record) error {
		rec.SetEmail(text)
		return nil
	})
	if err != nil {
		return cannotSaveMessage, errors.Wrap(err, "save email")
	}
	s.sessions.setState(userID, stateIdle)
	return "📩 Email saved: " + text, nil
}

func (s *Service) handleSummary(_ context.Context, _ string, _ int64, rec user.Record) (string, error) {
	if len(rec.Expenses) == 0 {
		return noExpensesMessage, nil
	}

	today := now.With(s.now())
	lines := []string{
		fmt.Sprintf("📊 Today: %s %s",
			utils.FormatMoney(rec.SpentBetween(today.BeginningOfDay(), today.EndOfDay())), rec.Currency),
	}

	if rec.Budget > 0 {
		month := rec.SpentBetween(today.BeginningOfMonth(), today.EndOfMonth())
		lines = append(lines, fmt.Sprintf("📅 This month: %s of %s %s",
			utils.FormatMoney(month), utils.FormatMoney(rec.Budget), rec.Currency))

		if left := utils.SubMoney(rec.Budget, month); left >= 0 {
			lines = append(lines, fmt.Sprintf("Remaining: %s %s", utils.FormatMoney(left), rec.Currency))
		} else {
			lines = append(lines, fmt.Sprintf("⚠️ Over budget by %s %s", utils.FormatMoney(-left), rec.Currency))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Service) handleUpload(_ context.Context, _ string, userID int64, _ user.Record) (string, error) {
	s.sessions.setState(userID, stateAwaitingReceipt)
	return uploadPromptMessage, nil
}

func (s *Service) handlePhoto(ctx context.Context, fileID string, userID int64, _ user.Record) (string, error) {
	photo, err := s.tgClient.DownloadFile(ctx, fileID)
	if err != nil {
		return receiptFailedMessage, errors.Wrap(err, "download receipt")
	}
	location, err := s.receipts.SaveReceipt(ctx, userID, photo)
	if err != nil {
		return receiptFailedMessage, errors.Wrap(err, "save receipt")
	}
	logger.Info("receipt saved", zap.Int64("userID", userID), zap.String("location", location))

	s.sessions.setState(userID, stateIdle)
	return receiptSavedMessage, nil
}

func (s *Service) handleExport(_ context.Context, _ string, userID int64, rec user.Record) (string, error) {
	if len(rec.Expenses) == 0 {
		return noExportMessage, nil
	}

	data, err := reports.ExportCSV(rec.Expenses)
	if err != nil {
		return "", errors.Wrap(err, "handle export")
	}
	if err = s.tgClient.SendDocument(userID, exportFileName, data); err != nil {
		return "", errors.Wrap(err, "handle export")
	}
	return "", nil
}
