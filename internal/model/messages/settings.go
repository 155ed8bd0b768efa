package messages

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/entity/currency"
	"max.ks1230/expense-bot/internal/entity/keyboard"
	"max.ks1230/expense-bot/internal/entity/user"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/customerr"
	"max.ks1230/expense-bot/internal/utils"
)

const (
	settingsPinCallback      = "settings_pin"
	settingsCurrencyCallback = "settings_currency"
	settingsEmailCallback    = "settings_email"
	backToMainCallback       = "back_to_main"
)

const (
	settingsMenuMessage     = "⚙️ Settings Menu:"
	newPinPromptMessage     = "🔐 Send new 4-digit PIN:"
	currencyPromptMessage   = "💱 Enter 3-letter currency code (e.g., " + currency.USD + ", " + currency.EUR + ", " + currency.GHS + "):"
	invalidCurrencyMessage  = "❌ Invalid currency. Enter a 3-letter code:"
	settingsEmailMessage    = "📧 Enter your email address:"
	backToMainMessage       = "✅ Back to main. Use /add or /summary."
	currencyUnchangedFormat = "⚠️ Can't get exchange rates for %s right now. Your currency was not changed, try again later."
	recordChangedMessage    = "⚠️ Your budget or limits changed meanwhile. Send the currency code again:"
)

var errRecordChanged = errors.New("record changed during currency conversion")

func settingsMenu(current string) keyboard.Menu {
	return keyboard.Menu{
		{{Text: "🔐 Change PIN", Data: settingsPinCallback}},
		{{Text: fmt.Sprintf("💱 Change Currency (Current: %s)", current), Data: settingsCurrencyCallback}},
		{{Text: "📧 Set/Change Email", Data: settingsEmailCallback}},
		{{Text: "⬅️ Back", Data: backToMainCallback}},
	}
}

func (s *Service) handleSettings(_ context.Context, _ string, userID int64, rec user.Record) (string, error) {
	if err := s.tgClient.SendMenu(settingsMenuMessage, userID, settingsMenu(rec.Currency)); err != nil {
		return "", errors.Wrap(err, "handle settings")
	}
	return "", nil
}

func (s *Service) handleCallback(_ context.Context, data string, userID int64, _ user.Record) (string, error) {
	switch data {
	case settingsPinCallback:
		s.sessions.setState(userID, stateAwaitingNewPin)
		return newPinPromptMessage, nil
	case settingsCurrencyCallback:
		s.sessions.setState(userID, stateAwaitingCurrency)
		return currencyPromptMessage, nil
	case settingsEmailCallback:
		s.sessions.setState(userID, stateAwaitingEmail)
		return settingsEmailMessage, nil
	case backToMainCallback:
		s.sessions.setState(userID, stateIdle)
		return backToMainMessage, nil
	}
	return dontUnderstandMessage, nil
}

// saveCurrency moves budget and limits into the new currency. Stored expenses keep their amounts.
// Rates are fetched before the record is locked; the record must not change in between.
func (s *Service) saveCurrency(ctx context.Context, text string, userID int64, snapshot user.Record) (string, error) {
	code, ok := currency.NormalizeCode(text)
	if !ok {
		return "", customerr.NewUserInputError(invalidCurrencyMessage)
	}

	converted := snapshot
	if snapshot.Currency != code {
		var err error
		converted, err = s.convertRecord(ctx, snapshot, code)
		if isRateFailure(err) {
			logger.Warn("currency not changed", zap.Int64("userID", userID), zap.String("to", code), zap.Error(err))
			s.sessions.setState(userID, stateIdle)
			return fmt.Sprintf(currencyUnchangedFormat, code), nil
		}
		if err != nil {
			return "", errors.Wrap(err, "convert record")
		}
	}

	_, err := s.records.Update(ctx, userID, func(rec *user.Record) error {
		if !sameMoneySettings(*rec, snapshot) {
			return errRecordChanged
		}
		rec.Currency = converted.Currency
		rec.Budget = converted.Budget
		rec.CategoryLimits = converted.CategoryLimits
		return nil
	})
	if errors.Is(err, errRecordChanged) {
		return "", customerr.NewUserInputError(recordChangedMessage)
	}
	if err != nil {
		return cannotSaveMessage, errors.Wrap(err, "save currency")
	}

	s.sessions.setState(userID, stateIdle)
	return fmt.Sprintf("✅ Currency updated to %s.", code), nil
}

// convertRecord returns a copy of rec with budget and limits in currency to.
func (s *Service) convertRecord(ctx context.Context, rec user.Record, to string) (user.Record, error) {
	budget, err := s.converter.Convert(ctx, rec.Budget, rec.Currency, to)
	if err != nil {
		return user.Record{}, err
	}

	limits := make(map[string]float64, len(rec.CategoryLimits))
	for cat, limit := range rec.CategoryLimits {
		converted, err := s.converter.Convert(ctx, limit, rec.Currency, to)
		if err != nil {
			return user.Record{}, err
		}
		limits[cat] = utils.Money(converted)
	}

	rec.Budget = utils.Money(budget)
	rec.CategoryLimits = limits
	rec.Currency = to
	return rec, nil
}

func sameMoneySettings(a, b user.Record) bool {
	return a.Currency == b.Currency && a.Budget == b.Budget && maps.Equal(a.CategoryLimits, b.CategoryLimits)
}

func (s *Service) handleConvert(ctx context.Context, arg string, _ int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) != 3 {
		return "", customerr.NewUserInputError(convertUsageMessage)
	}
	amount, ok := parseAmount(args[0])
	from, fromOK := currency.NormalizeCode(args[1])
	to, toOK := currency.NormalizeCode(args[2])
	if !ok || !fromOK || !toOK {
		return "", customerr.NewUserInputError(convertUsageMessage)
	}

	converted, err := s.converter.Convert(ctx, amount, from, to)
	if isRateFailure(err) {
		return ratesUnavailableMessage, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle convert")
	}
	return fmt.Sprintf("💱 %s %s = %s %s",
		utils.FormatMoney(amount), from, utils.FormatMoney(converted), to), nil
}

func isRateFailure(err error) bool {
	return errors.Is(err, customerr.ErrRateUnavailable) || customerr.IsNetwork(err)
}
