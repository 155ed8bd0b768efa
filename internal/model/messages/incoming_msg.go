package messages

//go:generate minimock -i chatClient,recordStore,currencyConverter,receiptStore -o ./mock/ -s _mock.go

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/entity/keyboard"
	"max.ks1230/expense-bot/internal/entity/user"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/customerr"
)

type chatClient interface {
	SendMessage(text string, userID int64) error
	SendMenu(text string, userID int64, menu keyboard.Menu) error
	SendDocument(userID int64, name string, data []byte) error
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}

type recordStore interface {
	Load(ctx context.Context, userID int64) (user.Record, bool)
	Update(ctx context.Context, userID int64, fn func(rec *user.Record) error) (user.Record, error)
	SetPin(ctx context.Context, userID int64, pin string) error
	VerifyPin(ctx context.Context, userID int64, candidate string) bool
}

type currencyConverter interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
}

type receiptStore interface {
	SaveReceipt(ctx context.Context, userID int64, photo []byte) (string, error)
}

type config interface {
	Location() *time.Location
}

type Service struct {
	tgClient  chatClient
	records   recordStore
	converter currencyConverter
	receipts  receiptStore
	sessions  *sessions
	handlers  handlerMap
	location  *time.Location
	clock     func() time.Time
}

func NewService(
	tgClient chatClient,
	records recordStore,
	converter currencyConverter,
	receipts receiptStore,
	config config,
) *Service {
	s := &Service{
		tgClient:  tgClient,
		records:   records,
		converter: converter,
		receipts:  receipts,
		sessions:  newSessions(),
		location:  config.Location(),
		clock:     time.Now,
	}
	s.handlers = newMap(s)
	return s
}

// Message is one inbound update: text, a photo or an inline button press.
type Message struct {
	Text         string
	UserID       int64
	PhotoFileID  string
	CallbackData string
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()
	span.SetTag("userID", msg.UserID)

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.dispatch(ctx, msg)
	if customerr.IsUserInput(err) {
		logger.Debug("rejected input", zap.Int64("userID", msg.UserID), zap.Error(err))
		return s.tgClient.SendMessage(err.Error(), msg.UserID)
	}
	if err != nil {
		if resp == "" {
			resp = tryLaterMessage
		}
		_ = s.tgClient.SendMessage("Sorry, something wrong happened...\n"+resp, msg.UserID)
		return err
	}
	if resp == "" {
		return nil
	}
	return s.tgClient.SendMessage(resp, msg.UserID)
}

func (s *Service) dispatch(ctx context.Context, msg Message) (string, error) {
	switch {
	case msg.CallbackData != "":
		return s.withRecord(s.handleCallback)(ctx, msg.CallbackData, msg.UserID)
	case msg.PhotoFileID != "":
		return s.withRecord(s.handlePhoto)(ctx, msg.PhotoFileID, msg.UserID)
	}

	cmd, arg := parseCommand(msg.Text)
	if cmd == "" {
		return s.handleText(ctx, arg, msg.UserID)
	}

	handler, ok := s.handlers[cmd]
	if ok {
		return handler(ctx, arg, msg.UserID)
	}
	return dontUnderstandMessage, nil
}

// handleText routes plain text by what the user was last asked for.
func (s *Service) handleText(ctx context.Context, text string, userID int64) (string, error) {
	switch s.sessions.get(userID).state {
	case stateAwaitingNewPin:
		return s.withRecord(s.saveNewPin)(ctx, text, userID)
	case stateAwaitingPin:
		return s.verifyPin(ctx, text, userID)
	case stateAwaitingRecurring:
		return s.withRecord(s.saveRecurring)(ctx, text, userID)
	case stateAwaitingLimit:
		return s.withRecord(s.saveLimit)(ctx, text, userID)
	case stateAwaitingBudget:
		return s.withRecord(s.saveBudget)(ctx, text, userID)
	case stateAwaitingEmail:
		return s.withRecord(s.saveEmail)(ctx, text, userID)
	case stateAwaitingCurrency:
		return s.withRecord(s.saveCurrency)(ctx, text, userID)
	case stateAwaitingReceipt:
		return uploadPromptMessage, nil
	default:
		return s.withRecord(s.saveExpense)(ctx, text, userID)
	}
}

// withRecord is the PIN gate: the user must have started, and a PIN-protected
// record needs an unlocked session.
func (s *Service) withRecord(next recordHandler) handler {
	return func(ctx context.Context, arg string, userID int64) (string, error) {
		rec, ok := s.records.Load(ctx, userID)
		if !ok {
			return startFirstMessage, nil
		}
		if rec.HasPin() && !s.sessions.get(userID).unlocked {
			s.sessions.set(userID, session{state: stateAwaitingPin})
			return pinRequiredMessage, nil
		}
		return next(ctx, arg, userID, rec)
	}
}

// promptOr asks for input and waits in next when arg is empty, otherwise applies arg right away.
func (s *Service) promptOr(next state, prompt string, apply recordHandler) recordHandler {
	return func(ctx context.Context, arg string, userID int64, rec user.Record) (string, error) {
		if arg == "" {
			s.sessions.setState(userID, next)
			return prompt, nil
		}
		return apply(ctx, arg, userID, rec)
	}
}

// now is the wall clock in the configured zone, which defines "today".
func (s *Service) now() time.Time {
	return s.clock().In(s.location)
}
