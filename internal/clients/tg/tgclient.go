package tg

import (
	"context"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/entity/keyboard"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/customerr"
	"max.ks1230/expense-bot/internal/model/messages"
)

const (
	defaultUpdateOffset = 0
	longPollSeconds     = 60
	apiTimeout          = (longPollSeconds + 15) * time.Second
	downloadTimeout     = 30 * time.Second
	maxDownloadBytes    = 20 << 20
)

type tokenGetter interface {
	Token() string
}

type Client struct {
	client        *tgbotapi.BotAPI
	files         *http.Client
	updateTimeout time.Duration
}

func New(tokenGetter tokenGetter, updateTimeout time.Duration) (*Client, error) {
	client, err := tgbotapi.NewBotAPIWithClient(
		tokenGetter.Token(),
		tgbotapi.APIEndpoint,
		&http.Client{Timeout: apiTimeout},
	)
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	return &Client{
		client:        client,
		files:         &http.Client{Timeout: downloadTimeout},
		updateTimeout: updateTimeout,
	}, nil
}

func (c *Client) SendMessage(text string, userID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(userID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

func (c *Client) SendMenu(text string, userID int64, menu keyboard.Menu) error {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(menu))
	for _, line := range menu {
		row := make([]tgbotapi.InlineKeyboardButton, 0, len(line))
		for _, b := range line {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
	}

	msg := tgbotapi.NewMessage(userID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := c.client.Send(msg); err != nil {
		return errors.Wrap(err, "client.Send menu")
	}
	return nil
}

func (c *Client) SendDocument(userID int64, name string, data []byte) error {
	doc := tgbotapi.NewDocument(userID, tgbotapi.FileBytes{Name: name, Bytes: data})
	if _, err := c.client.Send(doc); err != nil {
		return errors.Wrap(err, "client.Send document")
	}
	return nil
}

// DownloadFile fetches a file the user sent, e.g. a receipt photo.
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	url, err := c.client.GetFileDirectURL(fileID)
	if err != nil {
		return nil, customerr.NewNetworkError("resolve file url", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build download request")
	}
	resp, err := c.files.Do(req)
	if err != nil {
		return nil, customerr.NewNetworkError("download file", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, customerr.NewNetworkError("download file", errors.Errorf("unexpected status %d", resp.StatusCode))
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes))
	if err != nil {
		return nil, customerr.NewNetworkError("read file", err)
	}
	return data, nil
}

func (c *Client) ListenUpdates(ctx context.Context, msgModel *messages.Service) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = longPollSeconds

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			c.client.StopReceivingUpdates()
			logger.Info("Stop listening for messages")
			return
		case update := <-updates:
			c.listenOnce(ctx, update, msgModel)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, msgModel *messages.Service) {
	msg, ok := c.toMessage(update)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, c.updateTimeout)
	defer cancel()

	err := msgModel.HandleIncomingMessage(ctx, msg)
	if err != nil {
		logger.Error("error processing message", zap.Int64("userID", msg.UserID), zap.Error(err))
	}
}

func (c *Client) toMessage(update tgbotapi.Update) (messages.Message, bool) {
	if cq := update.CallbackQuery; cq != nil && cq.From != nil {
		if _, err := c.client.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
			logger.Warn("cannot answer callback", zap.Error(err))
		}
		logger.Info("callback", zap.String("data", cq.Data), zap.String("user", cq.From.UserName))
		return messages.Message{UserID: cq.From.ID, CallbackData: cq.Data}, true
	}

	m := update.Message
	if m == nil || m.From == nil {
		return messages.Message{}, false
	}
	logger.Info(m.Text, zap.String("user", m.From.UserName))

	msg := messages.Message{
		Text:   m.Text,
		UserID: m.From.ID,
	}
	if len(m.Photo) > 0 {
		// sizes come smallest first
		msg.PhotoFileID = m.Photo[len(m.Photo)-1].FileID
	}
	return msg, true
}
