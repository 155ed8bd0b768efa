package mail

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"max.ks1230/expense-bot/internal/logger"
)

const (
	attachmentContentType = "application/octet-stream"
	implicitTLSPort       = 465
)

type config interface {
	Host() string
	Port() int
	Username() string
	Password() string
	From() string
	Timeout() time.Duration
}

// Message is a plain text mail with at most one binary attachment.
type Message struct {
	To             string
	Subject        string
	Body           string
	AttachmentName string
	Attachment     []byte
}

type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	ssl      bool
	timeout  time.Duration
}

// New builds a mailer for an SMTP relay; port 465 implies implicit TLS.
func New(cfg config) *Mailer {
	return &Mailer{
		host:     cfg.Host(),
		port:     cfg.Port(),
		username: cfg.Username(),
		password: cfg.Password(),
		from:     cfg.From(),
		ssl:      cfg.Port() == implicitTLSPort,
		timeout:  cfg.Timeout(),
	}
}

// Send delivers msg within the configured timeout or ctx, whichever ends first.
// gomail renders the message; the SMTP session runs on a connection with a deadline.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	deliver := gomail.SendFunc(func(from string, to []string, body io.WriterTo) error {
		return m.deliver(ctx, from, to, body)
	})
	if err := gomail.Send(deliver, m.compose(msg)); err != nil {
		return errors.Wrap(err, "send mail")
	}

	logger.Info("mail sent", zap.String("subject", msg.Subject))
	return nil
}

func (m *Mailer) deliver(ctx context.Context, from string, to []string, body io.WriterTo) error {
	var dialer net.Dialer
	raw, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(m.host, strconv.Itoa(m.port)))
	if err != nil {
		return errors.Wrap(err, "dial relay")
	}
	defer raw.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err = raw.SetDeadline(deadline); err != nil {
			return errors.Wrap(err, "set deadline")
		}
	}
	stop := context.AfterFunc(ctx, func() { _ = raw.Close() })
	defer stop()

	conn := raw
	if m.ssl {
		conn = tls.Client(raw, m.tlsConfig())
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return errors.Wrap(err, "greeting")
	}
	defer client.Close()

	if err = m.secure(client); err != nil {
		return err
	}

	if err = client.Mail(from); err != nil {
		return errors.Wrap(err, "mail from")
	}
	for _, rcpt := range to {
		if err = client.Rcpt(rcpt); err != nil {
			return errors.Wrap(err, "rcpt to")
		}
	}

	w, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "data")
	}
	if _, err = body.WriteTo(w); err != nil {
		_ = w.Close()
		return errors.Wrap(err, "write body")
	}
	if err = w.Close(); err != nil {
		return errors.Wrap(err, "end data")
	}
	return client.Quit()
}

// secure upgrades a plain session with STARTTLS and logs in when the relay offers it.
func (m *Mailer) secure(client *smtp.Client) error {
	if !m.ssl {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(m.tlsConfig()); err != nil {
				return errors.Wrap(err, "starttls")
			}
		}
	}

	if m.username == "" {
		return nil
	}
	if ok, _ := client.Extension("AUTH"); !ok {
		return nil
	}
	if err := client.Auth(smtp.PlainAuth("", m.username, m.password, m.host)); err != nil {
		return errors.Wrap(err, "auth")
	}
	return nil
}

func (m *Mailer) tlsConfig() *tls.Config {
	return &tls.Config{ServerName: m.host, MinVersion: tls.VersionTLS12}
}

func (m *Mailer) compose(msg Message) *gomail.Message {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)

	if msg.AttachmentName != "" {
		data := msg.Attachment
		gm.Attach(msg.AttachmentName,
			gomail.SetHeader(map[string][]string{"Content-Type": {attachmentContentType}}),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
		)
	}
	return gm
}
