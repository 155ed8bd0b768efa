package reports

//go:generate minimock -i producer -o ./mock/ -s _mock.go

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/expense-bot/internal/entity/user"
	"max.ks1230/expense-bot/internal/model/customerr"
)

type producer interface {
	ProduceMessage(key, value []byte) error
}

// Queue hands monthly reports over to the reporter process instead of mailing inline.
type Queue struct {
	producer producer
	clock    func() time.Time
}

func NewQueue(producer producer) *Queue {
	return &Queue{producer: producer, clock: time.Now}
}

// SendReport only enqueues; the reporter reloads the record itself.
func (q *Queue) SendReport(_ context.Context, userID int64, rec user.Record) error {
	if rec.EmailAddress() == "" {
		return nil
	}

	payload, err := Request{UserID: userID, RequestedAt: q.clock()}.Encode()
	if err != nil {
		return errors.Wrap(err, "enqueue report")
	}
	if err = q.producer.ProduceMessage([]byte(strconv.FormatInt(userID, 10)), payload); err != nil {
		return customerr.NewNetworkError("enqueue report", err)
	}
	return nil
}
