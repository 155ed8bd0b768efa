package reports

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Request asks the reporter to mail one user's monthly report.
type Request struct {
	UserID      int64     `json:"user_id"`
	RequestedAt time.Time `json:"requested_at"`
}

func (r Request) Encode() ([]byte, error) {
	return json.Marshal(r)
}

func DecodeRequest(raw []byte) (Request, error) {
	var r Request
	if err := json.Unmarshal(raw, &r); err != nil {
		return Request{}, errors.Wrap(err, "decode report request")
	}
	if r.UserID == 0 {
		return Request{}, errors.New("report request without user id")
	}
	return r, nil
}
