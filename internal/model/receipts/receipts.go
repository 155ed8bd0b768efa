package receipts

import (
	"path"
	"strconv"

	"github.com/google/uuid"
)

const extension = ".jpg"

// objectName is the backend-relative name of a new receipt: <userID>/<uuid>.jpg.
func objectName(userID int64) string {
	return path.Join(strconv.FormatInt(userID, 10), uuid.NewString()+extension)
}
