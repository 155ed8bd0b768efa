package reports

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/expense-bot/internal/entity/user"
	"max.ks1230/expense-bot/internal/utils"
)

var (
	exportHeader = []string{"date", "amount", "category", "description"}
	reportHeader = []string{"date", "amount", "category"}
)

// ExportCSV renders every expense for the chat /export command.
func ExportCSV(expenses []user.ExpenseRecord) ([]byte, error) {
	return render(expenses, exportHeader)
}

// ReportCSV renders every expense for the mailed monthly report.
func ReportCSV(expenses []user.ExpenseRecord) ([]byte, error) {
	return render(expenses, reportHeader)
}

func render(expenses []user.ExpenseRecord, header []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, errors.Wrap(err, "write csv header")
	}
	for _, exp := range expenses {
		row := []string{
			formatDate(exp.Created),
			utils.FormatMoney(exp.Amount),
			exp.Category,
			exp.Description,
		}
		if err := w.Write(row[:len(header)]); err != nil {
			return nil, errors.Wrap(err, "write csv row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "flush csv")
	}
	return buf.Bytes(), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
