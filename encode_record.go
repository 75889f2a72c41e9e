package cointrack

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/cointrack/date"
	"github.com/shopspring/decimal"
)

// Delimiter separates the fields of a record.
const Delimiter = "|"

// recordFields is the number of fields in a transaction record.
const recordFields = 6

var descriptionReplacer = strings.NewReplacer(Delimiter, "/", "\r\n", " ", "\n", " ", "\r", " ")

// EncodeRecord returns the single line representation of a transaction:
//
//	<id>|<YYYY-MM-DD>|<INCOME|EXPENSE>|<category>|<amount>|<description>
//
// A delimiter inside the description is replaced with "/" and line breaks
// with a space, so that the line always splits back into exactly six fields.
func EncodeRecord(tx Transaction) string {
	return strings.Join([]string{
		tx.ID,
		tx.Date.String(),
		string(tx.Kind),
		tx.Category,
		tx.Amount.String(),
		descriptionReplacer.Replace(tx.Description),
	}, Delimiter)
}

// DecodeRecord parses a line written by EncodeRecord.
//
// Every failure matches ErrCorruptRecord, date and amount failures also match
// ErrInvalidDate and ErrInvalidAmount respectively.
func DecodeRecord(line string) (Transaction, error) {
	// strings.Split keeps trailing empty fields, an empty description is valid.
	parts := strings.Split(line, Delimiter)
	if len(parts) < recordFields {
		return Transaction{}, fmt.Errorf("%w: got %d fields want %d in %q", ErrCorruptRecord, len(parts), recordFields, line)
	}

	day, err := date.ParseISO(parts[1])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w: %v", ErrCorruptRecord, ErrInvalidDate, err)
	}

	kind, err := ParseKind(parts[2])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}

	amount, err := decimal.NewFromString(parts[4])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w %q: %v", ErrCorruptRecord, ErrInvalidAmount, parts[4], err)
	}
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: %w %q is negative", ErrCorruptRecord, ErrInvalidAmount, parts[4])
	}

	return Transaction{
		ID:          parts[0],
		Date:        day,
		Kind:        kind,
		Category:    parts[3],
		Amount:      amount,
		Description: parts[5],
	}, nil
}

// DecodeRecords decodes every non-blank line of r, in order.
// The first malformed line aborts the whole decoding.
func DecodeRecords(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue // Skip blank lines
		}
		tx, err := DecodeRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading records: %w", err)
	}
	return txs, nil
}
