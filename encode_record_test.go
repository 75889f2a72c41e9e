package cointrack

import (
	"strings"
	"testing"

	"github.com/etnz/cointrack/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRecord(t *testing.T) {
	tx := Transaction{
		ID:          "id-1",
		Date:        date.New(2025, 8, 1),
		Kind:        Expense,
		Category:    "Food",
		Amount:      dec("12.5"),
		Description: "pizza",
	}
	assert.Equal(t, "id-1|2025-08-01|EXPENSE|Food|12.5|pizza", EncodeRecord(tx))
}

func TestRecord_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		tx   Transaction
	}{
		{name: "income", tx: newTx(t, Income, "Salary", "2500.00", "august")},
		{name: "expense", tx: newTx(t, Expense, "Food", "0.99", "gum")},
		{name: "empty description", tx: newTx(t, Expense, "Rent", "800", "")},
		{name: "zero amount", tx: newTx(t, Income, "Misc", "0", "nothing")},
		{name: "unicode", tx: newTx(t, Expense, "Café", "3.20", "croissant ☕")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeRecord(EncodeRecord(tc.tx))
			require.NoError(t, err)
			assertSameTransaction(t, tc.tx, got)
		})
	}
}

func TestRecord_DelimiterInDescription(t *testing.T) {
	tx := newTx(t, Expense, "Food", "10", "a|b||c|")
	line := EncodeRecord(tx)
	assert.Len(t, strings.Split(line, Delimiter), 6)

	got, err := DecodeRecord(line)
	require.NoError(t, err)
	assert.Equal(t, "a/b//c/", got.Description)
}

func TestRecord_LineBreaksInDescription(t *testing.T) {
	tx := newTx(t, Income, "Salary", "10", "line one\nline two\r\nthree\rfour")
	line := EncodeRecord(tx)
	assert.NotContains(t, line, "\n")
	assert.NotContains(t, line, "\r")

	got, err := DecodeRecord(line)
	require.NoError(t, err)
	assert.Equal(t, "line one line two three four", got.Description)
}

func TestDecodeRecord_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		line    string
		wantErr error
	}{
		{name: "four fields", line: "id|2025-08-01|EXPENSE|Food", wantErr: ErrCorruptRecord},
		{name: "five fields", line: "id|2025-08-01|EXPENSE|Food|10", wantErr: ErrCorruptRecord},
		{name: "empty line", line: "", wantErr: ErrCorruptRecord},
		{name: "bad date", line: "id|01/08/2025|EXPENSE|Food|10|", wantErr: ErrInvalidDate},
		{name: "lenient date", line: "id|2025-8-1|EXPENSE|Food|10|", wantErr: ErrInvalidDate},
		{name: "bad amount", line: "id|2025-08-01|EXPENSE|Food|ten|", wantErr: ErrInvalidAmount},
		{name: "negative amount", line: "id|2025-08-01|EXPENSE|Food|-10|", wantErr: ErrInvalidAmount},
		{name: "bad kind", line: "id|2025-08-01|TRANSFER|Food|10|", wantErr: ErrInvalidKind},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeRecord(tc.line)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, ErrCorruptRecord, "every decoding failure is a corrupt record")
		})
	}
}

func TestDecodeRecord_LowerCaseKind(t *testing.T) {
	got, err := DecodeRecord("id|2025-08-01|income|Salary|100|")
	require.NoError(t, err)
	assert.Equal(t, Income, got.Kind)
	assert.Equal(t, "", got.Description)
}

func TestDecodeRecords(t *testing.T) {
	stream := `
a|2025-08-01|INCOME|Salary|100|first

b|2025-08-02|EXPENSE|Food|30|second
   
`
	txs, err := DecodeRecords(strings.NewReader(stream))
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "a", txs[0].ID)
	assert.Equal(t, "b", txs[1].ID)
}

func TestDecodeRecords_AbortsOnCorruptLine(t *testing.T) {
	stream := "a|2025-08-01|INCOME|Salary|100|first\nbroken\nb|2025-08-02|EXPENSE|Food|30|second\n"
	txs, err := DecodeRecords(strings.NewReader(stream))
	assert.ErrorIs(t, err, ErrCorruptRecord)
	assert.ErrorContains(t, err, "line 2")
	assert.Nil(t, txs)
}
