package cointrack

import "errors"

var (
	// ErrStorageUnavailable is returned when a backing file or its directory cannot be created or accessed.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCorruptRecord is returned when a transaction line cannot be decoded.
	ErrCorruptRecord = errors.New("corrupt record")

	// ErrInvalidDate is returned when a record's date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidAmount is returned for amounts or limits that are not non-negative decimals.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidKind is returned for a transaction kind other than INCOME or EXPENSE.
	ErrInvalidKind = errors.New("invalid transaction kind")

	// ErrInvalidCategory is returned for an empty category or one containing the field delimiter.
	ErrInvalidCategory = errors.New("invalid category")
)
