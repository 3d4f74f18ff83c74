package services

import (
	"fmt"
	"strconv"
	"strings"

	"tribunal_app_go/apperr"

	"gorm.io/gorm"
)

// File numbers have the form SS-NNNN-YY: settlement sort order padded to 2
// digits, 4-digit zero-padded sequence, 2-digit year. The sequence is
// independent per (settlement, year) and implicitly resets every year.

// FormatFileNumber builds the file number string from its components.
func FormatFileNumber(settlementOrder, sequence, year int) string {
	return fmt.Sprintf("%02d-%04d-%02d", settlementOrder, sequence, year%100)
}

// ParseFileNumber splits a file number into settlement order, sequence and
// two-digit year.
func ParseFileNumber(fileNumber string) (settlementOrder, sequence, year int, err error) {
	parts := strings.Split(strings.TrimSpace(fileNumber), "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("file number %q must have form SS-NNNN-YY", fileNumber)
	}
	settlementOrder, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("file number %q has a non-numeric settlement segment", fileNumber)
	}
	sequence, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("file number %q has a non-numeric sequence segment", fileNumber)
	}
	year, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("file number %q has a non-numeric year segment", fileNumber)
	}
	return settlementOrder, sequence, year, nil
}

// NextFileNumber allocates the next file number for a settlement and year.
// The counter row is advanced with a single upsert-and-return statement, so
// concurrent allocations in separate transactions cannot observe the same
// sequence value. Must run inside the transaction that inserts the appeal:
// a rollback releases the allocated value together with everything else.
func NextFileNumber(tx *gorm.DB, settlementOrder, year int) (string, error) {
	if settlementOrder < 1 || settlementOrder > 99 {
		return "", apperr.Validation("settlement sort order must be between 1 and 99, got %d", settlementOrder)
	}

	var seq int
	err := tx.Raw(`
		INSERT INTO file_number_counters (settlement_order, year, last_seq)
		VALUES (?, ?, 1)
		ON CONFLICT (settlement_order, year)
		DO UPDATE SET last_seq = last_seq + 1
		RETURNING last_seq
	`, settlementOrder, year).Scan(&seq).Error
	if err != nil {
		return "", fmt.Errorf("failed to advance file number counter: %w", err)
	}

	return FormatFileNumber(settlementOrder, seq, year), nil
}

// SeedFileNumberCounter raises the counter for (settlementOrder, year) to at
// least seq. Used by the legacy importer so numbering continues after
// imported records instead of restarting at 0001.
func SeedFileNumberCounter(tx *gorm.DB, settlementOrder, year, seq int) error {
	return tx.Exec(`
		INSERT INTO file_number_counters (settlement_order, year, last_seq)
		VALUES (?, ?, ?)
		ON CONFLICT (settlement_order, year)
		DO UPDATE SET last_seq = MAX(last_seq, excluded.last_seq)
	`, settlementOrder, year, seq).Error
}

// NextOrderNumber allocates the next value of the global order number
// sequence. One counter row shared by all appeals; same upsert-and-return
// pattern as NextFileNumber.
func NextOrderNumber(tx *gorm.DB) (int, error) {
	var n int
	err := tx.Raw(`
		INSERT INTO order_number_counter (id, last_number)
		VALUES (1, 1)
		ON CONFLICT (id)
		DO UPDATE SET last_number = last_number + 1
		RETURNING last_number
	`).Scan(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to advance order number counter: %w", err)
	}
	return n, nil
}

// SeedOrderNumberCounter raises the global order counter to at least n.
func SeedOrderNumberCounter(tx *gorm.DB, n int) error {
	return tx.Exec(`
		INSERT INTO order_number_counter (id, last_number)
		VALUES (1, ?)
		ON CONFLICT (id)
		DO UPDATE SET last_number = MAX(last_number, excluded.last_number)
	`, n).Error
}
