// Package id formats and parses voucher numbers.
package id

import (
	"fmt"
	"strconv"
	"strings"
)

// Voucher number prefixes by voucher type.
const (
	PrefixReceipt = "RCPT"
	PrefixPayment = "PMT"
)

// FormatVoucherNo returns a voucher number like "RCPT-2025-01-001".
// Zero-padded sequences keep lexicographic order aligned with issue order,
// which the report engine relies on for same-day tie-breaking.
func FormatVoucherNo(prefix string, year, month, seq int) string {
	return fmt.Sprintf("%s-%04d-%02d-%03d", prefix, year, month, seq)
}

// ParseVoucherNo parses "RCPT-2025-01-001" into its parts.
func ParseVoucherNo(no string) (prefix string, year, month, seq int, err error) {
	parts := strings.SplitN(no, "-", 4)
	if len(parts) != 4 {
		return "", 0, 0, 0, fmt.Errorf("invalid voucher number format: %q", no)
	}

	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("invalid year in voucher number %q: %w", no, err)
	}

	month, err = strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("invalid month in voucher number %q: %w", no, err)
	}

	seq, err = strconv.Atoi(parts[3])
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("invalid sequence in voucher number %q: %w", no, err)
	}

	return parts[0], year, month, seq, nil
}
