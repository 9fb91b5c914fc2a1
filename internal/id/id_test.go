package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVoucherNo(t *testing.T) {
	assert.Equal(t, "RCPT-2025-01-001", FormatVoucherNo(PrefixReceipt, 2025, 1, 1))
	assert.Equal(t, "PMT-2025-12-042", FormatVoucherNo(PrefixPayment, 2025, 12, 42))
}

func TestFormatVoucherNo_LexicographicOrder(t *testing.T) {
	a := FormatVoucherNo(PrefixReceipt, 2025, 1, 9)
	b := FormatVoucherNo(PrefixReceipt, 2025, 1, 10)
	assert.Less(t, a, b)
}

func TestParseVoucherNo(t *testing.T) {
	prefix, year, month, seq, err := ParseVoucherNo("RCPT-2025-01-001")
	require.NoError(t, err)
	assert.Equal(t, "RCPT", prefix)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, month)
	assert.Equal(t, 1, seq)
}

func TestParseVoucherNo_RoundTrip(t *testing.T) {
	no := FormatVoucherNo(PrefixPayment, 2024, 11, 17)
	prefix, year, month, seq, err := ParseVoucherNo(no)
	require.NoError(t, err)
	assert.Equal(t, no, FormatVoucherNo(prefix, year, month, seq))
	assert.Equal(t, 17, seq)
}

func TestParseVoucherNo_Invalid(t *testing.T) {
	for _, bad := range []string{"", "RCPT", "RCPT-2025", "RCPT-xx-01-001", "RCPT-2025-xx-001", "RCPT-2025-01-xxx"} {
		_, _, _, _, err := ParseVoucherNo(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
