package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"draft", "sent", "paid"} {
		got, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}
}

func TestParseStatusRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "final", "Paid", "cancelled"} {
		_, err := ParseStatus(s)
		require.ErrorIs(t, err, ErrInvalidStatus, "status %q", s)
	}
}
