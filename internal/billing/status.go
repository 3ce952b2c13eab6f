package billing

import (
	"errors"
	"fmt"
)

// Status marks where an invoice stands in its lifecycle. A new invoice
// starts as draft; paid is the usual end of the road.
type Status string

const (
	StatusDraft Status = "draft"
	StatusSent  Status = "sent"
	StatusPaid  Status = "paid"
)

var ErrInvalidStatus = errors.New("invalid invoice status")

// ParseStatus validates a wire-level status value.
//
// Any parsed status may be assigned at any time: the lifecycle imposes no
// ordering, so moving a paid invoice back to draft is legal. There is no
// transition history either. Both are deliberate for a single-operator
// tool; a forward-only transition table would change observed behavior.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusSent, StatusPaid:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}
