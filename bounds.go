package mailbox

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds is the capacity policy of a mailbox queue. The zero value is
// unbounded.
type Bounds struct {
	capacity int
}

// Unbounded lets a mailbox grow up to memory limits; Post never waits.
func Unbounded() Bounds {
	return Bounds{}
}

// Bounded caps a mailbox at capacity messages; Post waits for room.
// It panics if capacity is not positive.
func Bounded(capacity int) Bounds {
	if capacity < 1 {
		panic(fmt.Sprintf("mailbox: bounded capacity must be positive, got %d", capacity))
	}
	return Bounds{capacity: capacity}
}

// IsBounded reports whether b limits the queue.
func (b Bounds) IsBounded() bool { return b.capacity > 0 }

// Capacity returns the limit, or 0 for unbounded.
func (b Bounds) Capacity() int { return b.capacity }

func (b Bounds) String() string {
	if !b.IsBounded() {
		return "unbounded"
	}
	return "bounded:" + strconv.Itoa(b.capacity)
}

// ParseBounds accepts "unbounded", "bounded:N" or a bare positive "N".
func ParseBounds(s string) (Bounds, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "unbounded" {
		return Unbounded(), nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, "bounded:"))
	if err != nil {
		return Bounds{}, fmt.Errorf("mailbox: invalid bounds %q: %w", s, err)
	}
	if n < 1 {
		return Bounds{}, fmt.Errorf("mailbox: invalid bounds %q: capacity must be positive", s)
	}
	return Bounds{capacity: n}, nil
}

func (b Bounds) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Bounds) UnmarshalText(text []byte) error {
	parsed, err := ParseBounds(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
