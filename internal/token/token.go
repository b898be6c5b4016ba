package token

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Generator produces unique-folder tokens matching [0-9a-f]+.
type Generator interface {
	Next() string
}

// Strategy names accepted by FromName.
const (
	StrategyClock    = "clock"
	StrategyUUID     = "uuid"
	StrategySequence = "sequence"
)

// ClockHex derives tokens from the current time in milliseconds.
type ClockHex struct {
	now func() time.Time
}

// NewClockHex returns a clock-based generator. A nil now uses time.Now.
func NewClockHex(now func() time.Time) *ClockHex {
	if now == nil {
		now = time.Now
	}
	return &ClockHex{now: now}
}

// Next returns the current epoch milliseconds in hex.
func (c *ClockHex) Next() string {
	return strconv.FormatInt(c.now().UnixMilli(), 16)
}

// UUIDHex derives tokens from random (v4) UUIDs.
type UUIDHex struct{}

// NewUUIDHex returns a collision-resistant generator.
func NewUUIDHex() UUIDHex { return UUIDHex{} }

// Next returns a v4 UUID without dashes.
func (UUIDHex) Next() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Sequence hands out monotonically increasing tokens. Safe for concurrent use.
type Sequence struct {
	n atomic.Uint64
}

// NewSequence returns a generator whose first token is start in hex.
func NewSequence(start uint64) *Sequence {
	s := &Sequence{}
	s.n.Store(start)
	return s
}

// Next returns the next counter value in hex.
func (s *Sequence) Next() string {
	return strconv.FormatUint(s.n.Add(1)-1, 16)
}

// FromName builds a generator for a configured strategy name.
// An empty name selects the clock strategy.
func FromName(name string, now func() time.Time) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyClock:
		return NewClockHex(now), nil
	case StrategyUUID:
		return NewUUIDHex(), nil
	case StrategySequence:
		return NewSequence(uint64(time.Now().UnixNano())), nil
	default:
		return nil, fmt.Errorf("unknown token strategy %q (want %s, %s or %s)",
			name, StrategyClock, StrategyUUID, StrategySequence)
	}
}
