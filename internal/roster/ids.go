package roster

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// ID strategies accepted by NewIDGenerator.
const (
	StrategyUUID    = "uuid"
	StrategyCounter = "counter"
)

// IDGenerator hands out record ids that are unique for the life of the process.
type IDGenerator interface {
	NextID() string
}

// CounterIDs produces prefix-1, prefix-2, ...
type CounterIDs struct {
	prefix string
	next   uint64
}

// NewCounterIDs creates a monotonic generator. An empty prefix yields bare numbers.
func NewCounterIDs(prefix string) *CounterIDs {
	return &CounterIDs{prefix: prefix}
}

// NextID implements IDGenerator.
func (c *CounterIDs) NextID() string {
	c.next++
	n := strconv.FormatUint(c.next, 10)
	if c.prefix == "" {
		return n
	}
	return c.prefix + "-" + n
}

// UUIDIDs produces random version 4 UUIDs.
type UUIDIDs struct{}

// NewUUIDIDs creates a UUID generator.
func NewUUIDIDs() UUIDIDs {
	return UUIDIDs{}
}

// NextID implements IDGenerator.
func (UUIDIDs) NextID() string {
	return uuid.NewString()
}

// NewIDGenerator builds the generator for a configured strategy.
// An empty strategy means uuid.
func NewIDGenerator(strategy, prefix string) (IDGenerator, error) {
	switch strategy {
	case "", StrategyUUID:
		return NewUUIDIDs(), nil
	case StrategyCounter:
		return NewCounterIDs(prefix), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q (valid: %s, %s)", strategy, StrategyUUID, StrategyCounter)
	}
}
