// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package program is a demonstration harness that exercises the comparison
// API through an instruction-dispatch convention: one opcode byte selects
// the comparison strategy, two read-only account references supply the
// keys.
//
// The harness exists only to make the per-path cost difference observable
// from the outside. It is not part of the comparison core; a mismatch is a
// fatal error here (the hosting runtime's abort analog), not a boolean.
//
// # Instruction Format
//
//	data[0]   opcode: 0x00 = standard comparison, 0x01 = optimized comparison
//	accounts  at least two entries; the first two supply the keys
package program

import (
	"errors"
	"fmt"
	"time"

	"github.com/kianostad/keyeq"
	"github.com/kianostad/keyeq/internal/compare"
	"github.com/kianostad/keyeq/internal/monitoring/metrics"
)

// Instruction opcodes selecting the comparison strategy.
const (
	OpStandard  byte = 0x00
	OpOptimized byte = 0x01
)

var (
	// ErrMissingInstruction is returned when the instruction data is empty.
	ErrMissingInstruction = errors.New("program: missing instruction data")
	// ErrMissingAccounts is returned when fewer than two accounts are supplied.
	ErrMissingAccounts = errors.New("program: two account keys are required")
	// ErrUnknownOpcode is returned for an unrecognized opcode byte.
	ErrUnknownOpcode = errors.New("program: unknown opcode")
	// ErrKeyMismatch is the fatal result when the two account keys differ.
	ErrKeyMismatch = errors.New("program: account keys do not match")
)

// AccountMeta is a read-only reference to an account, in the hosting
// runtime's convention. Only the key participates in comparison.
type AccountMeta struct {
	Key        keyeq.Key
	IsSigner   bool
	IsWritable bool
}

// Processor dispatches comparison instructions and records per-path cost.
type Processor struct {
	metrics *metrics.Metrics
}

// NewProcessor creates a processor. The metrics collector may be nil, in
// which case no cost is recorded.
func NewProcessor(m *metrics.Metrics) *Processor {
	return &Processor{metrics: m}
}

// Process executes one comparison instruction. It returns nil when the two
// account keys match and ErrKeyMismatch when they do not; both strategies
// must produce the same outcome for the same accounts.
func (p *Processor) Process(accounts []AccountMeta, data []byte) error {
	if len(data) < 1 {
		return ErrMissingInstruction
	}
	if len(accounts) < 2 {
		return ErrMissingAccounts
	}

	lhs := &accounts[0].Key
	rhs := &accounts[1].Key

	var equal bool
	start := time.Now()
	switch data[0] {
	case OpStandard:
		equal = compare.Equal32Portable((*[keyeq.KeySize]byte)(lhs), (*[keyeq.KeySize]byte)(rhs))
	case OpOptimized:
		equal = keyeq.Equal(lhs, rhs)
	default:
		if p.metrics != nil {
			p.metrics.RecordError("process")
		}
		return fmt.Errorf("%w: %#02x", ErrUnknownOpcode, data[0])
	}
	elapsed := time.Since(start)

	if p.metrics != nil {
		switch data[0] {
		case OpStandard:
			p.metrics.RecordStandard(elapsed, equal)
		case OpOptimized:
			p.metrics.RecordOptimized(elapsed, equal)
		}
	}

	if !equal {
		return fmt.Errorf("%w: %s vs %s", ErrKeyMismatch, lhs, rhs)
	}
	return nil
}
