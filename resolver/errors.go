package resolver

import (
	"errors"
	"fmt"
)

var (
	// validation and authorization failures, fatal for the attempt
	ErrSwapNotFound    = errors.New("swap not found")
	ErrSwapExists      = errors.New("swap already tracked")
	ErrInvalidState    = errors.New("swap is not in a state allowing this transition")
	ErrAlreadyResolved = errors.New("escrow already withdrawn or cancelled")

	// cryptographic mismatch, fatal for this withdrawal attempt
	ErrInvalidSecret = errors.New("secret does not match the escrow hashlock")
	ErrInvalidProof  = errors.New("merkle proof does not reconstruct the hashlock root")

	// timing failure, retry once the window opens
	ErrTooEarly = errors.New("action attempted outside its timelock window")

	ErrTxReverted = errors.New("transaction reverted")
)

// timingError reports which transition was attempted and when its window
// opens, so an operator can tell a wait-and-retry apart from a dead swap.
func timingError(op string, side Side, now, opens uint64) error {
	return fmt.Errorf("%s on %s escrow at %d, window opens at %d: %w", op, side, now, opens, ErrTooEarly)
}
