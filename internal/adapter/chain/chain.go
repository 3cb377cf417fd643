// Package chain talks to the ChainMaker ledger that anchors reading-log
// submissions and mints reward tokens.
//
// Callers must treat the error classes differently: ErrRejected means the
// chain definitively refused the transaction, while ErrUnavailable and
// ErrEventMissing leave the outcome unknown and the operation must not be
// assumed failed on chain.
package chain

import "errors"

var (
	// ErrUnavailable means the node could not be reached or the call timed
	// out. The transaction may or may not have been committed.
	ErrUnavailable = errors.New("chain unavailable")

	// ErrRejected means the chain executed the transaction and refused it.
	ErrRejected = errors.New("chain rejected transaction")

	// ErrEventMissing means the transaction committed but the expected
	// contract event could not be decoded from the receipt.
	ErrEventMissing = errors.New("chain event missing")
)
