// Package runtime models the host boundary of an instruction invocation: the
// account records supplied by the ledger host and the interface through which
// a program issues outbound calls.
package runtime

import (
	"github.com/onledger/zerocast/pkg/solana"
)

// Account is a single host-managed account record. The framework borrows
// records for the duration of one instruction invocation; it never retains
// them across invocations.
//
// Data is the account's byte buffer. An outbound call may replace the buffer
// outright (for example when the system program allocates a new account), so
// any cached reference into Data must be refreshed after invoking.
type Account struct {
	Address  solana.Pubkey
	Owner    solana.Pubkey
	Lamports uint64
	Data     []byte

	IsSigner   bool
	IsWritable bool
}

// FindAccount returns the first account in the list with the given address,
// or nil when absent.
func FindAccount(accounts []*Account, address solana.Pubkey) *Account {
	for _, a := range accounts {
		if a.Address == address {
			return a
		}
	}
	return nil
}
