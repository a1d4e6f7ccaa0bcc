// Package program implements a typed instruction-processing layer over
// host-supplied account records: discriminator-checked account views, program
// derived address helpers, shard triplet navigation, identity-validated
// wrappers, and a three-phase (build, validate, execute) dispatcher.
package program

import (
	"unsafe"

	"github.com/onledger/zerocast/pkg/runtime"
	"github.com/onledger/zerocast/pkg/solana"
)

// AccountType is the one-byte discriminator distinguishing the state types a
// program owns. Values must be unique per program and non-zero; zero marks an
// uninitialized account.
type AccountType uint8

// AccountTypeUninitialized is the discriminator value of a freshly allocated
// account.
const AccountTypeUninitialized AccountType = 0

// DiscriminatorSize is the width of the discriminator header at the front of
// every program-owned account. Only the first byte carries the account type;
// the full 8 bytes keep the state payload 8-aligned within the host buffer.
const DiscriminatorSize = 8

// State is implemented by fixed-layout account state types. Implementations
// must be non-empty plain structs of fixed-size fields (integers, byte
// arrays, solana.Pubkey) so that reinterpreting the account buffer as the
// type is valid.
type State interface {
	AccountType() AccountType
}

// stateSize is the byte size of T's payload, excluding the discriminator
// header.
func stateSize[T State]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// hasAccountType reports whether data carries the expected discriminator.
func hasAccountType(data []byte, expected AccountType) bool {
	return len(data) > 0 && data[0] == uint8(expected)
}

// isUninitialized reports whether an account can still be initialized: it is
// either a fresh system-owned account or owned by the program with a zero
// discriminator.
func isUninitialized(account *runtime.Account, programID solana.Pubkey) bool {
	if account.Owner == solana.SystemProgramID {
		return true
	}
	if account.Owner == programID {
		return len(account.Data) == 0 || account.Data[0] == 0
	}
	return false
}

// writeDiscriminator stamps T's account type on the buffer and zeroes the
// rest of the header and payload.
func writeDiscriminator[T State](data []byte) {
	var zero T
	data[0] = uint8(zero.AccountType())
	clear(data[1 : DiscriminatorSize+stateSize[T]()])
}
