package program

import (
	"unsafe"

	"github.com/onledger/zerocast/pkg/runtime"
	"github.com/onledger/zerocast/pkg/solana"
)

// View is a read-only typed view over one account record, valid for a single
// invocation. Construction validates ownership, buffer size, and the
// discriminator; Get then reinterprets the buffer without copying.
type View[T State] struct {
	account *runtime.Account
	data    []byte
}

// Load validates that the account is owned by programID and carries T's
// discriminator, and returns a read-only view over it.
func Load[T State](account *runtime.Account, programID solana.Pubkey) (*View[T], error) {
	if account.Owner != programID {
		return nil, ErrIllegalOwner
	}
	return LoadUnchecked[T](account)
}

// LoadUnchecked is Load without the ownership check, for reads of records
// owned by foreign programs. The size and discriminator checks still apply.
func LoadUnchecked[T State](account *runtime.Account) (*View[T], error) {
	data := account.Data
	if len(data) < DiscriminatorSize+stateSize[T]() {
		return nil, ErrInvalidAccountData
	}

	var zero T
	if !hasAccountType(data, zero.AccountType()) {
		return nil, ErrInvalidAccountType
	}

	return &View[T]{account: account, data: data}, nil
}

// Get reinterprets the account payload as T without copying. The returned
// value borrows the account buffer; callers must treat it as read-only and
// must not retain it past the invocation.
func (v *View[T]) Get() *T {
	return (*T)(unsafe.Pointer(&v.data[DiscriminatorSize]))
}

// Address returns the underlying account's address.
func (v *View[T]) Address() solana.Pubkey {
	return v.account.Address
}

// Account returns the underlying account record.
func (v *View[T]) Account() *runtime.Account {
	return v.account
}

// IsPDA reports whether this account's address is the program address derived
// from seeds under programID, along with the canonical bump for the
// derivation. It never fails; callers decide how to react to a mismatch.
func (v *View[T]) IsPDA(programID solana.Pubkey, seeds ...[]byte) (bool, uint8) {
	expected, bump, err := solana.FindProgramAddressAndBump(programID, seeds...)
	if err != nil {
		return false, 0
	}
	return expected == v.account.Address, bump
}
