package program

import (
	"unsafe"

	"github.com/onledger/zerocast/pkg/runtime"
	"github.com/onledger/zerocast/pkg/solana"
)

// Mut is a writable typed view over one account record. It performs all of
// View's validation plus the host writable flag check.
//
// Validation is per view: the host may legitimately pass the same account at
// two positions in the account list, and two Muts over the same address will
// then alias the same buffer. Handlers that accept potentially duplicate
// accounts compare Address values before performing conflicting writes; for
// shard triplets use ShardsMut, which deduplicates at construction.
type Mut[T State] struct {
	account *runtime.Account
	data    []byte
}

// LoadMut validates ownership, the writable flag, and T's discriminator, and
// returns a writable view over the account.
func LoadMut[T State](account *runtime.Account, programID solana.Pubkey) (*Mut[T], error) {
	if !account.IsWritable {
		return nil, ErrNotWritable
	}
	if account.Owner != programID {
		return nil, ErrIllegalOwner
	}
	return LoadMutUnchecked[T](account)
}

// LoadMutUnchecked is LoadMut without the ownership and writable checks. The
// size and discriminator checks still apply.
func LoadMutUnchecked[T State](account *runtime.Account) (*Mut[T], error) {
	data := account.Data
	if len(data) < DiscriminatorSize+stateSize[T]() {
		return nil, ErrInvalidAccountData
	}

	var zero T
	if !hasAccountType(data, zero.AccountType()) {
		return nil, ErrInvalidAccountType
	}

	return &Mut[T]{account: account, data: data}, nil
}

// TryLoadMut attempts LoadMut, reporting failure instead of returning an
// error. Useful for optional accounts, such as neighbouring shards that may
// not exist yet.
func TryLoadMut[T State](account *runtime.Account, programID solana.Pubkey) (*Mut[T], bool) {
	m, err := LoadMut[T](account, programID)
	if err != nil {
		return nil, false
	}
	return m, true
}

// Init initializes an uninitialized account with T's discriminator, zeroes
// the payload, and returns a writable view. The account must be writable,
// must be uninitialized (system-owned or zero discriminator), and must
// already have enough space allocated.
func Init[T State](account *runtime.Account, programID solana.Pubkey) (*Mut[T], error) {
	if !account.IsWritable {
		return nil, ErrNotWritable
	}
	if !isUninitialized(account, programID) {
		return nil, ErrAlreadyInitialized
	}
	if len(account.Data) < DiscriminatorSize+stateSize[T]() {
		return nil, ErrInvalidAccountData
	}

	writeDiscriminator[T](account.Data)
	return LoadMutUnchecked[T](account)
}

// InitIfNeeded initializes the account if it is uninitialized, otherwise
// loads it. The already-initialized path still enforces ownership and the
// discriminator, so a foreign or mistyped account cannot slip through.
func InitIfNeeded[T State](account *runtime.Account, programID solana.Pubkey) (*Mut[T], error) {
	if !account.IsWritable {
		return nil, ErrNotWritable
	}
	if isUninitialized(account, programID) {
		if len(account.Data) < DiscriminatorSize+stateSize[T]() {
			return nil, ErrInvalidAccountData
		}
		writeDiscriminator[T](account.Data)
	} else if account.Owner != programID {
		return nil, ErrIllegalOwner
	}
	return LoadMutUnchecked[T](account)
}

// InitPDA verifies that the account's address is derived from seeds under
// programID, creates the account through the invoker if it does not exist yet
// (funded to the rent-exempt minimum from payer, signed with the derived
// seeds), then initializes it as Init does.
//
// space is the full buffer size to allocate and must cover the discriminator
// header plus T's payload.
func InitPDA[T State](
	account *runtime.Account,
	payer *runtime.Account,
	invoker runtime.Invoker,
	programID solana.Pubkey,
	seeds [][]byte,
	space int,
) (*Mut[T], error) {
	if !account.IsWritable {
		return nil, ErrNotWritable
	}

	expected, bump, err := solana.FindProgramAddressAndBump(programID, seeds...)
	if err != nil {
		return nil, err
	}
	if expected != account.Address {
		return nil, ErrInvalidSeeds
	}

	if account.Owner == solana.SystemProgramID {
		signerSeeds := make([][]byte, 0, len(seeds)+1)
		signerSeeds = append(signerSeeds, seeds...)
		signerSeeds = append(signerSeeds, []byte{bump})

		if err := CreatePDAAccount(invoker, payer, account, programID, space, signerSeeds); err != nil {
			return nil, err
		}
	}

	return Init[T](account, programID)
}

// Get reinterprets the account payload as T without copying. Writes through
// the returned value are writes to the account buffer; there is no separate
// commit step.
func (m *Mut[T]) Get() *T {
	return (*T)(unsafe.Pointer(&m.data[DiscriminatorSize]))
}

// Data returns the full account buffer, including the discriminator header.
// Useful for state with variable-length data beyond the fixed payload.
func (m *Mut[T]) Data() []byte {
	return m.data
}

// Reload refreshes the view from the underlying account record. Required
// after any outbound call that may have rewritten or replaced the account's
// buffer, since such calls are opaque to this layer.
func (m *Mut[T]) Reload() {
	m.data = m.account.Data
}

// Address returns the underlying account's address.
func (m *Mut[T]) Address() solana.Pubkey {
	return m.account.Address
}

// Account returns the underlying account record.
func (m *Mut[T]) Account() *runtime.Account {
	return m.account
}

// IsPDA reports whether this account's address is the program address derived
// from seeds under programID, along with the canonical bump. It never fails.
func (m *Mut[T]) IsPDA(programID solana.Pubkey, seeds ...[]byte) (bool, uint8) {
	expected, bump, err := solana.FindProgramAddressAndBump(programID, seeds...)
	if err != nil {
		return false, 0
	}
	return expected == m.account.Address, bump
}
