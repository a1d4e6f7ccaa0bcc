package program

import (
	"github.com/onledger/zerocast/pkg/runtime"
	"github.com/onledger/zerocast/pkg/solana"
)

// Wrappers are identity-checked handles with no payload typing. They turn
// "this really is the system program" or "this account really signed" into a
// precondition established once at build time instead of a check repeated in
// every handler.

// Signer wraps an account whose signer flag is set.
type Signer struct {
	account *runtime.Account
}

// Payer is a Signer used to fund account creation.
type Payer = Signer

// WrapSigner validates the account's signer flag.
func WrapSigner(account *runtime.Account) (*Signer, error) {
	if !account.IsSigner {
		return nil, ErrMissingSignature
	}
	return &Signer{account: account}, nil
}

func (s *Signer) Address() solana.Pubkey {
	return s.account.Address
}

func (s *Signer) Account() *runtime.Account {
	return s.account
}

// Writable wraps an account whose writable flag is set, with no further
// typing.
type Writable struct {
	account *runtime.Account
}

// WrapWritable validates the account's writable flag.
func WrapWritable(account *runtime.Account) (*Writable, error) {
	if !account.IsWritable {
		return nil, ErrNotWritable
	}
	return &Writable{account: account}, nil
}

func (w *Writable) Address() solana.Pubkey {
	return w.account.Address
}

func (w *Writable) Account() *runtime.Account {
	return w.account
}

// KnownAccount wraps an account validated against a single well-known
// address. The concrete wrapper constructors below pick the address.
type KnownAccount struct {
	account *runtime.Account
}

func wrapKnown(account *runtime.Account, expected solana.Pubkey) (*KnownAccount, error) {
	if account.Address != expected {
		return nil, ErrIncorrectProgramID
	}
	return &KnownAccount{account: account}, nil
}

func (k *KnownAccount) Address() solana.Pubkey {
	return k.account.Address
}

func (k *KnownAccount) Account() *runtime.Account {
	return k.account
}

// WrapSystemProgram validates that the account is the system program.
func WrapSystemProgram(account *runtime.Account) (*KnownAccount, error) {
	return wrapKnown(account, solana.SystemProgramID)
}

// WrapTokenProgram validates that the account is either token program.
func WrapTokenProgram(account *runtime.Account) (*KnownAccount, error) {
	if account.Address != solana.TokenProgramID && account.Address != solana.Token2022ProgramID {
		return nil, ErrIncorrectProgramID
	}
	return &KnownAccount{account: account}, nil
}

// WrapAssociatedTokenProgram validates that the account is the associated
// token account program.
func WrapAssociatedTokenProgram(account *runtime.Account) (*KnownAccount, error) {
	return wrapKnown(account, solana.AssociatedTokenProgramID)
}

// WrapAddressLookupTableProgram validates that the account is the address
// lookup table program.
func WrapAddressLookupTableProgram(account *runtime.Account) (*KnownAccount, error) {
	return wrapKnown(account, solana.AddressLookupTableProgramID)
}

// WrapClockSysvar validates that the account is the clock sysvar.
func WrapClockSysvar(account *runtime.Account) (*KnownAccount, error) {
	return wrapKnown(account, solana.ClockSysvarID)
}

// WrapRentSysvar validates that the account is the rent sysvar.
func WrapRentSysvar(account *runtime.Account) (*KnownAccount, error) {
	return wrapKnown(account, solana.RentSysvarID)
}

// WrapSlotHashesSysvar validates that the account is the slot hashes sysvar.
func WrapSlotHashesSysvar(account *runtime.Account) (*KnownAccount, error) {
	return wrapKnown(account, solana.SlotHashesSysvarID)
}

// WrapInstructionsSysvar validates that the account is the instructions
// sysvar.
func WrapInstructionsSysvar(account *runtime.Account) (*KnownAccount, error) {
	return wrapKnown(account, solana.InstructionsSysvarID)
}

// WrapRecentBlockhashesSysvar validates that the account is the recent
// blockhashes sysvar.
func WrapRecentBlockhashesSysvar(account *runtime.Account) (*KnownAccount, error) {
	return wrapKnown(account, solana.RecentBlockhashesSysvarID)
}
