package program

import (
	"github.com/pkg/errors"
)

var (
	// ErrIllegalOwner indicates an account is not owned by the expected
	// program.
	ErrIllegalOwner = errors.New("account owner does not match expected program")

	// ErrInvalidAccountType indicates an account's discriminator does not
	// match the requested state type.
	ErrInvalidAccountType = errors.New("unexpected account type")

	// ErrInvalidAccountData indicates an account's buffer is too small for
	// the requested state type.
	ErrInvalidAccountData = errors.New("unexpected account data")

	// ErrNotWritable indicates a mutable view was requested over an account
	// the host did not mark writable.
	ErrNotWritable = errors.New("account is not writable")

	// ErrAlreadyInitialized indicates an init was attempted on an account
	// whose discriminator is already set.
	ErrAlreadyInitialized = errors.New("account already initialized")

	// ErrInvalidSeeds indicates an account's address is not the program
	// address derived from the provided seeds.
	ErrInvalidSeeds = errors.New("address does not match derived seeds")

	// ErrIncorrectProgramID indicates an account expected to be a well-known
	// program or sysvar has a different address.
	ErrIncorrectProgramID = errors.New("incorrect program id")

	// ErrMissingSignature indicates an account expected to have signed the
	// invocation did not.
	ErrMissingSignature = errors.New("missing required signature")

	// ErrNotEnoughAccountKeys indicates the host-supplied account list is
	// shorter than the handler requires.
	ErrNotEnoughAccountKeys = errors.New("not enough account keys")

	// ErrInvalidInstructionData indicates the instruction payload is missing
	// or shorter than the handler's parameter type.
	ErrInvalidInstructionData = errors.New("unexpected instruction data")

	// ErrUnknownInstruction indicates the leading instruction tag matched no
	// registered handler.
	ErrUnknownInstruction = errors.New("unknown instruction")
)
