package runtime

import (
	"github.com/onledger/zerocast/pkg/solana"
)

// Invoker issues outbound calls to other programs on behalf of the invoking
// program. Calls are opaque to the caller: any account passed along may have
// been mutated (or its buffer replaced) by the time the call returns.
type Invoker interface {
	// Invoke executes an instruction against the given accounts.
	Invoke(instruction solana.Instruction, accounts []*Account) error

	// InvokeSigned executes an instruction with the invoking program signing
	// for derived addresses. Each seed group, with its bump appended, must
	// derive one of the instruction's signer addresses under the invoking
	// program's id.
	InvokeSigned(instruction solana.Instruction, accounts []*Account, signerSeeds ...[][]byte) error
}
