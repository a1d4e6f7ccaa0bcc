package program

import (
	"github.com/onledger/zerocast/pkg/runtime"
	"github.com/onledger/zerocast/pkg/solana"
	"github.com/onledger/zerocast/pkg/solana/system"
)

// TransferLamports moves lamports between accounts through the system
// program. The source must be a signer. A zero amount returns immediately
// without an outbound call.
func TransferLamports(invoker runtime.Invoker, from, to, systemAccount *runtime.Account, amount uint64) error {
	if amount == 0 {
		return nil
	}

	instruction := system.Transfer(from.Address, to.Address, amount)
	return invoker.Invoke(instruction, []*runtime.Account{from, to, systemAccount})
}

// CreatePDAAccount allocates a program-owned account at a derived address
// through the system program, funded to the rent-exempt minimum from payer.
// seeds must already include the bump; they substitute for the new account's
// signature.
func CreatePDAAccount(
	invoker runtime.Invoker,
	payer *runtime.Account,
	newAccount *runtime.Account,
	owner solana.Pubkey,
	space int,
	seeds [][]byte,
) error {
	lamports := runtime.RentExemptMinimum(space)
	instruction := system.CreateAccount(payer.Address, newAccount.Address, owner, lamports, uint64(space))
	return invoker.InvokeSigned(instruction, []*runtime.Account{payer, newAccount}, seeds)
}
