package runtime

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/onledger/zerocast/pkg/solana"
	"github.com/onledger/zerocast/pkg/solana/system"
)

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrAccountInUse       = errors.New("account already in use")
	ErrMissingSignature   = errors.New("missing required signature")
	ErrAccountNotProvided = errors.New("account not provided")
)

// Emulator is an in-memory Invoker servicing the system program instructions
// the framework's account creation flow depends on. It stands in for the
// ledger host in tests and embedded use.
//
// Derived-address signing is honored: a seed group that derives one of the
// instruction's signer addresses under the invoking program's id substitutes
// for that account's signer flag.
type Emulator struct {
	program solana.Pubkey
	log     *logrus.Entry
}

// NewEmulator creates an Emulator servicing calls issued by the given
// program.
func NewEmulator(program solana.Pubkey) *Emulator {
	return &Emulator{
		program: program,
		log:     logrus.StandardLogger().WithField("type", "runtime/emulator"),
	}
}

// Invoke implements Invoker.
func (e *Emulator) Invoke(instruction solana.Instruction, accounts []*Account) error {
	return e.InvokeSigned(instruction, accounts)
}

// InvokeSigned implements Invoker.
func (e *Emulator) InvokeSigned(instruction solana.Instruction, accounts []*Account, signerSeeds ...[][]byte) error {
	derived := make(map[solana.Pubkey]struct{})
	for _, seeds := range signerSeeds {
		pda, err := solana.CreateProgramAddress(e.program, seeds...)
		if err != nil {
			return errors.Wrap(err, "invalid signer seeds")
		}
		derived[pda] = struct{}{}
	}

	if instruction.Program != solana.SystemProgramID {
		return errors.Wrapf(solana.ErrIncorrectProgram, "unsupported program %s", instruction.Program)
	}

	resolved := make([]*Account, len(instruction.Accounts))
	for i, meta := range instruction.Accounts {
		account := FindAccount(accounts, meta.PublicKey)
		if account == nil {
			return errors.Wrapf(ErrAccountNotProvided, "account %s", meta.PublicKey)
		}

		if meta.IsSigner && !account.IsSigner {
			if _, ok := derived[account.Address]; !ok {
				return errors.Wrapf(ErrMissingSignature, "account %s", meta.PublicKey)
			}
		}

		resolved[i] = account
	}

	if created, err := system.DecompileCreateAccount(instruction); err == nil {
		return e.createAccount(resolved[0], resolved[1], created)
	}
	if transfer, err := system.DecompileTransfer(instruction); err == nil {
		return e.transfer(resolved[0], resolved[1], transfer.Lamports)
	}

	return solana.ErrIncorrectInstruction
}

func (e *Emulator) createAccount(funder, target *Account, params *system.DecompiledCreateAccount) error {
	if params.Size > MaxAccountSize {
		return errors.Errorf("requested size %d exceeds maximum account size", params.Size)
	}
	if target.Owner != solana.SystemProgramID || len(target.Data) != 0 {
		return errors.Wrapf(ErrAccountInUse, "account %s", target.Address)
	}
	if funder.Lamports < params.Lamports {
		return errors.Wrapf(ErrInsufficientFunds, "funder %s", funder.Address)
	}

	funder.Lamports -= params.Lamports
	target.Lamports += params.Lamports
	target.Data = make([]byte, params.Size)
	target.Owner = params.Owner

	e.log.WithFields(logrus.Fields{
		"address": target.Address.String(),
		"owner":   params.Owner.String(),
		"size":    params.Size,
	}).Debug("created account")

	return nil
}

func (e *Emulator) transfer(from, to *Account, lamports uint64) error {
	if from.Lamports < lamports {
		return errors.Wrapf(ErrInsufficientFunds, "source %s", from.Address)
	}

	from.Lamports -= lamports
	to.Lamports += lamports

	e.log.WithFields(logrus.Fields{
		"from":     from.Address.String(),
		"to":       to.Address.String(),
		"lamports": lamports,
	}).Debug("transferred lamports")

	return nil
}
