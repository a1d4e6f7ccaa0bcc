package program

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onledger/zerocast/pkg/runtime"
	"github.com/onledger/zerocast/pkg/solana"
)

func TestInit(t *testing.T) {
	programID := randomPubkey(t)

	account := newCounterAccount(t, programID)
	account.Data[0] = 0 // uninitialized
	for i := DiscriminatorSize; i < len(account.Data); i++ {
		account.Data[i] = 0xff // garbage left by a previous tenant
	}

	mut, err := Init[counterState](account, programID)
	require.NoError(t, err)

	// Discriminator stamped, payload zeroed.
	assert.EqualValues(t, accountTypeCounter, account.Data[0])
	assert.True(t, mut.Get().Authority.IsZero())
	assert.Zero(t, mut.Get().Count)

	// Immediately loadable as the same type.
	_, err = Load[counterState](account, programID)
	require.NoError(t, err)
}

func TestInit_AlreadyInitialized(t *testing.T) {
	programID := randomPubkey(t)

	account := newCounterAccount(t, programID)
	mut, err := LoadMut[counterState](account, programID)
	require.NoError(t, err)
	mut.Get().Count = 7

	before := bytes.Clone(account.Data)

	_, err = Init[counterState](account, programID)
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
	assert.Equal(t, before, account.Data)
}

func TestInit_NotWritable(t *testing.T) {
	programID := randomPubkey(t)

	account := newCounterAccount(t, programID)
	account.Data[0] = 0
	account.IsWritable = false

	_, err := Init[counterState](account, programID)
	assert.ErrorIs(t, err, ErrNotWritable)
}

func TestInitIfNeeded(t *testing.T) {
	programID := randomPubkey(t)

	// Uninitialized path.
	account := newCounterAccount(t, programID)
	account.Data[0] = 0
	mut, err := InitIfNeeded[counterState](account, programID)
	require.NoError(t, err)
	mut.Get().Count = 3

	// Already-initialized path is a plain load.
	mut, err = InitIfNeeded[counterState](account, programID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, mut.Get().Count)

	// The already-initialized path still enforces ownership.
	foreign := newCounterAccount(t, randomPubkey(t))
	_, err = InitIfNeeded[counterState](foreign, programID)
	assert.ErrorIs(t, err, ErrIllegalOwner)

	// And the discriminator.
	shard := newOrderShardAccount(t, programID)
	_, err = InitIfNeeded[counterState](shard, programID)
	assert.ErrorIs(t, err, ErrInvalidAccountType)
}

func TestInitPDA(t *testing.T) {
	programID := randomPubkey(t)
	emulator := runtime.NewEmulator(programID)

	seeds := [][]byte{[]byte("counter"), []byte("v1")}
	address, _, err := solana.FindProgramAddressAndBump(programID, seeds...)
	require.NoError(t, err)

	payer := &runtime.Account{
		Address:    randomPubkey(t),
		Owner:      solana.SystemProgramID,
		Lamports:   100_000_000,
		IsSigner:   true,
		IsWritable: true,
	}
	account := &runtime.Account{
		Address:    address,
		Owner:      solana.SystemProgramID,
		IsWritable: true,
	}

	space := DiscriminatorSize + stateSize[counterState]()
	mut, err := InitPDA[counterState](account, payer, emulator, programID, seeds, space)
	require.NoError(t, err)

	assert.Equal(t, programID, account.Owner)
	assert.EqualValues(t, accountTypeCounter, account.Data[0])
	assert.EqualValues(t, runtime.RentExemptMinimum(space), account.Lamports)
	assert.Zero(t, mut.Get().Count)

	// A second init at the same seeds finds the discriminator set.
	_, err = InitPDA[counterState](account, payer, emulator, programID, seeds, space)
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestInitPDA_InvalidSeeds(t *testing.T) {
	programID := randomPubkey(t)
	emulator := runtime.NewEmulator(programID)

	payer := &runtime.Account{
		Address:    randomPubkey(t),
		Owner:      solana.SystemProgramID,
		Lamports:   100_000_000,
		IsSigner:   true,
		IsWritable: true,
	}
	account := &runtime.Account{
		Address:    randomPubkey(t), // not derived from the seeds
		Owner:      solana.SystemProgramID,
		IsWritable: true,
	}

	space := DiscriminatorSize + stateSize[counterState]()
	_, err := InitPDA[counterState](account, payer, emulator, programID, [][]byte{[]byte("counter")}, space)
	assert.ErrorIs(t, err, ErrInvalidSeeds)
}

func TestInitPDA_InsufficientFunds(t *testing.T) {
	programID := randomPubkey(t)
	emulator := runtime.NewEmulator(programID)

	seeds := [][]byte{[]byte("counter")}
	address, _, err := solana.FindProgramAddressAndBump(programID, seeds...)
	require.NoError(t, err)

	payer := &runtime.Account{
		Address:    randomPubkey(t),
		Owner:      solana.SystemProgramID,
		Lamports:   1, // cannot cover the rent-exempt minimum
		IsSigner:   true,
		IsWritable: true,
	}
	account := &runtime.Account{
		Address:    address,
		Owner:      solana.SystemProgramID,
		IsWritable: true,
	}

	space := DiscriminatorSize + stateSize[counterState]()
	_, err = InitPDA[counterState](account, payer, emulator, programID, seeds, space)
	assert.ErrorIs(t, err, runtime.ErrInsufficientFunds)
}

func TestMut_Reload(t *testing.T) {
	programID := randomPubkey(t)

	account := newCounterAccount(t, programID)
	mut, err := LoadMut[counterState](account, programID)
	require.NoError(t, err)
	mut.Get().Count = 5

	// An outbound call may replace the buffer outright; the stale view keeps
	// borrowing the old one until reloaded.
	replacement := make([]byte, len(account.Data))
	copy(replacement, account.Data)
	replacement[DiscriminatorSize+32] = 9 // Count low byte
	account.Data = replacement

	assert.EqualValues(t, 5, mut.Get().Count)
	mut.Reload()
	assert.EqualValues(t, 9, mut.Get().Count)
}

func TestTransferLamports(t *testing.T) {
	programID := randomPubkey(t)
	emulator := runtime.NewEmulator(programID)

	from := &runtime.Account{
		Address:    randomPubkey(t),
		Owner:      solana.SystemProgramID,
		Lamports:   1_000,
		IsSigner:   true,
		IsWritable: true,
	}
	to := &runtime.Account{
		Address:    randomPubkey(t),
		Owner:      solana.SystemProgramID,
		IsWritable: true,
	}
	systemAccount := &runtime.Account{
		Address: solana.SystemProgramID,
	}

	require.NoError(t, TransferLamports(emulator, from, to, systemAccount, 400))
	assert.EqualValues(t, 600, from.Lamports)
	assert.EqualValues(t, 400, to.Lamports)

	// Zero amount is a no-op without an outbound call.
	require.NoError(t, TransferLamports(nil, from, to, systemAccount, 0))
}
