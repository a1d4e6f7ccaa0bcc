package program

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onledger/zerocast/pkg/runtime"
	"github.com/onledger/zerocast/pkg/solana"
)

const (
	accountTypeCounter AccountType = iota + 1
	accountTypeOrderShard
)

type counterState struct {
	Authority solana.Pubkey
	Count     uint64
}

func (counterState) AccountType() AccountType { return accountTypeCounter }

type orderShard struct {
	LowShard  solana.Pubkey
	HighShard solana.Pubkey
	Orders    uint64
}

func (orderShard) AccountType() AccountType { return accountTypeOrderShard }

func randomPubkey(t *testing.T) solana.Pubkey {
	var pub solana.Pubkey
	_, err := rand.Read(pub[:])
	require.NoError(t, err)
	return pub
}

// newInitializedAccount allocates a writable account already stamped with the
// given discriminator and sized for payload bytes beyond the header.
func newInitializedAccount(t *testing.T, owner solana.Pubkey, accountType AccountType, payloadSize int) *runtime.Account {
	account := &runtime.Account{
		Address:    randomPubkey(t),
		Owner:      owner,
		Lamports:   runtime.RentExemptMinimum(DiscriminatorSize + payloadSize),
		Data:       make([]byte, DiscriminatorSize+payloadSize),
		IsWritable: true,
	}
	account.Data[0] = uint8(accountType)
	return account
}

func newCounterAccount(t *testing.T, owner solana.Pubkey) *runtime.Account {
	return newInitializedAccount(t, owner, accountTypeCounter, stateSize[counterState]())
}

func newOrderShardAccount(t *testing.T, owner solana.Pubkey) *runtime.Account {
	return newInitializedAccount(t, owner, accountTypeOrderShard, stateSize[orderShard]())
}
