package solana

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProgramAddress(t *testing.T) {
	exceededSeed := make([]byte, maxSeedLength+1)
	maxSeed := make([]byte, maxSeedLength)

	// The typo here was taken directly from the Solana test case,
	// which was used to derive the expected outputs.
	publicKey := MustPubkeyFromBase58("SeedPubey1111111111111111111111111111111111")
	programID := MustPubkeyFromBase58("BPFLoader1111111111111111111111111111111111")

	_, err := CreateProgramAddress(programID, exceededSeed)
	assert.Equal(t, ErrMaxSeedLengthExceeded, err)
	_, err = CreateProgramAddress(programID, []byte("short seed"), exceededSeed)
	assert.Equal(t, ErrMaxSeedLengthExceeded, err)

	_, err = CreateProgramAddress(programID, maxSeed)
	assert.NoError(t, err)

	cases := []struct {
		expected string
		input    [][]byte
	}{
		{
			expected: "3gF2KMe9KiC6FNVBmfg9i267aMPvK37FewCip4eGBFcT",
			input:    [][]byte{{}, {1}},
		},
		{
			expected: "7ytmC1nT1xY4RfxCV2ZgyA7UakC93do5ZdyhdF3EtPj7",
			input:    [][]byte{[]byte("☉")},
		},
		{
			expected: "HwRVBufQ4haG5XSgpspwKtNd3PC9GM9m1196uJW36vds",
			input:    [][]byte{[]byte("Talking"), []byte("Squirrels")},
		},
		{
			expected: "GUs5qLUfsEHkcMB9T38vjr18ypEhRuNWiePW2LoK4E3K",
			input:    [][]byte{publicKey.Bytes()},
		},
	}

	for _, tc := range cases {
		key, err := CreateProgramAddress(programID, tc.input...)
		assert.NoError(t, err)
		assert.Equal(t, tc.expected, key.String())
	}

	a, err := CreateProgramAddress(programID, []byte("Talking"))
	assert.NoError(t, err)
	b, err := CreateProgramAddress(programID, []byte("Talking"), []byte("Squirrels"))
	assert.NoError(t, err)

	assert.NotEqual(t, a, b)

	tooMany := make([][]byte, maxSeeds+1)
	for i := range tooMany {
		tooMany[i] = []byte{byte(i)}
	}
	_, err = CreateProgramAddress(programID, tooMany...)
	assert.Equal(t, ErrTooManySeeds, err)
}

func TestFindProgramAddressAndBump(t *testing.T) {
	for i := 0; i < 32; i++ {
		var programID Pubkey
		_, err := rand.Read(programID[:])
		require.NoError(t, err)

		seeds := [][]byte{[]byte("Lil'"), []byte("Bits")}

		address, bump, err := FindProgramAddressAndBump(programID, seeds...)
		require.NoError(t, err)

		// The derived address must round-trip through verification with the
		// same bump, and must not lie on the curve.
		assert.True(t, VerifyProgramAddress(address, programID, bump, seeds...))

		_, err = CreateProgramAddress(programID, append(seeds, []byte{bump})...)
		assert.NoError(t, err)
	}
}

func TestFindProgramAddress_Deterministic(t *testing.T) {
	programID := MustPubkeyFromBase58("BPFLoader1111111111111111111111111111111111")

	a, err := FindProgramAddress(programID, []byte("state"))
	require.NoError(t, err)
	b, err := FindProgramAddress(programID, []byte("state"))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestVerifyProgramAddress_Mismatch(t *testing.T) {
	programID := MustPubkeyFromBase58("BPFLoader1111111111111111111111111111111111")

	address, bump, err := FindProgramAddressAndBump(programID, []byte("vault"))
	require.NoError(t, err)

	assert.False(t, VerifyProgramAddress(address, programID, bump, []byte("wrong")))

	var other Pubkey
	_, err = rand.Read(other[:])
	require.NoError(t, err)
	assert.False(t, VerifyProgramAddress(other, programID, bump, []byte("vault")))
}
