package solana

import (
	"crypto/sha256"
	"math"

	"github.com/jdgcs/ed25519/edwards25519"
	"github.com/pkg/errors"
)

const (
	maxSeeds      = 16
	maxSeedLength = 32
)

var (
	ErrTooManySeeds          = errors.New("too many seeds")
	ErrMaxSeedLengthExceeded = errors.New("max seed length exceeded")

	// ErrInvalidPublicKey indicates the derived candidate lies on the ed25519
	// curve and therefore cannot be used as a program address.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrNoViableBump indicates every bump seed from 255 down to 0 produced an
	// on-curve candidate. Statistically unreachable for real seed sets.
	ErrNoViableBump = errors.New("no viable bump seed")
)

// CreateProgramAddress mirrors the Solana SDK's CreateProgramAddress.
//
// Program addresses are public keys that _do not_ lie on the ed25519 curve,
// so there can be no associated private key. If the seeds and program result
// in a valid curve point, ErrInvalidPublicKey is returned.
//
// Reference: https://github.com/solana-labs/solana/blob/5548e599fe4920b71766e0ad1d121755ce9c63d5/sdk/program/src/pubkey.rs#L158
func CreateProgramAddress(program Pubkey, seeds ...[]byte) (Pubkey, error) {
	if len(seeds) > maxSeeds {
		return Pubkey{}, ErrTooManySeeds
	}

	h := sha256.New()
	for _, s := range seeds {
		if len(s) > maxSeedLength {
			return Pubkey{}, ErrMaxSeedLengthExceeded
		}

		if _, err := h.Write(s); err != nil {
			return Pubkey{}, errors.Wrap(err, "failed to hash seed")
		}
	}

	for _, v := range [][]byte{program[:], []byte("ProgramDerivedAddress")} {
		if _, err := h.Write(v); err != nil {
			return Pubkey{}, errors.Wrap(err, "failed to hash seed")
		}
	}

	var pub Pubkey
	copy(pub[:], h.Sum(nil))

	// Following the Solana SDK, reject the candidate if it decodes as a valid
	// compressed EdwardsPoint. The x/crypto ExtendedGroupElement is internal,
	// so we rely on a deprecated open source alternative for the decode.
	//
	// Reference: https://github.com/solana-labs/solana/blob/5548e599fe4920b71766e0ad1d121755ce9c63d5/sdk/program/src/pubkey.rs#L182-L187
	var A edwards25519.ExtendedGroupElement
	if A.FromBytes((*[32]byte)(&pub)) {
		return Pubkey{}, ErrInvalidPublicKey
	}

	return pub, nil
}

// FindProgramAddressAndBump mirrors the Solana SDK's FindProgramAddress,
// scanning bump seeds from 255 downward and returning the first off-curve
// address together with the bump that produced it.
//
// Reference: https://github.com/solana-labs/solana/blob/5548e599fe4920b71766e0ad1d121755ce9c63d5/sdk/program/src/pubkey.rs#L234
func FindProgramAddressAndBump(program Pubkey, seeds ...[]byte) (Pubkey, uint8, error) {
	bumpSeed := []byte{math.MaxUint8}
	for i := 0; i <= math.MaxUint8; i++ {
		pub, err := CreateProgramAddress(program, append(seeds, bumpSeed)...)
		if err == nil {
			return pub, bumpSeed[0], nil
		}
		if err != ErrInvalidPublicKey {
			return Pubkey{}, 0, err
		}

		bumpSeed[0]--
	}

	return Pubkey{}, 0, ErrNoViableBump
}

// FindProgramAddress mirrors the Solana SDK's FindProgramAddress. It only
// returns the address.
func FindProgramAddress(program Pubkey, seeds ...[]byte) (Pubkey, error) {
	pub, _, err := FindProgramAddressAndBump(program, seeds...)
	return pub, err
}

// VerifyProgramAddress reports whether address is the program address derived
// from the given seeds with the provided bump appended.
func VerifyProgramAddress(address, program Pubkey, bump uint8, seeds ...[]byte) bool {
	derived, err := CreateProgramAddress(program, append(seeds, []byte{bump})...)
	if err != nil {
		return false
	}
	return derived == address
}
