package solana

import (
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// PubkeySize is the length of an ed25519 public key.
const PubkeySize = 32

// Pubkey is a fixed-size account address. The value type allows keys to be
// embedded directly in fixed-layout account state and compared with ==.
type Pubkey [PubkeySize]byte

// PubkeyFromBase58 parses a base58-encoded address.
func PubkeyFromBase58(value string) (Pubkey, error) {
	decoded, err := base58.Decode(value)
	if err != nil {
		return Pubkey{}, errors.Wrap(err, "failed to decode base58 address")
	}
	return PubkeyFromBytes(decoded)
}

// MustPubkeyFromBase58 parses a base58-encoded address, panicking on failure.
// Intended for well-known constant addresses.
func MustPubkeyFromBase58(value string) Pubkey {
	pub, err := PubkeyFromBase58(value)
	if err != nil {
		panic(err)
	}
	return pub
}

// PubkeyFromBytes constructs a Pubkey from a raw byte slice.
func PubkeyFromBytes(value []byte) (Pubkey, error) {
	if len(value) != PubkeySize {
		return Pubkey{}, errors.Errorf("invalid public key size: %d", len(value))
	}

	var pub Pubkey
	copy(pub[:], value)
	return pub, nil
}

// Bytes returns the key as a byte slice.
func (p Pubkey) Bytes() []byte {
	return p[:]
}

// IsZero reports whether the key is the all-zero sentinel address.
func (p Pubkey) IsZero() bool {
	return p == Pubkey{}
}

func (p Pubkey) String() string {
	return base58.Encode(p[:])
}
