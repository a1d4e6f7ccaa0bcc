package program

import (
	"github.com/onledger/zerocast/pkg/runtime"
	"github.com/onledger/zerocast/pkg/solana"
)

// Shards composes read-only views over a triplet of linked records: the low
// neighbour, the current record, and the high neighbour. Used for structures
// split across adjacent accounts, such as chained price-range partitions.
type Shards[T State] struct {
	low     *View[T]
	current *View[T]
	high    *View[T]
}

// NewShards loads read-only views over the three shard accounts.
func NewShards[T State](low, current, high *runtime.Account, programID solana.Pubkey) (*Shards[T], error) {
	l, err := Load[T](low, programID)
	if err != nil {
		return nil, err
	}
	c, err := Load[T](current, programID)
	if err != nil {
		return nil, err
	}
	h, err := Load[T](high, programID)
	if err != nil {
		return nil, err
	}
	return &Shards[T]{low: l, current: c, high: h}, nil
}

func (s *Shards[T]) Low() *T     { return s.low.Get() }
func (s *Shards[T]) Current() *T { return s.current.Get() }
func (s *Shards[T]) High() *T    { return s.high.Get() }

func (s *Shards[T]) LowAddress() solana.Pubkey     { return s.low.Address() }
func (s *Shards[T]) CurrentAddress() solana.Pubkey { return s.current.Address() }
func (s *Shards[T]) HighAddress() solana.Pubkey    { return s.high.Address() }

// ShardsMut composes writable views over a shard triplet.
//
// Duplicate addresses are deduplicated at construction: when the same account
// is passed at more than one position, it is loaded once and the aliased
// positions resolve to the same view. Accessors (and AllMut) may therefore
// return the same pointer more than once; callers moving data across shard
// boundaries should treat equal addresses as the single record they are.
type ShardsMut[T State] struct {
	low     *Mut[T]
	current *Mut[T]
	high    *Mut[T]
}

// NewShardsMut loads writable views over the three shard accounts, loading
// each distinct account exactly once.
func NewShardsMut[T State](low, current, high *runtime.Account, programID solana.Pubkey) (*ShardsMut[T], error) {
	l, err := LoadMut[T](low, programID)
	if err != nil {
		return nil, err
	}

	c := l
	if current.Address != low.Address {
		if c, err = LoadMut[T](current, programID); err != nil {
			return nil, err
		}
	}

	var h *Mut[T]
	switch {
	case high.Address == low.Address:
		h = l
	case high.Address == current.Address:
		h = c
	default:
		if h, err = LoadMut[T](high, programID); err != nil {
			return nil, err
		}
	}

	return &ShardsMut[T]{low: l, current: c, high: h}, nil
}

// TryNewShardsMut attempts NewShardsMut, reporting failure instead of
// returning an error. Useful for optional opposite-side triplets that may not
// exist yet.
func TryNewShardsMut[T State](low, current, high *runtime.Account, programID solana.Pubkey) (*ShardsMut[T], bool) {
	s, err := NewShardsMut[T](low, current, high, programID)
	if err != nil {
		return nil, false
	}
	return s, true
}

func (s *ShardsMut[T]) Low() *T     { return s.low.Get() }
func (s *ShardsMut[T]) Current() *T { return s.current.Get() }
func (s *ShardsMut[T]) High() *T    { return s.high.Get() }

// LowRef returns the low shard's underlying view, for Reload, Data, or
// address comparisons.
func (s *ShardsMut[T]) LowRef() *Mut[T]     { return s.low }
func (s *ShardsMut[T]) CurrentRef() *Mut[T] { return s.current }
func (s *ShardsMut[T]) HighRef() *Mut[T]    { return s.high }

func (s *ShardsMut[T]) LowAddress() solana.Pubkey     { return s.low.Address() }
func (s *ShardsMut[T]) CurrentAddress() solana.Pubkey { return s.current.Address() }
func (s *ShardsMut[T]) HighAddress() solana.Pubkey    { return s.high.Address() }

// AllMut returns writable access to all three shards at once, for operations
// that move data across the low/current/high boundary. Deduplicated positions
// yield the same pointer.
func (s *ShardsMut[T]) AllMut() (low, current, high *T) {
	return s.low.Get(), s.current.Get(), s.high.Get()
}
