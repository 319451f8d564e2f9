package dict

import (
	"fmt"

	"go.uber.org/zap"
)

// Integer is the set of key types a ProbeTable can hash.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type SlotState uint8

const (
	Empty SlotState = iota
	Deleted
	Occupied
)

func (s SlotState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Deleted:
		return "deleted"
	case Occupied:
		return "occupied"
	default:
		return fmt.Sprintf("SlotState(%d)", uint8(s))
	}
}

// Slot is one cell of the table. Key and Value are meaningful only when the
// state is Occupied.
type Slot[K Integer, V any] struct {
	state SlotState
	key   K
	value V
}

func (s Slot[K, V]) State() SlotState { return s.state }
func (s Slot[K, V]) Key() K { return s.key }
func (s Slot[K, V]) Value() V { return s.value }

// ProbeTable is a fixed-capacity open addressing map. Collisions are resolved
// by walking a random permutation of offsets from the key's home slot, so the
// probe path for a key never changes for the life of the table.
//
// emptyKey and deletedKey are reserved: callers must never insert them. Slots
// carry their own state, so a violation does not corrupt the table, but it is
// not a supported use.
//
// A ProbeTable is not safe for concurrent use; guard the whole instance with
// one lock if it is shared.
type ProbeTable[K Integer, V any] struct {
	slots      []Slot[K, V]
	perm       *Permutation
	count      int
	limit      int
	emptyKey   K
	deletedKey K
	logger     *zap.Logger
}

// New creates a table of the given capacity with every slot empty.
func New[K Integer, V any](emptyKey, deletedKey K, capacity int, opts ...Option) (*ProbeTable[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("new probe table with capacity %d: %w", capacity, ErrInvalidCapacity)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !(cfg.maxLoad > 0 && cfg.maxLoad <= 1) {
		return nil, fmt.Errorf("new probe table with max load %v: %w", cfg.maxLoad, ErrInvalidLoadFactor)
	}

	limit := int(float64(capacity) * cfg.maxLoad)
	if limit < 1 {
		limit = 1
	}

	t := &ProbeTable[K, V]{
		slots:      make([]Slot[K, V], capacity),
		perm:       NewPermutation(capacity, cfg.seed),
		limit:      limit,
		emptyKey:   emptyKey,
		deletedKey: deletedKey,
		logger:     cfg.logger,
	}

	t.logger.Debug("probe table created",
		zap.Int("capacity", capacity),
		zap.Int("limit", limit),
		zap.Int64("seed", cfg.seed))
	return t, nil
}

// hash maps key to its home slot in [0, capacity).
func (t *ProbeTable[K, V]) hash(key K) int {
	if key >= 0 {
		// Exact for every non-negative key, including unsigned keys >= 2^63.
		return int(uint64(key) % uint64(len(t.slots)))
	}
	l := int64(len(t.slots))
	return int(((int64(key) % l) + l) % l)
}

// Probe returns the probe path of key: its home slot followed by home+offset
// for every offset of the permutation, all modulo the capacity.
func (t *ProbeTable[K, V]) Probe(key K) *ProbeSequence {
	return &ProbeSequence{
		home: t.hash(key),
		size: len(t.slots),
		perm: t.perm,
	}
}

// Find returns the value stored under key.
func (t *ProbeTable[K, V]) Find(key K) (V, bool) {
	seq := t.Probe(key)
	for idx, ok := seq.Next(); ok; idx, ok = seq.Next() {
		s := &t.slots[idx]
		if s.state == Empty {
			break
		}
		if s.state == Occupied && s.key == key {
			return s.value, true
		}
	}

	var zero V
	return zero, false
}

// Insert stores value under key in the first empty or deleted slot on key's
// probe path. It returns ErrDuplicateKey if key is already present and
// ErrTableFull if the table has reached its load limit; in both cases the
// table is left unchanged.
func (t *ProbeTable[K, V]) Insert(key K, value V) error {
	if t.count >= t.limit {
		t.logger.Debug("insert rejected: table full",
			zap.Int("count", t.count),
			zap.Int("limit", t.limit))
		return ErrTableFull
	}
	if _, ok := t.Find(key); ok {
		return ErrDuplicateKey
	}

	seq := t.Probe(key)
	for idx, ok := seq.Next(); ok; idx, ok = seq.Next() {
		s := &t.slots[idx]
		if s.state != Occupied {
			*s = Slot[K, V]{state: Occupied, key: key, value: value}
			t.count++
			return nil
		}
	}

	// Unreachable while limit <= capacity: the path covers every slot.
	return ErrTableFull
}

// Remove deletes key and returns the value it held.
func (t *ProbeTable[K, V]) Remove(key K) (V, bool) {
	var zero V

	seq := t.Probe(key)
	for idx, ok := seq.Next(); ok; idx, ok = seq.Next() {
		s := &t.slots[idx]
		if s.state == Empty {
			break
		}
		if s.state == Occupied && s.key == key {
			value := s.value
			*s = Slot[K, V]{state: Deleted}
			t.count--
			return value, true
		}
	}

	return zero, false
}

// Clear empties every slot in place. Capacity and permutation are kept.
func (t *ProbeTable[K, V]) Clear() {
	for i := range t.slots {
		t.slots[i] = Slot[K, V]{}
	}
	t.count = 0
	t.logger.Debug("probe table cleared", zap.Int("capacity", len(t.slots)))
}

// Count returns the number of occupied slots.
func (t *ProbeTable[K, V]) Count() int {
	return t.count
}

// Capacity returns the number of slots.
func (t *ProbeTable[K, V]) Capacity() int {
	return len(t.slots)
}

// Limit returns the maximum number of entries the table accepts.
func (t *ProbeTable[K, V]) Limit() int {
	return t.limit
}

func (t *ProbeTable[K, V]) EmptyKey() K { return t.emptyKey }
func (t *ProbeTable[K, V]) DeletedKey() K { return t.deletedKey }

// SlotAt returns a copy of slot i.
func (t *ProbeTable[K, V]) SlotAt(i int) Slot[K, V] {
	return t.slots[i]
}

// Permutation returns a copy of the probe offsets.
func (t *ProbeTable[K, V]) Permutation() []int {
	return t.perm.Offsets()
}

// ProbeSequence lazily yields the slots of one probe path. Every slot of the
// table is yielded exactly once.
type ProbeSequence struct {
	home int
	size int
	perm *Permutation
	step int
}

// Next returns the next slot index, or false once the path is exhausted.
func (p *ProbeSequence) Next() (int, bool) {
	if p.step >= p.size {
		return 0, false
	}

	idx := p.home
	if p.step > 0 {
		idx = (p.home + p.perm.At(p.step-1)) % p.size
	}
	p.step++
	return idx, true
}

// Home returns the first slot of the path.
func (p *ProbeSequence) Home() int {
	return p.home
}

// Slots drains the remaining path into a slice.
func (p *ProbeSequence) Slots() []int {
	out := make([]int, 0, p.size-p.step)
	for idx, ok := p.Next(); ok; idx, ok = p.Next() {
		out = append(out, idx)
	}
	return out
}
