package dict

type sentinel struct{}

// KeySet is a fixed-capacity set of integer keys backed by a ProbeTable.
type KeySet[T Integer] struct {
	data *ProbeTable[T, sentinel]
}

// NewKeySet creates an empty set. emptyKey and deletedKey are reserved as in New.
func NewKeySet[T Integer](emptyKey, deletedKey T, capacity int, opts ...Option) (*KeySet[T], error) {
	data, err := New[T, sentinel](emptyKey, deletedKey, capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &KeySet[T]{data: data}, nil
}

// Add inserts a key into the set. Adding a present key is not an error.
func (s *KeySet[T]) Add(key T) error {
	if s.Contains(key) {
		return nil
	}
	return s.data.Insert(key, sentinel{})
}

// Contains checks if a key is in the set
func (s *KeySet[T]) Contains(key T) bool {
	_, exists := s.data.Find(key)
	return exists
}

// Remove deletes a key from the set and reports whether it was present.
func (s *KeySet[T]) Remove(key T) bool {
	_, exists := s.data.Remove(key)
	return exists
}

func (s *KeySet[T]) Len() int {
	return s.data.Count()
}

func (s *KeySet[T]) Clear() {
	s.data.Clear()
}
