package dict

import (
	"fmt"
	"io"
)

// Dump writes every non-empty slot to w, one per line.
func (t *ProbeTable[K, V]) Dump(w io.Writer) error {
	for i := range t.slots {
		s := &t.slots[i]
		var err error
		switch s.state {
		case Occupied:
			_, err = fmt.Fprintf(w, "[%d] = {%v, %v}\n", i, s.key, s.value)
		case Deleted:
			_, err = fmt.Fprintf(w, "[%d] = <deleted>\n", i)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// DumpPermutation writes the probe offsets to w, one per line.
func (t *ProbeTable[K, V]) DumpPermutation(w io.Writer) error {
	for i := 0; i < t.perm.Len(); i++ {
		if _, err := fmt.Fprintf(w, "permutation[%d] = %d\n", i, t.perm.At(i)); err != nil {
			return err
		}
	}
	return nil
}

func (t *ProbeTable[K, V]) String() string {
	return fmt.Sprintf("ProbeTable{count=%d, capacity=%d, limit=%d}", t.count, len(t.slots), t.limit)
}
