package fenwick

import "fmt"

// Tree is a fixed-capacity list of int64 values with efficient prefix
// sums. The zero value is a tree of size zero.
type Tree struct {
	// tree[i] holds the sum of the logical values in the range
	// (i - lsb(i), i]. Slot 0 is never used so that the lowest set bit
	// of every valid index is non-zero.
	//
	// For example, the prefix sum up to 13 (1101₂) adds tree[13],
	// tree[12] and tree[8], which hold the values at 13, at 9..12 and
	// at 1..8 respectively.
	tree []int64
	n    int
}

func lsb(i int) int {
	return i & -i
}

// New creates a tree holding capacity zeros. It panics if capacity is
// negative.
func New(capacity int) *Tree {
	if capacity < 0 {
		panic("fenwick: negative capacity")
	}
	return &Tree{
		tree: make([]int64, capacity+1),
		n:    capacity,
	}
}

// NewFrom creates a tree with the given elements in O(n) time.
// values[0] is stored at index 1.
func NewFrom(values ...int64) *Tree {
	n := len(values)
	t := make([]int64, n+1)
	copy(t[1:], values)
	for i := 1; i <= n; i++ {
		if j := i + lsb(i); j <= n {
			t[j] += t[i]
		}
	}
	return &Tree{
		tree: t,
		n:    n,
	}
}

// Size returns the number of elements in the tree.
func (t *Tree) Size() int {
	return t.n
}

// Update adds delta to the element at index.
func (t *Tree) Update(index int, delta int64) error {
	if index < 1 || index > t.n {
		return indexError("update", index, t.n)
	}
	for ; index <= t.n; index += lsb(index) {
		t.tree[index] += delta
	}
	return nil
}

// PrefixSum returns the sum of the elements at indices 1..index.
// PrefixSum(0) is always 0.
func (t *Tree) PrefixSum(index int) (int64, error) {
	if index < 0 || index > t.n {
		return 0, indexError("prefix sum", index, t.n)
	}
	return t.sum(index), nil
}

func (t *Tree) sum(index int) (sum int64) {
	for ; index > 0; index -= lsb(index) {
		sum += t.tree[index]
	}
	return sum
}

// RangeSum returns the sum of the elements at indices left..right.
//
// Only left > right is checked here. Bounds are enforced by PrefixSum
// on right and left-1, so RangeSum(0, r) fails with ErrIndexOutOfRange.
func (t *Tree) RangeSum(left, right int) (int64, error) {
	if left > right {
		return 0, rangeError(left, right)
	}
	hi, err := t.PrefixSum(right)
	if err != nil {
		return 0, err
	}
	lo, err := t.PrefixSum(left - 1)
	if err != nil {
		return 0, err
	}
	return hi - lo, nil
}

// Get returns the element at index.
func (t *Tree) Get(index int) (int64, error) {
	if index < 1 || index > t.n {
		return 0, indexError("get", index, t.n)
	}
	return t.get(index), nil
}

func (t *Tree) get(index int) int64 {
	v := t.tree[index]
	stop := index - lsb(index)
	for j := index - 1; j > stop; j -= lsb(j) {
		v -= t.tree[j]
	}
	return v
}

// Set sets the element at index to value.
func (t *Tree) Set(index int, value int64) error {
	if index < 1 || index > t.n {
		return indexError("set", index, t.n)
	}
	return t.Update(index, value-t.get(index))
}

// Total returns the sum of all elements.
func (t *Tree) Total() int64 {
	return t.sum(t.n)
}

// Reset sets every element to zero. The size is unchanged.
func (t *Tree) Reset() {
	for i := range t.tree {
		t.tree[i] = 0
	}
}

func (t *Tree) String() string {
	return fmt.Sprintf("FT<size=%d, total=%d>", t.n, t.Total())
}
