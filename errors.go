package fenwick

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfRange is returned when an index falls outside the
	// bounds accepted by an operation: 1..Size() for Update, Get and Set,
	// 0..Size() for PrefixSum.
	ErrIndexOutOfRange = errors.New("fenwick: index out of range")

	// ErrInvalidRange is returned by RangeSum when left > right.
	ErrInvalidRange = errors.New("fenwick: left index greater than right index")
)

func indexError(op string, index, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "%s(%d) on tree of size %d", op, index, size)
}

func rangeError(left, right int) error {
	return errors.Wrapf(ErrInvalidRange, "range sum [%d, %d]", left, right)
}
