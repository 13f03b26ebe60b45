package fenwick_test

import (
	"errors"
	"fmt"

	"github.com/caio/go-fenwick"
)

func Example() {
	tree := fenwick.New(10)

	_ = tree.Update(1, 5)
	_ = tree.Update(2, 8)
	_ = tree.Update(5, 12)

	sum, _ := tree.RangeSum(2, 5)
	fmt.Println(sum)

	_, err := tree.RangeSum(1, 15)
	fmt.Println(errors.Is(err, fenwick.ErrIndexOutOfRange))

	// Output:
	// 20
	// true
}

func ExampleTree_RangeSum_invalid() {
	tree := fenwick.New(10)

	_, err := tree.RangeSum(5, 3)
	fmt.Println(errors.Is(err, fenwick.ErrInvalidRange))

	// Output: true
}
