package blake2simd_test

import (
	"errors"
	"fmt"

	blake2simd "github.com/kobigurk/blake2-simd"
	"github.com/kobigurk/blake2-simd/blake2b"
	"github.com/kobigurk/blake2-simd/blake2s"
)

func Example() {
	fmt.Println(blake2b.Sum(nil).Hex()[:16])
	fmt.Println(blake2s.Sum(nil).Hex()[:16])
	// Output:
	// 786a02f742015903
	// 69217a3079908094
}

func Example_errors() {
	_, err := blake2s.NewParams().HashLength(33).Build()
	fmt.Println(errors.Is(err, blake2simd.ErrInvalidParameter))
	fmt.Println(err)

	s := blake2b.NewState(nil)
	_, _ = s.Finalize()
	_, err = s.Finalize()
	fmt.Println(errors.Is(err, blake2simd.ErrInvalidState))
	// Output:
	// true
	// invalid parameter: hash_length = 33, want 1..32
	// true
}

func ExampleDetectedCapabilities() {
	caps := blake2simd.DetectedCapabilities()
	fmt.Println(caps.ISA != "")
	// Output: true
}
