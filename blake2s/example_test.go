package blake2s_test

import (
	"fmt"

	"github.com/kobigurk/blake2-simd/blake2s"
)

func ExampleSum() {
	fmt.Println(blake2s.Sum([]byte("x")))
	// Output: ec308c07c83582c663e922066c44923bf71bc104ffb82479fb06dc22503c9b0c
}

func ExampleSumParallel() {
	fmt.Println(blake2s.SumParallel(nil))
	// Output: dd0e891776933f43c7d032b08a917e25741f8aa9a12c12e1cac8801500f2ca4f
}

func ExampleParams_TreeHash() {
	params, err := blake2s.NewParams().
		Fanout(8).
		MaxDepth(2).
		MaxLeafLength(100).
		InnerHashLength(16).
		Build()
	if err != nil {
		panic(err)
	}

	fmt.Println(params.TreeHash(nil))
	// Output: 82d280eae6b40b80d949e72fa06a93a28bacf063af0e0a6fd944a9e72907475b
}
