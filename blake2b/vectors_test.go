package blake2b

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counting returns n bytes 0, 1, 2, ... wrapping at 256.
func counting(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// mod251 returns n bytes i % 251.
func mod251(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}

func mustBuild(t testing.TB, b Builder) *Params {
	t.Helper()
	p, err := b.Build()
	require.NoError(t, err)
	return p
}

func mustBuildParallel(t testing.TB, b ParallelBuilder) *ParallelParams {
	t.Helper()
	pp, err := b.Build()
	require.NoError(t, err)
	return pp
}

func TestVectors(t *testing.T) {
	katKey := counting(KeyBytes)

	tests := []struct {
		name   string
		params Builder
		input  []byte
		want   string
	}{
		{"empty", NewParams(), nil, "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce"},
		{"one byte", NewParams(), []byte("x"), "0909377ad35110cafb2909e185672b7f2728d1f5094f8ad68d6fac6274bf1f499485a80ea364c04ed006d29459ea3cb7c600280e2f83e032529906f88ae30d0a"},
		{"one block", NewParams(), counting(BlockBytes), "2319e3789c47e2daa5fe807f61bec2a1a6537fa03f19ff32e87eecbfd64b7e0e8ccff439ac333b040f19b0c4ddd11a61e24ac1fe0f10a039806c5dcc0da3d115"},
		{"keyed empty", NewParams().Key(katKey), nil, "10ebb67700b1868efb4417987acf4690ae9d972fb7a590c2f02871799aaa4786b5e996e8f0f4eb981fc214b005f42d2ff4233499391653df7aefcbc13fc51568"},
		{"keyed 256", NewParams().Key(katKey), counting(256), "b72071e096277edebb8ee5134dd3714996307ba3a55aa4733d412abbe28e909e10e57e6fbfb4ef53b3b960518294ff889a90829254412e2a60b85add07a3674f"},
		{"abc 32", NewParams().HashLength(32), []byte("abc"), "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319"},
		{
			"salt and personal",
			NewParams().HashLength(32).Key([]byte("secret")).Salt([]byte("saltsalt")).Personal([]byte("personal-string!")),
			[]byte("hello world"),
			"1883898184a17510e3c5820a8c3427280190abee388354bd591838ea860206f1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, portable := range []bool{false, true} {
				b := tt.params
				if portable {
					b = b.ForcePortable()
				}
				p := mustBuild(t, b)

				assert.Equal(t, tt.want, p.Hash(tt.input).Hex(), "one-shot portable=%v", portable)

				s := NewState(p)
				require.NoError(t, s.Update(tt.input))
				got, err := s.Finalize()
				require.NoError(t, err)
				assert.Equal(t, tt.want, got.Hex(), "incremental portable=%v", portable)

				job := NewJob(p, tt.input)
				HashMany([]*Job{job})
				got, err = job.Hash()
				require.NoError(t, err)
				assert.Equal(t, tt.want, got.Hex(), "hash many portable=%v", portable)
			}
		})
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t,
		"786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce",
		Sum(nil).Hex())
	assert.Equal(t, OutBytes, Sum([]byte("x")).Len())
}

func TestParallelVectors(t *testing.T) {
	katKey := counting(KeyBytes)

	tests := []struct {
		name   string
		params ParallelBuilder
		input  []byte
		want   string
	}{
		{"empty", NewParallelParams(), nil, "b5ef811a8038f70b628fa8b294daae7492b1ebe343a80eaabbf1f6ae664dd67b9d90b0120791eab81dc96985f28849f6a305186a85501b405114bfa678df9380"},
		{"one byte", NewParallelParams(), []byte("x"), "f2da8100116b1638831b72b4dc3bb96aa59d37fc2c0e0aa59dfcd19eb52f454fc5b27c9fe287b018a65fa6f7c4a12e82001b9fd91ad0406cca87bf7b17e799ff"},
		{"1000", NewParallelParams(), mod251(1000), "440c4c3a7a50159b43a3b80e63083fa88b7e644490061ce763e92426d1fa9f034d0a3a4f94d99042b98d068da35c5af694ea9e7f51b8551af5c99c2eef95024d"},
		{"3000", NewParallelParams(), mod251(3000), "e7e2e0eeabc58ca7228a4fa20580a6e34ecb754ff2cc23123a6547646e88dce7e03573c2140d272dc6a4c4994e2a7242c3358787b2615b8f2cf1b62561c5e6cb"},
		{"keyed empty", NewParallelParams().Key(katKey), nil, "9d9461073e4eb640a255357b839f394b838c6ff57c9b686a3f76107c1066728f3c9956bd785cbc3bf79dc2ab578c5a0c063b9d9c405848de1dbe821cd05c940a"},
		{"keyed 256", NewParallelParams().Key(katKey), counting(256), "9915a97dc3df81251f1778dfc4fa02a2ad8cfc8f89b51ac19e90a45f372069015d8b4e877b330d7e53d1ef636fa7b6f8736b2e049aa98d2f7c85c9615df9e2ec"},
		{"1000 length 32", NewParallelParams().HashLength(32), mod251(1000), "1a6ce3255f2054bf866495cd964809023cbc29021d008298f70eafb85a5f8671"},
		{"1000 length 32 keyed", NewParallelParams().HashLength(32).Key([]byte("kkkkkkkkkk")), mod251(1000), "820d2e5d404d6e832df326748e4c3e5e295a7c2d61edf0af78106558346bfff7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, portable := range []bool{false, true} {
				b := tt.params
				if portable {
					b = b.ForcePortable()
				}
				pp := mustBuildParallel(t, b)

				assert.Equal(t, tt.want, pp.Hash(tt.input).Hex(), "one-shot portable=%v", portable)

				s := pp.NewState()
				require.NoError(t, s.Update(tt.input))
				got, err := s.Finalize()
				require.NoError(t, err)
				assert.Equal(t, tt.want, got.Hex(), "incremental portable=%v", portable)
			}
		})
	}

	assert.Equal(t, tests[0].want, SumParallel(nil).Hex())
}

func TestTreeVectors(t *testing.T) {
	tree := NewParams().Fanout(8).MaxDepth(2).MaxLeafLength(200).InnerHashLength(32)

	tests := []struct {
		name string
		key  []byte
		n    int
		want string
	}{
		{"empty", nil, 0, "5c637abc9c738dd9015fe12228ab7848e0bc267018f0054a2b6f0e4e4fcab19145ea7b95b5f93b021c87dca69d0225b42cb7975e88bf4c8f27df35d0b031c19b"},
		{"one leaf", nil, 50, "53000c4353bd538e85d3968e7dbd58bda45bc5fa63234f6b5fb9ea212d6ebe389a874465e122f80b27a478214d4c24f921a33b483354d6b95cc90ec5029ec6e3"},
		{"five leaves", nil, 1000, "80d47e9a8c5f41685c1eac5ca789fd28b960a31fe1b00b379007272ec63e7496dc60d2a09639b6293df612ca43fbc431125afd7accd0590fd61a5794383fca2f"},
		{"keyed", []byte("tree-key"), 1000, "7f7b81dc0d0418d2cfc813539b86f927ce40b3329de854c34d524a68555dc72933f7f5deb9c47bddfa954874d682d8b04771d9677a655ca1e8b5fc996b4278a7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustBuild(t, tree.Key(tt.key))
			assert.Equal(t, tt.want, p.TreeHash(mod251(tt.n)).Hex())

			pp := mustBuild(t, tree.Key(tt.key).ForcePortable())
			assert.Equal(t, tt.want, pp.TreeHash(mod251(tt.n)).Hex())
		})
	}
}
