package kernels

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/burstgen/burst"
)

func TestFamiliesLoad(t *testing.T) {
	for _, family := range Families {
		t.Run(family, func(t *testing.T) {
			set, err := burst.Load(Templates, family)
			require.NoError(t, err)
			assert.Contains(t, set.Preamble(), "project_voxel")
		})
	}
}

func TestFamiliesGenerate(t *testing.T) {
	for _, family := range Families {
		set, err := burst.Load(Templates, family)
		require.NoError(t, err, family)
		for _, enc := range []burst.Encoding{burst.Vectorized, burst.Constant} {
			g := &burst.Generator{Encoding: enc, Start: 1, Stop: 33}
			out, err := g.Generate(set)
			require.NoError(t, err, "%s %v", family, enc)

			src := string(out)
			assert.Equal(t, strings.Count(src, "{"), strings.Count(src, "}"), "%s %v: unbalanced braces", family, enc)
			assert.Equal(t, 33, strings.Count(src, "kernel void\nbackproject_burst_"), "%s %v", family, enc)
			for n := 1; n <= 33; n++ {
				assert.Contains(t, src, "backproject_burst_"+strconv.Itoa(n)+" (\n")
			}
		}
	}
}

func TestZBurst17Vectorized(t *testing.T) {
	set, err := burst.Load(Templates, "lamino/z.in")
	require.NoError(t, err)
	k, err := set.Kernel(17, burst.Vectorized)
	require.NoError(t, err)

	for _, want := range []string{
		"read_only image2d_t projection_16,\n",
		"const float16 sines_0,\nconst float16 cosines_0,\nconst float sines_1,\nconst float cosines_1,\n",
		"sines_0.s0, cosines_0.s0, sin_lamino",
		"sines_0.sf, cosines_0.sf, sin_lamino",
		"sines_1, cosines_1, sin_lamino",
		"result = read_imagef (projection_0, sampler, pixel).x;",
		"result += read_imagef (projection_16, sampler, pixel).x;",
	} {
		assert.Contains(t, k, want)
	}
	assert.NotContains(t, k, "projection_17")
}

func TestZBurstConstant(t *testing.T) {
	set, err := burst.Load(Templates, "lamino/z.in")
	require.NoError(t, err)
	k, err := set.Kernel(4, burst.Constant)
	require.NoError(t, err)

	assert.Contains(t, k, "constant float *sines_0,\nconstant float *cosines_0,\n")
	for i := range 4 {
		assert.Contains(t, k, "sines_0["+strconv.Itoa(i)+"], cosines_0["+strconv.Itoa(i)+"]")
	}
}
