package burst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTerm(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		index     int
		enc       Encoding
		lutOffset int
		want      Term
	}{
		{"constant/first", 5, 0, Constant, 0, Term{Index: 0, Access: "[0]", Op: "", Row: 0}},
		{"constant/later", 20, 17, Constant, 0, Term{Index: 17, Access: "[17]", Op: "+", Row: 0}},
		{"vectorized/first", 16, 0, Vectorized, 0, Term{Index: 0, Access: ".s0", Op: "", Row: 0}},
		{"vectorized/lane a", 16, 10, Vectorized, 0, Term{Index: 10, Access: ".sa", Op: "+", Row: 0}},
		{"vectorized/second chunk", 32, 21, Vectorized, 0, Term{Index: 21, Access: ".s5", Op: "+", Row: 1}},
		{"vectorized/remainder", 4, 2, Vectorized, 1, Term{Index: 18, Access: ".s2", Op: "+", Row: 1}},
		{"vectorized/remainder first", 4, 0, Vectorized, 1, Term{Index: 16, Access: ".s0", Op: "+", Row: 1}},
		{"vectorized/scalar", 1, 0, Vectorized, 0, Term{Index: 0, Access: "", Op: "", Row: 0}},
		{"vectorized/scalar remainder", 1, 0, Vectorized, 2, Term{Index: 32, Access: "", Op: "+", Row: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewTerm(tt.count, tt.index, tt.enc, tt.lutOffset))
		})
	}
}

func TestFillTerm(t *testing.T) {
	set := testSet(t)

	got, err := set.FillTerm(4, 3, Vectorized, 2)
	require.NoError(t, err)
	assert.Equal(t, "acc += f(projection_35, sines_2.s3);", got)

	got, err = set.FillTerm(8, 0, Constant, 0)
	require.NoError(t, err)
	assert.Equal(t, "acc = f(projection_0, sines_0[0]);", got)
}
