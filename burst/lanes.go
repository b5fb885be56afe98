// Copyright 2026 burstgen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package burst

import "fmt"

// ChunkLanes is the number of lanes in a full LUT vector (float16).
const ChunkLanes = 16

// Lanes maps a lane number to its OpenCL swizzle symbol, so lane i of a
// vector v is addressed as v.s<Lanes[i]>.
var Lanes = [ChunkLanes]string{
	"0", "1", "2", "3", "4", "5", "6", "7",
	"8", "9", "a", "b", "c", "d", "e", "f",
}

// LaneAccessor returns the swizzle accessor (".s3", ".sa", ...) for the
// lane that holds flat item index i.
func LaneAccessor(i int) string {
	return ".s" + Lanes[i%ChunkLanes]
}

// VectorWidth returns the smallest power of two >= n, capped at ChunkLanes.
// n must be in [1, ChunkLanes].
func VectorWidth(n int) int {
	if n < 1 || n > ChunkLanes {
		panic(fmt.Sprintf("burst: vector width for %d items out of range [1, %d]", n, ChunkLanes))
	}
	w := 1
	for w < n {
		w <<= 1
	}
	return w
}

// Chunk is one sines/cosines LUT parameter pair of a vectorized kernel.
type Chunk struct {
	Ordinal int // Parameter suffix: sines_<Ordinal>, cosines_<Ordinal>
	Items   int // Number of projections whose LUT values live in this chunk
	Width   int // OpenCL vector width of the parameters; 1 means scalar
}

// Remainder reports whether c holds fewer than ChunkLanes items.
func (c Chunk) Remainder() bool {
	return c.Items < ChunkLanes
}

// TypeSuffix returns the vector width suffix of the parameter type, empty
// for scalar parameters ("float" instead of "float1").
func (c Chunk) TypeSuffix() string {
	if c.Width == 1 {
		return ""
	}
	return fmt.Sprint(c.Width)
}

// Chunks splits a burst of n projections into full 16-wide chunks followed
// by at most one remainder chunk.
func Chunks(n int) []Chunk {
	full, rest := n/ChunkLanes, n%ChunkLanes
	chunks := make([]Chunk, 0, full+1)
	for i := range full {
		chunks = append(chunks, Chunk{Ordinal: i, Items: ChunkLanes, Width: ChunkLanes})
	}
	if rest > 0 {
		chunks = append(chunks, Chunk{Ordinal: full, Items: rest, Width: VectorWidth(rest)})
	}
	return chunks
}
