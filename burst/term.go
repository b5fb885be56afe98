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

import "strconv"

// Term is the record rendered into the compute template for one projection.
type Term struct {
	Index  int    // Flat projection index, names projection_<Index>
	Access string // LUT element accessor: "[7]", ".s7" or "" for scalars
	Op     string // "+" for every term but the one seeding the accumulator
	Row    int    // LUT parameter ordinal: sines_<Row>, cosines_<Row>
}

// NewTerm computes the term for item index of a block of count items.
// lutOffset is the number of full 16-wide chunks preceding the block; it is
// always 0 for the constant encoding.
func NewTerm(count, index int, enc Encoding, lutOffset int) Term {
	t := Term{Index: lutOffset*ChunkLanes + index}
	if index != 0 || lutOffset != 0 {
		t.Op = "+"
	}
	switch enc {
	case Constant:
		t.Access = "[" + strconv.Itoa(t.Index) + "]"
	default:
		if count > 1 {
			t.Access = LaneAccessor(index)
		}
		t.Row = index/ChunkLanes + lutOffset
	}
	return t
}

// FillTerm renders the compute template for one item.
func (s *TemplateSet) FillTerm(count, index int, enc Encoding, lutOffset int) (string, error) {
	return render(s.compute, NewTerm(count, index, enc, lutOffset))
}
