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

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const constantLUTParams = "constant float *sines_0,\nconstant float *cosines_0,\n"

type inputData struct {
	Index int
}

type innerData struct {
	Terms string
}

type outerData struct {
	Burst  int
	Inputs string
	LUTs   string
	Body   string
}

// LUTParams returns the sines/cosines parameter declarations of the kernel
// for a burst of n projections. Every declaration ends with ",\n".
func LUTParams(n int, enc Encoding) string {
	if enc == Constant {
		return constantLUTParams
	}
	return strings.Join(lo.Map(Chunks(n), func(c Chunk, _ int) string {
		return fmt.Sprintf("const float%[1]s sines_%[2]d,\nconst float%[1]s cosines_%[2]d,\n", c.TypeSuffix(), c.Ordinal)
	}), "")
}

// Inputs returns the n projection image declarations, one per line.
func (s *TemplateSet) Inputs(n int) (string, error) {
	decls := make([]string, 0, n)
	for _, i := range lo.Range(n) {
		decl, err := render(s.input, inputData{Index: i})
		if err != nil {
			return "", err
		}
		decls = append(decls, decl)
	}
	return strings.Join(decls, "\n"), nil
}

// Terms returns the accumulation terms of a burst of n projections in
// ascending index order. With the vectorized encoding the terms of the full
// chunks and those of the remainder chunk are separated by a blank line.
func (s *TemplateSet) Terms(n int, enc Encoding) (string, error) {
	if enc == Constant {
		return s.termBlock(n, enc, 0)
	}
	full, rest := n/ChunkLanes, n%ChunkLanes
	var blocks []string
	if full > 0 {
		b, err := s.termBlock(full*ChunkLanes, enc, 0)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, b)
	}
	if rest > 0 {
		b, err := s.termBlock(rest, enc, full)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, b)
	}
	return strings.Join(blocks, "\n\n"), nil
}

func (s *TemplateSet) termBlock(count int, enc Encoding, lutOffset int) (string, error) {
	terms := make([]string, 0, count)
	for _, i := range lo.Range(count) {
		term, err := s.FillTerm(count, i, enc, lutOffset)
		if err != nil {
			return "", err
		}
		terms = append(terms, term)
	}
	return strings.Join(terms, "\n"), nil
}

// Kernel assembles the complete kernel function for a burst of n
// projections.
func (s *TemplateSet) Kernel(n int, enc Encoding) (string, error) {
	if n < 1 {
		return "", &ConfigError{Op: "assemble kernel", Err: fmt.Errorf("burst size %d < 1", n)}
	}
	inputs, err := s.Inputs(n)
	if err != nil {
		return "", err
	}
	terms, err := s.Terms(n, enc)
	if err != nil {
		return "", err
	}
	body, err := render(s.inner, innerData{Terms: terms})
	if err != nil {
		return "", err
	}
	return render(s.outer, outerData{
		Burst:  n,
		Inputs: inputs,
		LUTs:   LUTParams(n, enc),
		Body:   body,
	})
}
