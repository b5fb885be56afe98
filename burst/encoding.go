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
	"strconv"
	"strings"
)

// Encoding selects how the sine/cosine lookup tables reach the kernel.
type Encoding int

const (
	// Vectorized packs the LUT values into float16 (and narrower remainder)
	// kernel arguments, one sines/cosines pair per 16 projections.
	Vectorized Encoding = iota
	// Constant passes both tables as pointers into constant memory.
	Constant
)

var encodingNames = map[Encoding]string{
	Vectorized: "vectorized",
	Constant:   "constant",
}

// String returns the lower-case name of the encoding.
func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return "Encoding(" + strconv.Itoa(int(e)) + ")"
}

// ParseEncoding parses the command line selector: "0" (vectorized) or
// "1" (constant). The names "vectorized" and "constant" are accepted too.
func ParseEncoding(s string) (Encoding, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "0", "vectorized":
		return Vectorized, nil
	case "1", "constant":
		return Constant, nil
	}
	return 0, &ConfigError{
		Op:  "parse encoding",
		Err: fmt.Errorf("invalid choice %q (choose from 0, 1)", s),
	}
}
