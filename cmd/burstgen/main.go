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

// Command burstgen generates burst backprojection OpenCL kernels from
// kernel templates, one kernel per burst size in an inclusive range.
//
// Usage:
//
//	burstgen z.in 0 1 32 > z-burst.cl               # vectorized LUTs
//	burstgen z.in 1 1 32 > z-burst.cl               # constant-memory LUTs
//	burstgen -o z-burst.cl -j 8 z.in 0 1 32
//	burstgen --archive lamino.txtar lamino/z.in 0 1 16
//	burstgen --embedded lamino/z.in 0 1 16
//
// The template file is split on a line holding only %nl into the compute
// template and the kernel body. common.in (kernel skeleton) and
// definitions.in (preamble) are read from the same directory.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
