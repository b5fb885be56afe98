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
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/samber/lo"

	"github.com/ajroetker/burstgen/burst/workerpool"
)

// Generator expands a template set into one kernel per burst size in the
// inclusive range [Start, Stop].
type Generator struct {
	Encoding Encoding // LUT encoding used by every kernel
	Start    int      // Smallest burst size, >= 1
	Stop     int      // Largest burst size, >= Start
	Workers  int      // Kernels assembled concurrently; <= 1 runs sequentially
}

// Validate checks the burst range. It performs no I/O.
func (g *Generator) Validate() error {
	if g.Stop < g.Start {
		return &ConfigError{Op: "validate range", Err: fmt.Errorf("'stop' (%d) < 'start' (%d)", g.Stop, g.Start)}
	}
	if g.Start < 1 {
		return &ConfigError{Op: "validate range", Err: fmt.Errorf("'start' (%d) < 1", g.Start)}
	}
	switch g.Encoding {
	case Vectorized, Constant:
	default:
		return &ConfigError{Op: "validate encoding", Err: fmt.Errorf("unknown encoding %v", g.Encoding)}
	}
	return nil
}

// Sizes returns the burst sizes in ascending order.
func (g *Generator) Sizes() []int {
	return lo.RangeFrom(g.Start, g.Stop-g.Start+1)
}

// Generate returns the preamble followed by every kernel of the range in
// ascending burst order. Nothing is returned unless all kernels succeed.
func (g *Generator) Generate(set *TemplateSet) ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	sizes := g.Sizes()
	kernels := make([]string, len(sizes))
	gen := func(i int) error {
		k, err := set.Kernel(sizes[i], g.Encoding)
		if err != nil {
			return fmt.Errorf("burst %d: %w", sizes[i], err)
		}
		kernels[i] = k
		Logger().Debug("kernel generated", "burst", sizes[i], "bytes", len(k))
		return nil
	}

	var err error
	if g.Workers > 1 {
		pool := workerpool.New(g.Workers)
		defer pool.Close()
		err = pool.Do(len(sizes), gen)
	} else {
		for i := range sizes {
			if err = gen(i); err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(set.Preamble())
	buf.WriteString("\n")
	for _, k := range kernels {
		buf.WriteString(k)
	}
	buf.WriteString("\n")

	Logger().Info("kernels generated",
		"encoding", g.Encoding,
		"start", g.Start,
		"stop", g.Stop,
		"bytes", buf.Len())
	return buf.Bytes(), nil
}

// Run validates the range, loads the template file name from fsys, and
// writes the generated source to w with a single Write. The range is
// checked before any file is opened and nothing is written on failure.
func (g *Generator) Run(fsys fs.FS, name string, w io.Writer, opts ...LoadOption) error {
	if err := g.Validate(); err != nil {
		return err
	}
	set, err := Load(fsys, name, opts...)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	out, err := g.Generate(set)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
