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
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Delimiter is the line separating the compute template from the kernel
// body in a template file.
const Delimiter = "%nl"

// Sibling files read from the directory of the template file.
const (
	OuterFile    = "common.in"
	PreambleFile = "definitions.in"
)

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	input string
}

// WithInputTemplate replaces DefaultInputTemplate.
func WithInputTemplate(text string) LoadOption {
	return func(c *loadConfig) {
		c.input = text
	}
}

// Load reads the template file name and its two siblings from fsys,
// splits the template file on the delimiter line and parses the result.
func Load(fsys fs.FS, name string, opts ...LoadOption) (*TemplateSet, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	dir := path.Dir(name)
	defs, err := readFile(fsys, path.Join(dir, PreambleFile))
	if err != nil {
		return nil, err
	}
	outer, err := readFile(fsys, path.Join(dir, OuterFile))
	if err != nil {
		return nil, err
	}
	text, err := readFile(fsys, name)
	if err != nil {
		return nil, err
	}
	compute, inner, err := SplitTemplate(text)
	if err != nil {
		return nil, &ConfigError{Op: "split", Path: name, Err: err}
	}
	Logger().Debug("templates loaded", "template", name, "dir", dir)

	return ParseTemplateSet(TemplateText{
		Input:    cfg.input,
		Compute:  compute,
		Inner:    inner,
		Outer:    outer,
		Preamble: defs,
	})
}

// LoadFile is Load on the operating system file system, resolving the
// siblings next to filename.
func LoadFile(filename string, opts ...LoadOption) (*TemplateSet, error) {
	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	return Load(os.DirFS(dir), base, opts...)
}

// SplitTemplate splits a template file into its compute template and its
// kernel body. The delimiter line must occur exactly once.
func SplitTemplate(text string) (compute, inner string, err error) {
	parts := strings.Split(text, "\n"+Delimiter+"\n")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("want exactly one %q delimiter line, found %d", Delimiter, len(parts)-1)
	}
	return parts[0], parts[1], nil
}

func readFile(fsys fs.FS, name string) (string, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", &ConfigError{Op: "read", Path: name, Err: err}
	}
	return string(b), nil
}
