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
	"errors"
	"strings"
)

// Sentinel errors. Errors from validation, loading and rendering match
// exactly one of them under errors.Is.
var (
	// ErrConfiguration is returned for an invalid burst range, an invalid
	// encoding selector, an unreadable template file or a template file
	// without exactly one delimiter line.
	ErrConfiguration = errors.New("burst: configuration error")

	// ErrTemplateFormat is returned when a template does not parse, lacks
	// one of its substitution slots or references an unknown one.
	ErrTemplateFormat = errors.New("burst: template format error")
)

// ConfigError describes a build-configuration defect.
type ConfigError struct {
	Op   string // "validate range", "read", "split", ...
	Path string // File involved, if any
	Err  error
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Is makes every ConfigError match ErrConfiguration.
func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }

// TemplateError describes a template that cannot be rendered.
type TemplateError struct {
	Template string // "compute", "inner", "outer" or "input"
	Field    string // Offending field, empty for parse errors
	Err      error
}

func (e *TemplateError) Error() string {
	var b strings.Builder
	b.WriteString(e.Template)
	b.WriteString(" template")
	if e.Field != "" {
		b.WriteString(": field .")
		b.WriteString(e.Field)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *TemplateError) Unwrap() error { return e.Err }

// Is makes every TemplateError match ErrTemplateFormat.
func (e *TemplateError) Is(target error) bool { return target == ErrTemplateFormat }
