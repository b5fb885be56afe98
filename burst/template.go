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
	"slices"
	"strings"
	"text/template"
	"text/template/parse"
)

// DefaultInputTemplate declares one projection image argument.
const DefaultInputTemplate = "read_only image2d_t projection_{{.Index}},"

// Template names, also used in error messages.
const (
	inputTemplate   = "input"
	computeTemplate = "compute"
	innerTemplate   = "inner"
	outerTemplate   = "outer"
)

// slots lists the fields each template must reference. Referencing any
// other field is a format error too.
var slots = map[string][]string{
	inputTemplate:   {"Index"},
	computeTemplate: {"Index", "Access", "Op", "Row"},
	innerTemplate:   {"Terms"},
	outerTemplate:   {"Burst", "Inputs", "LUTs", "Body"},
}

// TemplateText holds the raw text of every template of a kernel family.
type TemplateText struct {
	Input    string // One input image declaration, fields: .Index
	Compute  string // One accumulation term, fields: .Index .Access .Op .Row
	Inner    string // Kernel body, fields: .Terms
	Outer    string // Kernel skeleton, fields: .Burst .Inputs .LUTs .Body
	Preamble string // Shared definitions, emitted verbatim once
}

// TemplateSet is a parsed, validated TemplateText. It is read-only after
// construction and safe for concurrent use.
type TemplateSet struct {
	input    *template.Template
	compute  *template.Template
	inner    *template.Template
	outer    *template.Template
	preamble string
}

// Preamble returns the shared definitions emitted before all kernels.
func (s *TemplateSet) Preamble() string {
	return s.preamble
}

// ParseTemplateSet parses every template of t and checks that each one
// references exactly its own substitution slots. An empty t.Input selects
// DefaultInputTemplate.
func ParseTemplateSet(t TemplateText) (*TemplateSet, error) {
	if t.Input == "" {
		t.Input = DefaultInputTemplate
	}
	s := &TemplateSet{preamble: t.Preamble}
	var err error
	for _, p := range []struct {
		name string
		text string
		dst  **template.Template
	}{
		{inputTemplate, t.Input, &s.input},
		{computeTemplate, t.Compute, &s.compute},
		{innerTemplate, t.Inner, &s.inner},
		{outerTemplate, t.Outer, &s.outer},
	} {
		if *p.dst, err = parseTemplate(p.name, p.text); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func parseTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, &TemplateError{Template: name, Err: err}
	}
	used := map[string]bool{}
	if tmpl.Tree != nil {
		collectFields(tmpl.Tree.Root, used)
	}
	want := slots[name]
	for _, field := range want {
		if !used[field] {
			return nil, &TemplateError{Template: name, Field: field, Err: fmt.Errorf("missing substitution slot")}
		}
	}
	for field := range used {
		if !slices.Contains(want, field) {
			return nil, &TemplateError{
				Template: name,
				Field:    field,
				Err:      fmt.Errorf("unknown field (have %s)", strings.Join(want, ", ")),
			}
		}
	}
	return tmpl, nil
}

// collectFields records the first identifier of every field reference
// below n.
func collectFields(n parse.Node, used map[string]bool) {
	switch n := n.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, c := range n.Nodes {
			collectFields(c, used)
		}
	case *parse.ActionNode:
		collectFields(n.Pipe, used)
	case *parse.PipeNode:
		if n == nil {
			return
		}
		for _, c := range n.Cmds {
			collectFields(c, used)
		}
	case *parse.CommandNode:
		for _, a := range n.Args {
			collectFields(a, used)
		}
	case *parse.FieldNode:
		used[n.Ident[0]] = true
	case *parse.ChainNode:
		collectFields(n.Node, used)
	case *parse.IfNode:
		collectBranch(&n.BranchNode, used)
	case *parse.RangeNode:
		collectBranch(&n.BranchNode, used)
	case *parse.WithNode:
		collectBranch(&n.BranchNode, used)
	case *parse.TemplateNode:
		collectFields(n.Pipe, used)
	}
}

func collectBranch(b *parse.BranchNode, used map[string]bool) {
	collectFields(b.Pipe, used)
	collectFields(b.List, used)
	collectFields(b.ElseList, used)
}

func render(tmpl *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", &TemplateError{Template: tmpl.Name(), Err: err}
	}
	return b.String(), nil
}
