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

// Package kernels ships the laminographic burst backprojection templates
// so the generator works without a source checkout.
package kernels

import "embed"

// Templates holds lamino/common.in, lamino/definitions.in and one template
// file per kernel family (lamino/z.in, lamino/center.in).
//
//go:embed lamino/*.in
var Templates embed.FS

// Families lists the kernel template files in Templates.
var Families = []string{
	"lamino/center.in",
	"lamino/z.in",
}
