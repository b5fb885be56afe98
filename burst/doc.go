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

// Package burst generates burst backprojection OpenCL kernels: one fully
// specialized kernel per number of projections processed by a single
// kernel invocation.
//
// A kernel family is described by three text files living in one
// directory:
//
//	<name>.in       compute template, a line holding only %nl, kernel body
//	common.in       kernel skeleton shared by all families
//	definitions.in  preamble emitted once before all kernels
//
// All templates use text/template syntax with named fields:
//
//	input    {{.Index}}
//	compute  {{.Index}} {{.Access}} {{.Op}} {{.Row}}
//	body     {{.Terms}}
//	skeleton {{.Burst}} {{.Inputs}} {{.LUTs}} {{.Body}}
//
// A compute term such as
//
//	result {{.Op}}= sample (projection_{{.Index}}, sines_{{.Row}}{{.Access}});
//
// expands for projection 17 of a vectorized burst of 20 into
//
//	result += sample (projection_17, sines_1.s1);
//
// where sines_1 is declared as a float4 because the remainder chunk holds
// four projections. With the constant encoding the same term reads
// sines_0[17].
package burst
