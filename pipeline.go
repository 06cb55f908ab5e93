// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package txxt

// RunAll drives the full pipeline over text end to end: verbatim
// pre-scan, tokenization, semantic promotion, block construction (which
// applies inline parsing as it builds Paragraph/SessionTitle/Definition/
// Annotation content), and assembly. It is a convenience wrapper; each
// stage remains independently callable (spec.md §3.1's six-stage
// pipeline).
func RunAll(text string, sourcePath string) *Document {
	boundaries, verbatimErrs := RunVerbatimScan(text)
	scan := RunScanner(text, boundaries)
	sem := RunSemantic(scan.Tokens)
	blocks := RunBlocks(sem.Tokens)
	doc := RunAssembler(blocks, sourcePath)

	doc.AssemblyInfo.Errors = append(doc.AssemblyInfo.Errors, verbatimErrs...)
	doc.AssemblyInfo.Warnings = append(doc.AssemblyInfo.Warnings, scan.Warnings...)
	doc.AssemblyInfo.Warnings = append(doc.AssemblyInfo.Warnings, sem.Warnings...)
	// RunAssembler's signature takes only the finished block tree, so the
	// raw token count is stamped on here rather than threaded through it.
	doc.AssemblyInfo.Stats.TokenCount = len(scan.Tokens)

	return doc
}
