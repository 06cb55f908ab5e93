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

// Package txxt provides a parser for the TXXT plain-text document format:
// indentation-structured sections, lists, definitions, inline emphasis,
// references, and indentation-walled verbatim blocks.
//
// The pipeline runs forward through five stages, each consuming the
// previous stage's output and producing the next: [RunVerbatimScan] finds
// verbatim block boundaries before anything else can tokenize them,
// [RunScanner] turns source text into a flat token stream with synthetic
// indentation tokens, [RunSemantic] groups tokens into line-level
// constructs, [RunBlocks] builds the block tree with precedence dispatch
// (applying [ParseInlineText] to each block's leaf text as it goes), and
// [RunAssembler] wraps the result into a [Document] and attaches
// annotations. [RunAll] chains all five.
package txxt

// Version is the parser version string recorded in [AssemblyInfo].
const Version = "0.1.0"
