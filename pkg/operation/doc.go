// Copyright 2025 walteh LLC
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

/*
Package operation implements the bulk rewrite at the heart of replacerc.

	+-------------+
	|    walk     |
	| (Candidates)|
	+------+------+
	       |
	+------+------+
	|  Operation  |
	| (Transform) |
	+------+------+
	       |
	+------+------+
	|   status    |
	| (in place)  |
	+-------------+

🔄 Flow:
1. Check the root exists, otherwise stop before touching anything
2. Pull candidate paths lazily from walk.Candidates
3. Read each file, apply the literal replacements
4. Write back only when the content changed, then notify
5. Aggregate failures into the returned report

⚡ Rules:
- Files are handled one at a time, in walk order
- Options.Logger wins over the logger carried by ctx
- A file that fails to read or write is recorded and skipped
- Unchanged files are never written, so their mtime stays put
- With replacements whose new text never contains the old text, a second
  run finds nothing to do

🔍 Example:

	ctx = log.NewContext(ctx, log.New(os.Stdout, os.Stderr, zlog))
	op, err := operation.New(operation.Options{Config: cfg})
	if err != nil {
		return err
	}
	report, err := op.Run(ctx)
*/
package operation
