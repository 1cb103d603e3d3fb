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
Package status owns file I/O and per-file outcomes for replacerc.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Report  |
	| (in place)|           | (totals)|
	+-----------+           +---------+

🎯 Purpose:
- Reads candidate files and rewrites them in place
- Records what happened to every candidate
- Turns failed candidates into one aggregate error

⚡ Rules:
- Writes only ever target a file that already exists. Nothing is created,
  renamed or deleted, and permissions are left alone.
- A file that vanished between read and write is a failed write, never a
  new file.

🤝 Interfaces:
- FileManager: read and write by path. DiskManager is the OS implementation,
  tests swap in mocks to simulate failures.
*/
package status
