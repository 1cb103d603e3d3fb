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
Package config holds the fixed run constants for replacerc.

	+-------------------+
	|  defaults.yaml    |
	|   (go:embed)      |
	+---------+---------+
	          |
	+---------+---------+
	|      Config       |
	| root / suffixes / |
	|   replacements    |
	+-------------------+

🎯 Purpose:
- Defines the root directory, the recognized file suffixes and the literal
  replacement pairs for a run
- Validates them before any file is touched

🔄 Flow:
1. The embedded YAML document is decoded in strict mode
2. Validate cleans paths and checks every invariant
3. The resulting *Config is handed to the operation package

📝 Notes:
The constants are compiled into the binary. There are no flags, environment
variables or config files that change them. Parse exists so tests can build
their own Config against temporary directories.

🔍 Example:

	cfg, err := config.Default()
	if err != nil {
		return err
	}
	op, err := operation.New(operation.Options{Config: cfg})
*/
package config
