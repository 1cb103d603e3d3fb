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

package status

import (
	"context"
	"os"

	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents what happened to a candidate file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusUnchanged            // Candidate had nothing to replace
	StatusUpdated              // Candidate was rewritten in place
	StatusFailed               // Candidate could not be read or written
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusUpdated:
		return "updated"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 💾 FileManager handles all file system operations
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFile replaces the content of an existing file
	WriteFile(ctx context.Context, path string, content []byte) error
}

// 🔧 DiskManager implements FileManager on the local file system
type DiskManager struct{}

// 🏭 NewDiskManager creates a new disk backed file manager
func NewDiskManager() *DiskManager {
	return &DiskManager{}
}

func (m *DiskManager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

func (m *DiskManager) WriteFile(ctx context.Context, path string, content []byte) error {
	// no O_CREATE: a file removed mid-run must fail, not come back
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return errors.Errorf("opening file for writing: %w", err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		return errors.Errorf("writing file: %w", err)
	}

	if err := f.Close(); err != nil {
		return errors.Errorf("closing file: %w", err)
	}

	return nil
}
