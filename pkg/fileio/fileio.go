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

package fileio

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrNotFound is returned by ReadFile when the path does not exist
var ErrNotFound = errors.Base("file not found")

// 💾 FileManager handles whole-file reads and writes
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFileAtomic replaces path with content without ever leaving it partially written
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
}

// 🔧 Manager implements FileManager on the local filesystem
type Manager struct {
	baseDir string // relative paths are resolved against this
}

var _ FileManager = (*Manager)(nil)

// 🏭 New creates a manager rooted at baseDir. An empty baseDir means the working directory.
func New(baseDir string) *Manager {
	if baseDir != "" {
		baseDir = filepath.Clean(baseDir)
	}
	return &Manager{baseDir: baseDir}
}

// 🔒 getAbsPath returns the path resolved against the base directory
func (m *Manager) getAbsPath(path string) string {
	if m.baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.baseDir, path)
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	absPath := m.getAbsPath(path)
	zerolog.Ctx(ctx).Debug().Str("path", absPath).Msg("reading file")

	content, err := os.ReadFile(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Errorf("%w: %s", ErrNotFound, absPath)
		}
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFileAtomic writes content to a temp file next to path, then renames it
// over path. Symlinks are followed, so the file they point at is replaced and
// the link stays in place. The existing file's permission bits are kept and new
// files get 0644. Ownership is not: the replaced file belongs to the user
// running the write.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath, err := resolveTarget(m.getAbsPath(path))
	if err != nil {
		return err
	}
	logger := zerolog.Ctx(ctx)

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(absPath); err == nil {
		mode = info.Mode().Perm()
	} else if !os.IsNotExist(err) {
		return errors.Errorf("checking file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()
	logger.Debug().Str("path", absPath).Str("temp", tempPath).Msg("writing temp file")

	cleanup := func() {
		tmp.Close()
		os.Remove(tempPath)
	}

	if _, err := tmp.Write(content); err != nil {
		cleanup()
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return errors.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		cleanup()
		return errors.Errorf("setting temp file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := ctx.Err(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("write cancelled: %w", err)
	}

	// Rename temp file to target (atomic on the same filesystem)
	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	logger.Debug().Str("path", absPath).Int("bytes", len(content)).Msg("replaced file")
	return nil
}

// resolveTarget follows symlinks to the real file. A path that does not exist
// yet is returned unchanged.
func resolveTarget(absPath string) (string, error) {
	resolved, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		return resolved, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return absPath, nil
	}
	return "", errors.Errorf("resolving %s: %w", absPath, err)
}
