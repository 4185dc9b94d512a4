// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package process

import (
	"bytes"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"
)

// FS is the storage a [Processor] reads and writes files through.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	// WriteFile replaces the contents of an existing file, keeping its mode.
	WriteFile(name string, data []byte) error
}

// OSFS is the [FS] of the host operating system. Writes go to a temporary
// file that is renamed over the original, so an interrupted run never
// leaves a file half written.
type OSFS struct{}

func (OSFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

func (OSFS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// WriteFile copies the mode of name, special bits included, to the
// replacement.
func (OSFS) WriteFile(name string, data []byte) error {
	return atomic.WriteFile(name, bytes.NewReader(data))
}
