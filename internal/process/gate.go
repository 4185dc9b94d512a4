// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package process

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"unicode/utf8"
)

// DefaultMaxSize is the largest file, in bytes, processed by default.
const DefaultMaxSize = 1 << 20

var boms = [][]byte{
	{0xEF, 0xBB, 0xBF},       // UTF-8
	{0x00, 0x00, 0xFE, 0xFF}, // UTF-32BE
	{0xFF, 0xFE},             // UTF-16LE, UTF-32LE
	{0xFE, 0xFF},             // UTF-16BE
}

func hasBOM(b []byte) bool {
	for _, bom := range boms {
		if bytes.HasPrefix(b, bom) {
			return true
		}
	}
	return false
}

// decodable reports whether b is UTF-8 text. NUL bytes are valid UTF-8 but
// only show up in binary files.
func decodable(b []byte) bool {
	return utf8.Valid(b) && bytes.IndexByte(b, 0) < 0
}

// gated is a file that passed the gate.
type gated struct {
	content []byte
}

// gate runs the pre-flight checks in order and stops at the first failure.
// It never reads a file that is blocklisted, excluded or too large.
func (p *Processor) gate(path string) (gated, Outcome, bool) {
	display := p.display(path)
	if p.registry().Blocklisted(filepath.Base(path)) {
		return gated{}, skipped(display, Blocklisted), false
	}
	if p.Exclude != nil && p.Exclude(display) {
		return gated{}, skipped(display, Excluded), false
	}

	fi, err := p.fs().Stat(path)
	if err != nil {
		return gated{}, errored(display, err), false
	}
	if !fi.Mode().IsRegular() {
		return gated{}, errored(display, &fs.PathError{Op: "read", Path: path, Err: errNotRegular}), false
	}
	if fi.Size() > p.maxSize() {
		return gated{}, skipped(display, TooLarge), false
	}

	content, err := p.fs().ReadFile(path)
	if err != nil {
		return gated{}, errored(display, err), false
	}
	// The file may have grown since Stat.
	if int64(len(content)) > p.maxSize() {
		return gated{}, skipped(display, TooLarge), false
	}
	if hasBOM(content) {
		return gated{}, skipped(display, HasBOM), false
	}
	if !decodable(content) {
		return gated{}, skipped(display, NotDecodable), false
	}
	return gated{content: content}, Outcome{}, true
}
