// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package banner

import (
	"path/filepath"
	"strings"
)

// marker follows the comment prefix in every banner. It distinguishes
// banners from ordinary comments.
const marker = "File:"

// Style describes how a comment is written in some file type.
type Style struct {
	// Prefix opens the comment, like "#" or "<!--".
	Prefix string `yaml:"prefix"`
	// Suffix closes block comments, like "*/". Empty for line comments.
	Suffix string `yaml:"suffix"`
}

// Valid reports whether the style can produce banners. A style without a
// prefix would make every line look like a banner.
func (s Style) Valid() bool { return strings.TrimSpace(s.Prefix) != "" }

// Render returns the banner line for path, without a line terminator.
func (s Style) Render(path string) string {
	line := s.Prefix + " " + marker + " " + path
	if s.Suffix != "" {
		line += " " + s.Suffix
	}
	return line
}

// IsBanner reports whether line looks like a banner written in this style,
// for any path. Interpreter directives are never banners.
func (s Style) IsBanner(line string) bool {
	if !s.Valid() {
		return false
	}
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "#!") {
		return false
	}
	rest, ok := strings.CutPrefix(line, strings.TrimSpace(s.Prefix))
	if !ok {
		return false
	}
	rest, ok = strings.CutPrefix(strings.TrimLeft(rest, " \t"), marker)
	if !ok {
		return false
	}
	if suffix := strings.TrimSpace(s.Suffix); suffix != "" {
		return strings.HasSuffix(rest, suffix)
	}
	return true
}

// Is reports whether line is exactly the banner for path.
func (s Style) Is(line, path string) bool {
	return s.Valid() && strings.TrimSpace(line) == s.Render(path)
}

// DisplayPath returns the spelling of path used inside banners: cleaned,
// slash-separated, without a leading "./".
func DisplayPath(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}
