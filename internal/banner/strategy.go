// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package banner

import (
	"fmt"
	"regexp"
	"strings"
)

// Decision is where a banner may be placed: a line index, or unsafe.
// The zero Decision is unsafe.
type Decision struct {
	index int
	safe  bool
}

// At returns a Decision to place the banner at line i.
func At(i int) Decision { return Decision{index: i, safe: true} }

// Unsafe means the file must not be modified.
var Unsafe Decision

// Index returns the line index. It reports false for an unsafe Decision.
func (d Decision) Index() (int, bool) { return d.index, d.safe }

func (d Decision) String() string {
	if !d.safe {
		return "unsafe"
	}
	return fmt.Sprintf("line %d", d.index)
}

// Strategy places banners in files of one type.
type Strategy struct {
	Entry
}

// Resolve returns the strategy for the file at path. It reports false when
// the file type is unsupported or blocklisted.
func Resolve(r *Registry, path string) (Strategy, bool) {
	e, ok := r.Lookup(NewIdentity(path))
	if !ok || !e.Style.Valid() {
		return Strategy{}, false
	}
	return Strategy{Entry: e}, true
}

// Locate finds where the banner belongs in lines, which carry no line
// terminators.
func (s Strategy) Locate(lines []string) Decision {
	if s.Kind < 0 || s.Kind >= numKinds {
		return Unsafe
	}
	return locators[s.Kind](lines, s.Entry)
}

var locators = [numKinds]func([]string, Entry) Decision{
	Plain:       locatePlain,
	Shebang:     locateShebang,
	Encoding:    locateEncoding,
	Declaration: locateDeclaration,
	Frontmatter: locateFrontmatter,
	Directive:   locateDirective,
	OpenTag:     locateOpenTag,
}

func locatePlain([]string, Entry) Decision { return At(0) }

func locateShebang(lines []string, _ Entry) Decision { return At(skipShebang(lines)) }

func skipShebang(lines []string) int {
	if len(lines) > 0 && strings.HasPrefix(lines[0], "#!") {
		return 1
	}
	return 0
}

// cookieLines is how many leading lines may hold an encoding cookie.
const cookieLines = 2

var cookie = regexp.MustCompile(`^[ \t\f]*#.*?coding[:=][ \t]*[-\w.]+`)

func locateEncoding(lines []string, _ Entry) Decision {
	i := skipShebang(lines)
	for j := i; j < min(len(lines), cookieLines); j++ {
		if cookie.MatchString(lines[j]) {
			return At(j + 1)
		}
	}
	return At(i)
}

// declarationLines bounds the search for the ">" that closes a declaration.
const declarationLines = 20

func isDeclaration(line string) bool {
	line = strings.ToLower(strings.TrimSpace(line))
	return strings.HasPrefix(line, "<?xml") ||
		strings.HasPrefix(line, "<!doctype") ||
		strings.HasPrefix(line, "<%@")
}

func locateDeclaration(lines []string, _ Entry) Decision {
	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i == len(lines) || !isDeclaration(lines[i]) {
		return At(0)
	}
	for i < len(lines) && isDeclaration(lines[i]) {
		end, ok := findClosing(lines, i, ">", declarationLines)
		if !ok {
			return Unsafe
		}
		i = end
	}
	return At(i)
}

// findClosing returns the index after the first line at or after start that
// contains term, looking at no more than limit lines.
func findClosing(lines []string, start int, term string, limit int) (int, bool) {
	for j := start; j < min(len(lines), start+limit); j++ {
		if strings.Contains(lines[j], term) {
			return j + 1, true
		}
	}
	return 0, false
}

func locateFrontmatter(lines []string, _ Entry) Decision {
	if len(lines) == 0 {
		return At(0)
	}
	delim := strings.TrimSpace(lines[0])
	if delim != "---" && delim != "+++" {
		return At(0)
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delim {
			return At(i + 1)
		}
	}
	return Unsafe
}

// DirectiveRule matches one kind of directive line.
type DirectiveRule struct {
	// Prefix starts the directive, compared case-insensitively with the
	// trimmed line.
	Prefix string `yaml:"prefix"`
	// Keys, if set, require the rest of the line to be "key=value" with
	// one of these keys, compared case-insensitively.
	Keys []string `yaml:"keys"`
	// Terminator, if set, ends the directive. It may be on a later line,
	// at most directiveLines away.
	Terminator string `yaml:"terminator"`
}

// directiveLines bounds the search for a directive terminator.
const directiveLines = 5

var (
	dockerDirectives  = []DirectiveRule{{Prefix: "#", Keys: []string{"syntax", "escape", "check"}}}
	charsetDirectives = []DirectiveRule{{Prefix: "@charset", Terminator: ";"}}
	razorDirectives   = []DirectiveRule{{Prefix: "@page"}}
	// Batch scripts keep "@echo off" first, or the banner gets echoed.
	batchDirectives = []DirectiveRule{{Prefix: "@echo off"}}
)

func (d DirectiveRule) matches(line string) bool {
	line = strings.TrimSpace(line)
	if len(line) < len(d.Prefix) || !strings.EqualFold(line[:len(d.Prefix)], d.Prefix) {
		return false
	}
	if len(d.Keys) == 0 {
		return true
	}
	key, _, ok := strings.Cut(line[len(d.Prefix):], "=")
	if !ok {
		return false
	}
	key = strings.TrimSpace(key)
	for _, k := range d.Keys {
		if strings.EqualFold(key, k) {
			return true
		}
	}
	return false
}

func (d DirectiveRule) end(lines []string, start int) (int, bool) {
	if d.Terminator == "" {
		return start + 1, true
	}
	return findClosing(lines, start, d.Terminator, directiveLines)
}

func locateDirective(lines []string, e Entry) Decision {
	i := skipShebang(lines)
outer:
	for i < len(lines) {
		for _, d := range e.Directives {
			if !d.matches(lines[i]) {
				continue
			}
			end, ok := d.end(lines, i)
			if !ok {
				return Unsafe
			}
			i = end
			continue outer
		}
		break
	}
	return At(i)
}

// locateOpenTag places the banner right after a leading "<?" open tag.
// Files without one are markup only, where a code comment would be
// rendered as text.
func locateOpenTag(lines []string, _ Entry) Decision {
	i := skipShebang(lines)
	if i >= len(lines) {
		return Unsafe
	}
	line := strings.TrimSpace(lines[i])
	switch {
	case !strings.HasPrefix(line, "<?"):
		return Unsafe
	case strings.HasPrefix(strings.ToLower(line), "<?xml"):
		return Unsafe
	case strings.Contains(line, "?>"):
		return Unsafe
	}
	return At(i + 1)
}
