// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package banner

import "fmt"

// Kind selects which leading constructs a banner must be placed after.
type Kind int

const (
	// Plain files take the banner on the first line.
	Plain Kind = iota
	// Shebang files keep a "#!" interpreter line first.
	Shebang
	// Encoding files keep a shebang and a PEP 263 encoding cookie first.
	Encoding
	// Declaration files keep XML prologs, DOCTYPEs and <%@ %> directives first.
	Declaration
	// Frontmatter files keep a ---/+++ delimited block first.
	Frontmatter
	// Directive files keep a run of configured directive lines first.
	Directive
	// OpenTag files need the banner inside a leading <? open tag.
	OpenTag

	numKinds
)

var kindNames = [numKinds]string{
	Plain:       "plain",
	Shebang:     "shebang",
	Encoding:    "encoding",
	Declaration: "declaration",
	Frontmatter: "frontmatter",
	Directive:   "directive",
	OpenTag:     "open-tag",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
