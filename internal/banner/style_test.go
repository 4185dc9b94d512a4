// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package banner

import (
	"testing"

	"go.astrophena.name/pathbanner/testutil"
)

func TestRender(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		style Style
		path  string
		want  string
	}{
		"line comment":  {hash, "scripts/deploy.sh", "# File: scripts/deploy.sh"},
		"slashes":       {slashes, "main.go", "// File: main.go"},
		"block comment": {block, "web/style.css", "/* File: web/style.css */"},
		"markup":        {markup, "index.html", "<!-- File: index.html -->"},
		"razor":         {razor, "Pages/Index.cshtml", "@* File: Pages/Index.cshtml *@"},
		"batch":         {rem, "run.bat", "REM File: run.bat"},
		"mdx":           {mdx, "docs/a.mdx", "{/* File: docs/a.mdx */}"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.style.Render(tc.path), tc.want)
		})
	}
}

func TestIsBanner(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		style Style
		line  string
		want  bool
	}{
		"exact":                {hash, "# File: a.py", true},
		"other path":           {hash, "# File: somewhere/else.py", true},
		"no space":             {hash, "#File: a.py", true},
		"indented":             {hash, "   # File: a.py", true},
		"trailing whitespace":  {hash, "# File: a.py  ", true},
		"ordinary comment":     {hash, "# This file does things", false},
		"lowercase marker":     {hash, "# file: a.py", false},
		"double prefix":        {hash, "## File: a.py", false},
		"shebang":              {hash, "#!/bin/sh File: a.sh", false},
		"code":                 {hash, "print('File: a.py')", false},
		"empty":                {hash, "", false},
		"block":                {block, "/* File: a.css */", true},
		"block without suffix": {block, "/* File: a.css", false},
		"markup":               {markup, "<!-- File: index.html -->", true},
		"wrong style":          {slashes, "# File: a.py", false},
		"mdx":                  {mdx, "{/* File: a.mdx */}", true},
		"mdx heading":          {mdx, "# File: a.mdx", false},
		"mdx markup":           {mdx, "<!-- File: a.mdx -->", false},
		"invalid style":        {Style{}, "File: a.py", false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.style.IsBanner(tc.line), tc.want)
		})
	}
}

func TestIs(t *testing.T) {
	t.Parallel()

	testutil.AssertEqual(t, hash.Is("# File: a.py", "a.py"), true)
	testutil.AssertEqual(t, hash.Is("# File: a.py\r", "a.py"), true)
	testutil.AssertEqual(t, hash.Is("# File: old.py", "a.py"), false)
	testutil.AssertEqual(t, markup.Is("<!-- File: a.html -->", "a.html"), true)
	testutil.AssertEqual(t, markup.Is("<!-- File: a.html", "a.html"), false)
	testutil.AssertEqual(t, Style{}.Is(" File: a", "a"), false)
}

func TestValid(t *testing.T) {
	t.Parallel()

	testutil.AssertEqual(t, hash.Valid(), true)
	testutil.AssertEqual(t, Style{}.Valid(), false)
	testutil.AssertEqual(t, Style{Prefix: "  "}.Valid(), false)
	testutil.AssertEqual(t, Style{Suffix: "*/"}.Valid(), false)
}

func TestDisplayPath(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in, want string
	}{
		"plain":       {"a/b.go", "a/b.go"},
		"dot slash":   {"./a/b.go", "a/b.go"},
		"double dots": {"a/../b.go", "b.go"},
		"repeated":    {"a//b.go", "a/b.go"},
		"bare":        {"b.go", "b.go"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, DisplayPath(tc.in), tc.want)
		})
	}
}
