// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/pathbanner/internal/banner"
	"go.astrophena.name/pathbanner/internal/process"
	"go.astrophena.name/pathbanner/testutil"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, t.TempDir(), DefaultFile, `
max_size: 4096
blocklist:
  - generated.go
exclude:
  - "vendor/**"
  - "**/*.pb.go"
styles:
  .tpl:
    prefix: "{{/*"
    suffix: "*/}}"
  Caddyfile:
    prefix: "#"
  .j2:
    prefix: "{#"
    suffix: "#}"
    kind: directive
    directives:
      - prefix: "{%"
        keys: [extends]
        terminator: "%}"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	testutil.AssertEqual(t, cfg.MaxSize, int64(4096))
	testutil.AssertEqual(t, cfg.Blocklist, []string{"generated.go"})
	testutil.AssertEqual(t, cfg.Exclude, []string{"vendor/**", "**/*.pb.go"})
	testutil.AssertEqual(t, cfg.Styles["Caddyfile"], Style{Prefix: "#"})
	testutil.AssertEqual(t, cfg.Styles[".j2"].Kind, banner.Directive)
	testutil.AssertEqual(t, cfg.Styles[".j2"].Directives, []banner.DirectiveRule{
		{Prefix: "{%", Keys: []string{"extends"}, Terminator: "%}"},
	})
}

func TestLoadEmpty(t *testing.T) {
	t.Parallel()

	cfg, err := Load(testutil.WriteFile(t, t.TempDir(), DefaultFile, ""))
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, cfg, Default())
	testutil.AssertEqual(t, cfg.MaxSize, int64(process.DefaultMaxSize))
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want fs.ErrNotExist, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		content string
		wantErr string
	}{
		"malformed":         {"max_size: [", "failed to parse config file"},
		"unknown field":     {"max_sise: 10\n", "failed to parse config file"},
		"unknown kind":      {"styles:\n  .x:\n    prefix: '#'\n    kind: sideways\n", "failed to parse config file"},
		"negative max size": {"max_size: -1\n", "max_size must be positive"},
		"blocklist path":    {"blocklist: [a/go.sum]\n", "is not a basename"},
		"bad pattern":       {"exclude: ['vendor/[']\n", "invalid pattern"},
		"missing prefix":    {"styles:\n  .x:\n    suffix: '*/'\n", "prefix is required"},
		"directive kind":    {"styles:\n  .x:\n    prefix: '#'\n    kind: directive\n", "needs at least one directive"},
		"directive prefix":  {"styles:\n  .x:\n    prefix: '#'\n    directives: [{keys: [a]}]\n", "directive prefix is required"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(testutil.WriteFile(t, t.TempDir(), DefaultFile, tc.content))
			if err == nil {
				t.Fatal("want error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("want error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	if Default().Registry() != banner.Default() {
		t.Fatal("an empty configuration must use the built-in registry")
	}

	cfg := &Config{
		MaxSize:   process.DefaultMaxSize,
		Blocklist: []string{"generated.go"},
		Styles: map[string]Style{
			".go":  {Prefix: "#"},
			".tpl": {Prefix: "{{/*", Suffix: "*/}}"},
		},
	}
	r := cfg.Registry()

	s, ok := banner.Resolve(r, "main.go")
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, s.Style.Prefix, "#")

	s, ok = banner.Resolve(r, "page.tpl")
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, s.Style.Render("page.tpl"), "{{/* File: page.tpl */}}")

	_, ok = banner.Resolve(r, "pkg/generated.go")
	testutil.AssertEqual(t, ok, false)

	// The built-in registry is left alone.
	s, _ = banner.Resolve(banner.Default(), "main.go")
	testutil.AssertEqual(t, s.Style.Prefix, "//")
}

func TestExcluded(t *testing.T) {
	t.Parallel()

	cfg := &Config{Exclude: []string{"vendor/**", "**/*.pb.go", "docs/*.md"}}

	cases := map[string]bool{
		"vendor/a/b.go":        true,
		"api/v1/service.pb.go": true,
		"service.pb.go":        true,
		"docs/index.md":        true,
		"docs/sub/index.md":    false,
		"main.go":              false,
		"myvendor/a.go":        false,
	}
	for path, want := range cases {
		t.Run(path, func(t *testing.T) {
			testutil.AssertEqual(t, cfg.Excluded(path), want)
		})
	}
}
