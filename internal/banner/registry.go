// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package banner

import (
	"maps"
	"path/filepath"
	"strings"
)

// Entry is what the registry knows about one file type.
type Entry struct {
	Style      Style
	Kind       Kind
	Directives []DirectiveRule
}

// Identity identifies a file for registry lookups.
type Identity struct {
	// Path is the path as given.
	Path string
	// Base is the exact final path element.
	Base string
	// Ext is the lowercased extension of Base, with the dot.
	Ext string
}

// NewIdentity returns the Identity of path.
func NewIdentity(path string) Identity {
	base := filepath.Base(path)
	return Identity{
		Path: path,
		Base: base,
		Ext:  strings.ToLower(filepath.Ext(base)),
	}
}

// Registry maps file identities to entries. A Registry is never mutated
// after construction and is safe for concurrent use.
type Registry struct {
	blocklist map[string]bool
	names     map[string]Entry
	exts      map[string]Entry
}

type verdict int

const (
	next verdict = iota
	found
	rejected
)

// rule is one link of the lookup precedence chain.
type rule func(r *Registry, id Identity) (Entry, verdict)

// chain is evaluated first to last; the first rule that finds or rejects
// decides.
var chain = []rule{
	(*Registry).byBlocklist,
	(*Registry).byName,
	(*Registry).byPattern,
	(*Registry).byExt,
}

// Lookup returns the entry for id. It reports false for blocklisted and
// unregistered files.
func (r *Registry) Lookup(id Identity) (Entry, bool) {
	for _, rule := range chain {
		switch e, v := rule(r, id); v {
		case found:
			return e, true
		case rejected:
			return Entry{}, false
		}
	}
	return Entry{}, false
}

// Blocklisted reports whether base is on the blocklist.
func (r *Registry) Blocklisted(base string) bool { return r.blocklist[base] }

func (r *Registry) byBlocklist(id Identity) (Entry, verdict) {
	if r.blocklist[id.Base] {
		return Entry{}, rejected
	}
	return Entry{}, next
}

func (r *Registry) byName(id Identity) (Entry, verdict) {
	if e, ok := r.names[id.Base]; ok {
		return e, found
	}
	return Entry{}, next
}

// byPattern matches the Dockerfile family: Dockerfile, Dockerfile.dev,
// Containerfile and so on, in any case.
func (r *Registry) byPattern(id Identity) (Entry, verdict) {
	name := strings.ToLower(id.Base)
	for _, stem := range []string{"dockerfile", "containerfile"} {
		if name == stem || strings.HasPrefix(name, stem+".") {
			return r.exts[".dockerfile"], found
		}
	}
	return Entry{}, next
}

func (r *Registry) byExt(id Identity) (Entry, verdict) {
	if id.Ext == "" {
		return Entry{}, next
	}
	if e, ok := r.exts[id.Ext]; ok {
		return e, found
	}
	return Entry{}, next
}

// Overrides extend a registry. Keys of Entries that start with a dot are
// extensions, other keys are exact basenames.
type Overrides struct {
	Entries   map[string]Entry
	Blocklist []string
}

// With returns a copy of r extended by o. r itself is left unchanged.
func (r *Registry) With(o Overrides) *Registry {
	nr := &Registry{
		blocklist: maps.Clone(r.blocklist),
		names:     maps.Clone(r.names),
		exts:      maps.Clone(r.exts),
	}
	for _, name := range o.Blocklist {
		nr.blocklist[name] = true
	}
	for key, e := range o.Entries {
		if strings.HasPrefix(key, ".") {
			nr.exts[strings.ToLower(key)] = e
		} else {
			nr.names[key] = e
		}
	}
	return nr
}

var (
	hash    = Style{Prefix: "#"}
	slashes = Style{Prefix: "//"}
	dashes  = Style{Prefix: "--"}
	semi    = Style{Prefix: ";"}
	semis   = Style{Prefix: ";;"}
	percent = Style{Prefix: "%"}
	quote   = Style{Prefix: `"`}
	rem     = Style{Prefix: "REM"}
	block   = Style{Prefix: "/*", Suffix: "*/"}
	markup  = Style{Prefix: "<!--", Suffix: "-->"}
	mdx     = Style{Prefix: "{/*", Suffix: "*/}"}
	jsp     = Style{Prefix: "<%--", Suffix: "--%>"}
	razor   = Style{Prefix: "@*", Suffix: "*@"}
	haskell = Style{Prefix: "{-", Suffix: "-}"}
	ocaml   = Style{Prefix: "(*", Suffix: "*)"}
)

// DefaultBlocklist lists dependency lock manifests. They are generated
// files and never get a banner, whatever their extension.
var DefaultBlocklist = []string{
	"Cargo.lock",
	"Gemfile.lock",
	"Pipfile.lock",
	"Podfile.lock",
	"bun.lockb",
	"composer.lock",
	"deno.lock",
	"flake.lock",
	"go.sum",
	"mix.lock",
	"npm-shrinkwrap.json",
	"package-lock.json",
	"packages.lock.json",
	"pnpm-lock.yaml",
	"poetry.lock",
	"pubspec.lock",
	"uv.lock",
	"yarn.lock",
}

// Default returns the built-in registry.
func Default() *Registry { return defaultRegistry }

var defaultRegistry = newDefault()

func newDefault() *Registry {
	r := &Registry{
		blocklist: make(map[string]bool),
		names:     make(map[string]Entry),
		exts:      make(map[string]Entry),
	}
	for _, name := range DefaultBlocklist {
		r.blocklist[name] = true
	}

	add := func(m map[string]Entry, e Entry, keys ...string) {
		for _, k := range keys {
			m[k] = e
		}
	}

	// Exact basenames.
	add(r.names, Entry{Style: hash, Kind: Shebang},
		".bashrc", ".bash_profile", ".bash_aliases", ".profile", ".zshrc", ".zprofile", ".zshenv",
		"Gemfile", "Rakefile", "Vagrantfile", "Brewfile", "Podfile", "Guardfile", "Fastfile")
	add(r.names, Entry{Style: hash, Kind: Plain},
		".gitignore", ".gitattributes", ".dockerignore", ".editorconfig", ".env",
		"Makefile", "GNUmakefile", "makefile", "CMakeLists.txt", "Procfile", "CODEOWNERS", "BUILD", "WORKSPACE")
	add(r.names, Entry{Style: slashes, Kind: Shebang}, "Jenkinsfile")

	// Extensions.
	add(r.exts, Entry{Style: hash, Kind: Encoding}, ".py", ".pyi", ".pyw", ".pyx")
	add(r.exts, Entry{Style: hash, Kind: Shebang},
		".sh", ".bash", ".zsh", ".ksh", ".fish", ".rb", ".pl", ".pm", ".r", ".ps1", ".psm1",
		".tcl", ".awk", ".jl", ".cr", ".ex", ".exs", ".nim", ".mojo", ".coffee", ".raku")
	add(r.exts, Entry{Style: hash, Kind: Plain},
		".yaml", ".yml", ".toml", ".tf", ".tfvars", ".hcl", ".conf", ".properties", ".cfg",
		".env", ".mk", ".cmake", ".nix", ".bzl", ".star", ".graphql", ".gql")
	// Most of these languages accept a "#!" first line, directly or
	// through a script runner.
	add(r.exts, Entry{Style: slashes, Kind: Shebang},
		".js", ".mjs", ".cjs", ".ts", ".mts", ".cts", ".jsx", ".tsx", ".groovy", ".gradle", ".kts",
		".go", ".c", ".h", ".cc", ".cpp", ".cxx", ".hh", ".hpp", ".hxx", ".m", ".mm",
		".cs", ".java", ".kt", ".rs", ".swift", ".scala", ".dart", ".zig", ".v", ".odin",
		".gleam", ".sol", ".fs", ".fsx", ".hx")
	add(r.exts, Entry{Style: slashes, Kind: Plain}, ".proto", ".jsonc", ".json5")
	add(r.exts, Entry{Style: dashes, Kind: Shebang}, ".lua")
	add(r.exts, Entry{Style: dashes, Kind: Plain}, ".sql", ".hs", ".elm", ".adb", ".ads", ".purs")
	add(r.exts, Entry{Style: haskell, Kind: Plain}, ".lhs")
	add(r.exts, Entry{Style: ocaml, Kind: Plain}, ".ml", ".mli")
	add(r.exts, Entry{Style: semi, Kind: Plain}, ".ini", ".asm")
	add(r.exts, Entry{Style: semis, Kind: Plain}, ".clj", ".cljs", ".cljc", ".edn", ".el", ".lisp", ".scm", ".rkt", ".wat", ".wast")
	add(r.exts, Entry{Style: percent, Kind: Plain}, ".tex", ".sty", ".erl", ".hrl")
	add(r.exts, Entry{Style: quote, Kind: Plain}, ".vim")
	add(r.exts, Entry{Style: rem, Kind: Directive, Directives: batchDirectives}, ".bat", ".cmd")

	add(r.exts, Entry{Style: markup, Kind: Declaration},
		".html", ".htm", ".xhtml", ".jhtml", ".xml", ".xsd", ".xsl", ".xslt", ".svg", ".plist",
		".vue", ".svelte")
	add(r.exts, Entry{Style: jsp, Kind: Declaration}, ".jsp", ".aspx", ".ascx", ".asax")
	add(r.exts, Entry{Style: markup, Kind: Frontmatter}, ".md", ".markdown", ".astro")
	add(r.exts, Entry{Style: mdx, Kind: Frontmatter}, ".mdx")
	add(r.exts, Entry{Style: block, Kind: Directive, Directives: charsetDirectives}, ".css", ".scss", ".less")
	add(r.exts, Entry{Style: razor, Kind: Directive, Directives: razorDirectives}, ".cshtml", ".razor")
	add(r.exts, Entry{Style: hash, Kind: Directive, Directives: dockerDirectives}, ".dockerfile", ".containerfile")
	add(r.exts, Entry{Style: slashes, Kind: OpenTag}, ".php", ".phtml", ".php3", ".php4", ".php5", ".phps")

	return r
}
