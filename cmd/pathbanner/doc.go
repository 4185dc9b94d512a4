// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Pathbanner keeps a path banner at the top of source files.

A path banner is a comment line holding the file's own path, written in
the comment syntax of the file's language:

	# File: scripts/deploy.sh

It goes after anything that must stay first: a shebang, an encoding
cookie, an XML or DOCTYPE declaration, a frontmatter block, Dockerfile
parser directives or a PHP open tag. Files where it cannot be placed
safely are left alone.

Usage:

	$ pathbanner [flags] files...

By default, pathbanner only reports files with a missing or stale banner.
With -fix, it adds missing banners and updates stale ones, for example
after a file was moved. With -remove, it deletes them.

It exits with status 1 when a file was changed, needs a change, or could
not be processed, so it works as a pre-commit hook.

Lock files, files larger than 1 MiB, files starting with a byte order mark
and files that are not UTF-8 text are never touched.

# Configuration

A .pathbanner.yaml file in the current directory, or the file given with
-config, extends the built-in rules:

	max_size: 2097152
	blocklist:
	  - generated.go
	exclude:
	  - "vendor/**"
	styles:
	  .hbs:
	    prefix: "{{!--"
	    suffix: "--}}"
	  .j2:
	    prefix: "{#"
	    suffix: "#}"
	    kind: directive
	    directives:
	      - prefix: "{%"
	        keys: [extends]
	        terminator: "%}"

The kind of a style is one of plain, shebang, encoding, declaration,
frontmatter, directive and open-tag.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/pathbanner/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
