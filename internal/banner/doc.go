// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package banner knows where a path banner belongs in a file.

A banner is a single comment line recording the file's own path:

	# File: scripts/deploy.sh

The [Registry] maps a file identity (exact basename, Dockerfile-like
pattern, or extension) to an [Entry]: the comment [Style] and the [Kind]
of leading constructs the banner has to be placed after. [Resolve] turns
an entry into a [Strategy], whose Locate method returns a [Decision]:
either a line index or [Unsafe].

Nothing in this package touches the filesystem.
*/
package banner
