// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports the version of the running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
)

// CmdName returns the name of the running command, without any file
// extension.
func CmdName() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Path != "" {
		return filepath.Base(info.Path)
	}
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Version returns a human-readable, newline-terminated version string.
func Version() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s ", CmdName())

	info, ok := debug.ReadBuildInfo()
	if !ok {
		sb.WriteString("(unknown)\n")
		return sb.String()
	}

	mod := info.Main.Version
	if mod == "" || mod == "(devel)" {
		mod = "devel"
	}
	sb.WriteString(mod)

	var rev, modified string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}
	if rev != "" {
		if len(rev) > 12 {
			rev = rev[:12]
		}
		fmt.Fprintf(&sb, " (%s", rev)
		if modified == "true" {
			sb.WriteString(", dirty")
		}
		sb.WriteString(")")
	}
	fmt.Fprintf(&sb, " %s/%s %s\n", runtime.GOOS, runtime.GOARCH, runtime.Version())
	return sb.String()
}
