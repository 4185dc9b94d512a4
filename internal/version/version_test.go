// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	v := Version()
	if !strings.HasPrefix(v, CmdName()+" ") {
		t.Fatalf("Version() = %q, want prefix %q", v, CmdName()+" ")
	}
	if !strings.HasSuffix(v, "\n") {
		t.Fatalf("Version() = %q, want trailing newline", v)
	}
}
