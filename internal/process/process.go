// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package process adds, updates and removes path banners in files.
package process

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"go.astrophena.name/pathbanner/internal/banner"
	"go.astrophena.name/pathbanner/logger"
)

// Mode selects what a [Processor] does with banners.
type Mode int

const (
	// Check reports files with a missing or stale banner without writing.
	Check Mode = iota
	// Fix inserts missing banners and updates stale ones.
	Fix
	// Remove deletes banners.
	Remove
)

var errNotRegular = errors.New("not a regular file")

// Processor processes files one at a time. Its zero value checks files
// against the default registry on the host filesystem. A Processor is safe
// for concurrent use as long as no two goroutines process the same path.
type Processor struct {
	Mode     Mode
	Registry *banner.Registry // if nil, banner.Default()
	MaxSize  int64            // if zero, DefaultMaxSize
	FS       FS               // if nil, OSFS

	// Exclude, if set, reports whether the slash-separated path must be
	// skipped.
	Exclude func(path string) bool
}

func (p *Processor) registry() *banner.Registry {
	if p.Registry == nil {
		return banner.Default()
	}
	return p.Registry
}

func (p *Processor) maxSize() int64 {
	if p.MaxSize <= 0 {
		return DefaultMaxSize
	}
	return p.MaxSize
}

func (p *Processor) fs() FS {
	if p.FS == nil {
		return OSFS{}
	}
	return p.FS
}

func (p *Processor) display(path string) string { return banner.DisplayPath(path) }

// Process brings the banner of the file at path in line with the mode. It
// writes the file at most once and never fails: errors are reported in the
// returned Outcome.
func (p *Processor) Process(ctx context.Context, path string) Outcome {
	o := p.process(path)
	attrs := []slog.Attr{
		slog.String("path", o.Path),
		slog.String("action", o.Action.String()),
	}
	switch o.Action {
	case Skipped:
		attrs = append(attrs, slog.String("reason", string(o.Reason)))
	case Errored:
		logger.Warn(ctx, "processing failed", append(attrs, slog.Any("err", o.Err))...)
		return o
	}
	if o.DryRun {
		attrs = append(attrs, slog.Bool("dry_run", true))
	}
	logger.Debug(ctx, "processed", attrs...)
	return o
}

func (p *Processor) process(path string) Outcome {
	g, o, ok := p.gate(path)
	if !ok {
		return o
	}

	display := p.display(path)
	s, ok := banner.Resolve(p.registry(), path)
	if !ok {
		return skipped(display, UnsupportedType)
	}

	f := split(string(g.content))
	idx, ok := s.Locate(f.bare()).Index()
	if !ok {
		return skipped(display, UnsafePlacement)
	}
	idx = min(idx, len(f.lines))

	want := s.Style.Render(display)
	at, found := f.find(s.Style, idx)

	o = Outcome{Path: display}
	switch {
	case p.Mode == Remove && !found:
		return o
	case p.Mode == Remove:
		f.remove(at)
		o.Action = Removed
	case found && s.Style.Is(f.lines[at], display):
		return o
	case found:
		f.replace(at, want)
		o.Action = Updated
	default:
		f.insert(idx, want)
		o.Action = Inserted
	}

	if p.Mode == Check {
		o.DryRun = true
		return o
	}
	if err := p.fs().WriteFile(path, []byte(f.String())); err != nil {
		return errored(display, err)
	}
	return o
}

// file is text split into lines that keep their terminators.
type file struct {
	lines []string
}

func split(text string) *file {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return &file{lines: lines}
}

func (f *file) String() string { return strings.Join(f.lines, "") }

// bare returns the lines without terminators.
func (f *file) bare() []string {
	bare := make([]string, len(f.lines))
	for i, l := range f.lines {
		bare[i] = strings.TrimSuffix(strings.TrimSuffix(l, "\n"), "\r")
	}
	return bare
}

// eol is the line terminator new lines get: the one of the first line.
func (f *file) eol() string {
	if len(f.lines) > 0 && strings.HasSuffix(f.lines[0], "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// find looks for a banner in the leading lines, from idx back to the first
// line, and returns the one nearest to idx.
func (f *file) find(s banner.Style, idx int) (int, bool) {
	for i := min(idx, len(f.lines)-1); i >= 0; i-- {
		if s.IsBanner(f.lines[i]) {
			return i, true
		}
	}
	return 0, false
}

func (f *file) insert(idx int, line string) {
	eol := f.eol()
	if idx == len(f.lines) && idx > 0 && !strings.HasSuffix(f.lines[idx-1], "\n") {
		f.lines[idx-1] += eol
	}
	f.lines = slices.Insert(f.lines, idx, line+eol)
}

func (f *file) replace(i int, line string) {
	old := f.lines[i]
	term := old[len(strings.TrimRight(old, "\r\n")):]
	f.lines[i] = line + term
}

func (f *file) remove(i int) {
	f.lines = slices.Delete(f.lines, i, i+1)
}
