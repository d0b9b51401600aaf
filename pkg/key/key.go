// Package key derives identity keys from declaration call sites.
//
// A Key identifies where in a build function a declaration happened. The
// reconciler matches declarations to persistent tree entries by Key, so two
// declarations from the same call site refer to the same entry across passes:
//
//	func Label(u *ui.Ui, text string) {
//	    ui.Render(u, key.Caller(1), labelKind, text, nil)
//	}
//
// A call site is a source file and line, resolved through inlining. Two
// declarations written on one line share a key; give them separate lines or
// derive distinct keys with WithIndex.
//
// Keys are plain comparable values; == is the equality used by the reconciler.
package key

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
)

// site is one interned file:line. Keys hold a pointer to it, so key
// equality is pointer equality.
type site struct {
	file     string
	line     int
	function string
}

type siteID struct {
	file string
	line int
}

var sites sync.Map // siteID -> *site

func intern(frame runtime.Frame) *site {
	id := siteID{file: frame.File, line: frame.Line}
	if s, ok := sites.Load(id); ok {
		return s.(*site)
	}
	s, _ := sites.LoadOrStore(id, &site{file: frame.File, line: frame.Line, function: frame.Function})
	return s.(*site)
}

// Key is an opaque call-site token.
type Key struct {
	site    *site
	index   int
	indexed bool
}

// Caller returns the key for the call site skip frames above the caller of
// Caller. Caller(0) identifies the line that calls Caller itself; widget
// helpers pass 1 so the key names their own caller.
func Caller(skip int) Key {
	var pcs [1]uintptr
	// 0 is runtime.Callers, 1 is Caller.
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return Key{}
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	if frame.File == "" {
		return Key{}
	}
	return Key{site: intern(frame)}
}

// WithIndex derives a key for item i of a loop that declares from a single
// call site. Keys with different indexes never compare equal, and no indexed
// key equals the plain key. Indexing an indexed key replaces its index.
func (k Key) WithIndex(i int) Key {
	return Key{site: k.site, index: i, indexed: true}
}

// IsZero reports whether k is the zero key.
func (k Key) IsZero() bool {
	return k == Key{}
}

// Location describes the source position of a key's call site.
type Location struct {
	File     string
	Line     int
	Function string
}

// Location resolves the call site. ok is false for the zero key.
func (k Key) Location() (Location, bool) {
	if k.site == nil {
		return Location{}, false
	}
	return Location{File: k.site.file, Line: k.site.line, Function: k.site.function}, true
}

// String returns "file.go:line" (plus "[i]" for indexed keys).
func (k Key) String() string {
	loc, ok := k.Location()
	if !ok {
		return "<unknown>"
	}
	s := fmt.Sprintf("%s:%d", filepath.Base(loc.File), loc.Line)
	if k.indexed {
		s += fmt.Sprintf("[%d]", k.index)
	}
	return s
}
