// Package hostenv marshals host-native wide argument vectors and
// environment blocks into owned arrays of narrow (UTF-8) strings.
//
// The host hands text to a process in two array shapes: environment
// blocks end with a null sentinel entry, argument vectors carry an
// explicit count. Both are represented by [WideArray] with a [Shape] tag
// so the conversion logic is shared while the external shapes are
// preserved exactly.
//
// # Ownership
//
// Allocate never mutates or retains the wide input. The returned
// [NarrowArray] is owned by the caller, who must release it with exactly
// one Free call. Freeing twice, or freeing an array not produced by
// Allocate, hands foreign buffers to the entry pool; that is a caller
// contract violation with undefined results, not a recoverable error,
// and is deliberately not guarded at runtime. Ownership of a single
// array is single-threaded by this contract; the package itself takes
// no locks.
package hostenv

import (
	"sync"

	"github.com/Neumenon/widetext"
)

// Shape distinguishes the two host array termination conventions.
type Shape uint8

const (
	// SentinelTerminated arrays end with a null entry (environment blocks).
	SentinelTerminated Shape = iota
	// LengthTerminated arrays carry an explicit count (argument vectors).
	LengthTerminated
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case SentinelTerminated:
		return "sentinel"
	case LengthTerminated:
		return "length"
	default:
		return "unknown"
	}
}

// WideArray is a host-native array of wide strings plus its termination
// shape. Entries carry no terminators; lengths are always explicit.
type WideArray struct {
	Shape   Shape
	Entries [][]uint16
}

// WideEnvironment wraps environment entries as a sentinel-terminated
// wide array.
func WideEnvironment(entries [][]uint16) WideArray {
	return WideArray{Shape: SentinelTerminated, Entries: entries}
}

// WideArguments wraps an argument vector as a length-terminated wide
// array.
func WideArguments(argv [][]uint16) WideArray {
	return WideArray{Shape: LengthTerminated, Entries: argv}
}

// NarrowArray is an owned array of NUL-terminated narrow strings
// produced by Allocate. Entry buffers come from a shared pool; Free
// returns them.
type NarrowArray struct {
	shape   Shape
	entries [][]byte // each NUL-terminated; sentinel shape ends with nil
}

var entryPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, 256)
		return &buf
	},
}

// testHookAlloc observes entry buffer checkouts in tests. It is
// instrumentation only, never a runtime guard.
var testHookAlloc func(delta int)

// Allocate converts every entry of w into the narrow encoding and
// returns the owned result. Sentinel-terminated input yields a trailing
// nil entry, mirroring how host APIs enumerate environment blocks;
// length-terminated input is sized exactly. Malformed wide entries
// degrade via substitution, as everywhere in the codec.
//
// The caller owns the result and must release it with exactly one
// (*NarrowArray).Free call.
func Allocate(w WideArray) *NarrowArray {
	size := len(w.Entries)
	if w.Shape == SentinelTerminated {
		size++
	}
	a := &NarrowArray{shape: w.Shape, entries: make([][]byte, 0, size)}
	for _, entry := range w.Entries {
		a.entries = append(a.entries, convertEntry(entry))
	}
	if w.Shape == SentinelTerminated {
		a.entries = append(a.entries, nil)
	}
	return a
}

func convertEntry(wide []uint16) []byte {
	bufp := entryPool.Get().(*[]byte)
	if testHookAlloc != nil {
		testHookAlloc(1)
	}
	buf := (*bufp)[:0]
	need := 3*len(wide) + 1
	if cap(buf) < need {
		buf = make([]byte, 0, need)
	}
	_, written := widetext.EncodeUTF8(buf[:cap(buf)], wide)
	buf = buf[:written]
	return append(buf, 0)
}

// Free returns every entry buffer to the pool and drops the array.
// Exactly one Free per Allocate; see the package ownership contract.
func (a *NarrowArray) Free() {
	for _, entry := range a.entries {
		if entry == nil {
			continue
		}
		entry = entry[:0]
		entryPool.Put(&entry)
		if testHookAlloc != nil {
			testHookAlloc(-1)
		}
	}
	a.entries = nil
}

// Shape returns the termination convention the array preserves.
func (a *NarrowArray) Shape() Shape { return a.shape }

// Len returns the number of converted entries, excluding the sentinel.
func (a *NarrowArray) Len() int {
	if a.shape == SentinelTerminated && len(a.entries) > 0 {
		return len(a.entries) - 1
	}
	return len(a.entries)
}

// Entry returns entry i without its NUL terminator. The returned string
// is an independent copy, valid after Free.
func (a *NarrowArray) Entry(i int) string {
	e := a.entries[i]
	return string(e[:len(e)-1])
}

// Strings copies all entries, excluding the sentinel.
func (a *NarrowArray) Strings() []string {
	out := make([]string, a.Len())
	for i := range out {
		out[i] = a.Entry(i)
	}
	return out
}
