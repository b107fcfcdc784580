//go:build windows

package hostenv

import "unsafe"

// Capture of raw host pointers (the wchar_t** forms a wide entry point
// receives). Entries are copied; the host memory is read once and never
// retained or freed.

// EnvironmentFromPtr captures a NULL-terminated wide environment pointer
// as a sentinel-terminated WideArray.
func EnvironmentFromPtr(env **uint16) WideArray {
	if env == nil {
		return WideEnvironment(nil)
	}
	var entries [][]uint16
	for i := uintptr(0); ; i++ {
		p := *(**uint16)(unsafe.Add(unsafe.Pointer(env), i*unsafe.Sizeof(env)))
		if p == nil {
			break
		}
		entries = append(entries, copyWideString(p))
	}
	return WideEnvironment(entries)
}

// ArgumentsFromPtr captures a length-terminated wide argument vector.
func ArgumentsFromPtr(argc int, argv **uint16) WideArray {
	entries := make([][]uint16, 0, argc)
	for i := uintptr(0); i < uintptr(argc); i++ {
		p := *(**uint16)(unsafe.Add(unsafe.Pointer(argv), i*unsafe.Sizeof(argv)))
		entries = append(entries, copyWideString(p))
	}
	return WideArguments(entries)
}

func copyWideString(p *uint16) []uint16 {
	n := 0
	for *(*uint16)(unsafe.Add(unsafe.Pointer(p), uintptr(n)*2)) != 0 {
		n++
	}
	out := make([]uint16, n)
	copy(out, unsafe.Slice(p, n))
	return out
}
