package hostenv

import "github.com/Neumenon/widetext"

// The flat environment block form: each entry NUL-terminated, the block
// closed by an empty entry (a double NUL). This is the shape host
// process-creation and environment APIs exchange.

// ParseEnvBlock splits a flat wide environment block into its entries as
// a sentinel-terminated WideArray. Entries alias the block; the block is
// never mutated. An unterminated trailing entry is kept.
func ParseEnvBlock(block []uint16) WideArray {
	var entries [][]uint16
	start := 0
	for i := 0; i < len(block); i++ {
		if block[i] != 0 {
			continue
		}
		if i == start {
			// Empty entry: end of block.
			return WideEnvironment(entries)
		}
		entries = append(entries, block[start:i])
		start = i + 1
	}
	if start < len(block) {
		entries = append(entries, block[start:])
	}
	return WideEnvironment(entries)
}

// BuildEnvBlock flattens narrow entries into a double-NUL-terminated wide
// block for handing back to host APIs.
func BuildEnvBlock(entries []string) []uint16 {
	if len(entries) == 0 {
		return []uint16{0, 0}
	}
	var block []uint16
	for _, e := range entries {
		block = append(block, widetext.ToUTF16(e)...)
		block = append(block, 0)
	}
	return append(block, 0)
}
