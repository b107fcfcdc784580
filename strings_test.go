package widetext

import "testing"

func TestToUTF16_Empty(t *testing.T) {
	if got := ToUTF16(""); len(got) != 0 {
		t.Errorf("ToUTF16(\"\") = %v", got)
	}
}

func TestToUTF8_Empty(t *testing.T) {
	if got := ToUTF8(nil); got != "" {
		t.Errorf("ToUTF8(nil) = %q", got)
	}
}

func TestToUTF16_NeverFails(t *testing.T) {
	// Malformed input degrades, it never errors: every byte is either
	// converted or substituted.
	inputs := []string{
		"\xff\xfe\xfd",
		"\x80 stray",
		"truncated \xe6\x97",
		"\xc0\xaf",
	}
	for _, s := range inputs {
		got := ToUTF16(s)
		if len(got) == 0 {
			t.Errorf("ToUTF16(%q) produced no output", s)
		}
		for i, u := range got {
			if 0xd800 <= u && u < 0xe000 {
				// A substitution must never fabricate half a pair.
				if i+1 >= len(got) || !(u < 0xdc00 && 0xdc00 <= got[i+1]) {
					t.Errorf("ToUTF16(%q) leaked lone surrogate %#x", s, u)
				}
			}
		}
	}
}

func TestAdapterAgreement(t *testing.T) {
	// The adapters and the bounded core must agree on every input the
	// core fully converts.
	for _, s := range wellFormed {
		dst := make([]uint16, len(s)+1)
		res := DecodeUTF8(dst, []byte(s))
		if res.Consumed != len(s) {
			t.Fatalf("%q: core left %d bytes", s, len(s)-res.Consumed)
		}
		if !equalUnits(dst[:res.Written], ToUTF16(s)) {
			t.Errorf("%q: core and adapter disagree", s)
		}
	}
}
