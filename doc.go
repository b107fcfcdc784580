// Package widetext converts between UTF-8 and UTF-16 across fixed-size
// buffer boundaries.
//
// Host environments with 16-bit native text (console APIs, argument
// vectors, environment blocks) exchange data in fixed-size buffers, so a
// multi-unit character can be split between two calls. widetext is built
// around that problem:
//   - Bounded conversions report units consumed and units written
//     separately, and never write a partial character.
//   - A UTF-8 input that ends mid-character reports the length of the
//     unconsumed tail (0-3 bytes) so the caller can prepend it to the
//     next chunk and resume losslessly.
//   - Malformed input is substituted with U+FFFD deterministically;
//     conversion never fails on bad text.
//
// # Layers
//
// The bounded core ([DecodeUTF8], [EncodeUTF8]) is stateless, pure and
// allocation-free, safe for unrestricted concurrent use. [Decoder] carries
// the truncated tail across chunked calls for streaming callers.
// [ToUTF16] and [ToUTF8] are whole-string conveniences. [NewUTF16Decoder]
// and [NewUTF16Encoder] adapt the core to golang.org/x/text/transform for
// byte-stream composition.
//
// Companion packages: hostenv marshals host-native argument vectors and
// environment blocks into owned narrow arrays; consoleio wraps console
// streams and their one-way mode switches; norm exposes the normalization
// collaborators (NFC, NFKD, casefolding).
//
// # Resumption protocol
//
//	var pending []byte
//	for chunk := range chunks {
//		in := append(pending, chunk...)
//		res := widetext.DecodeUTF8(out, in)
//		emit(out[:res.Written])
//		pending = in[res.Consumed : res.Consumed+res.Truncated]
//	}
//
// Or let [Decoder] keep the tail for you.
package widetext
