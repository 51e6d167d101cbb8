package ortc

import "github.com/pion/randutil"

// ssrcRangeLow and ssrcRangeHigh bound the uniform range new SSRCs are drawn
// from (§4.3, §9). SSRC uniqueness within a session is not this package's
// responsibility: the ~9×10^8-value range makes collisions rare enough that
// callers detect and retry at a higher layer if it ever matters.
const (
	ssrcRangeLow  = 100_000_000
	ssrcRangeHigh = 999_999_999
)

// generateSSRC draws a uniform random SSRC in [100_000_000, 999_999_999).
//
// Each call constructs its own generator instance rather than sharing one
// across goroutines, the same way the teacher library mints per-call
// generators for SSRCs and track IDs (randutil.NewMathRandomGenerator() in
// rtpsender.go and the test suite) instead of guarding a single shared
// source with a lock — fitting §5's requirement that SSRC generation not
// become a serializing bottleneck across concurrent producer/consumer
// creation.
func generateSSRC() uint32 {
	gen := randutil.NewMathRandomGenerator()
	return ssrcRangeLow + gen.Uint32()%(ssrcRangeHigh-ssrcRangeLow)
}
