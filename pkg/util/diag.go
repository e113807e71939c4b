package util

import (
	"github.com/klauspost/cpuid/v2"
	log "github.com/sirupsen/logrus"
)

// LogHostCapabilities records, at Debug level, which bit-manipulation
// instruction sets the host CPU advertises. This module always computes
// popcount/trailing-zero via math/bits for portability (see pkg/bitword),
// but the diagnostic mirrors the habit in
// _examples/akalin-gopar/gf2p16/slice_amd64.go of gating a fast path on
// cpuid.CPU.Supports(...) — here it is purely informational, printed once
// next to the perf-stats report so a profiling session knows what the host
// could have done.
func LogHostCapabilities() {
	log.Debugf("host cpu: %s (POPCNT=%v SSSE3=%v AVX2=%v)",
		cpuid.CPU.BrandName,
		cpuid.CPU.Supports(cpuid.POPCNT),
		cpuid.CPU.Supports(cpuid.SSSE3),
		cpuid.CPU.Supports(cpuid.AVX2),
	)
}
