package polyiamond_test

import (
	"testing"

	"github.com/katalvlaran/heesch/polyiamond"
)

// BenchmarkEnumerate measures the full hexiamond census: fixed growth plus
// canonical deduplication.
func BenchmarkEnumerate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = polyiamond.Enumerate(6)
	}
}
