package checksum

import (
	"fmt"
	"strings"
	"testing"
)

// BenchmarkCalculateRaw benchmarks raw digest calculation per algorithm
func BenchmarkCalculateRaw(b *testing.B) {
	data := []byte(strings.Repeat("src/pkg/module/file.go\n", 1000))

	for _, name := range Names() {
		calc, _ := ForName(name)
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				calc.CalculateRaw(data)
			}
		})
	}
}

// BenchmarkListingSum benchmarks digesting a listing of 10k entries
func BenchmarkListingSum(b *testing.B) {
	listing := NewListing(BLAKE3{})
	for i := 0; i < 10000; i++ {
		listing.Add(fmt.Sprintf("dir%03d/file%05d.txt", i%100, i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		listing.Sum()
	}
}
