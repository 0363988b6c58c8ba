package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/zeebo/blake3"
)

// Calculator is an interface for computing digests.
// This abstraction allows for different checksum algorithms.
type Calculator interface {
	// Name returns the algorithm name used to label rendered digests.
	Name() string

	// CalculateRaw computes a digest of data, rendered as lowercase hex.
	CalculateRaw(data []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// BLAKE3 implements checksum calculation using BLAKE3 with a 256-bit output.
//
// BLAKE3 is a zero-size type and is safe for concurrent use by multiple goroutines.
type BLAKE3 struct{}

var calculators = map[string]Calculator{
	"sha256": SHA256{},
	"blake3": BLAKE3{},
}

// ForName returns the calculator registered under name.
func ForName(name string) (Calculator, error) {
	calc, ok := calculators[name]
	if !ok {
		return nil, fmt.Errorf("unknown checksum algorithm %q (available: %v)", name, Names())
	}
	return calc, nil
}

// Names lists the registered algorithms in sorted order.
func Names() []string {
	names := make([]string, 0, len(calculators))
	for name := range calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name implements Calculator.
func (c SHA256) Name() string { return "sha256" }

// CalculateRaw computes SHA-256 of data.
func (c SHA256) CalculateRaw(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Name implements Calculator.
func (c BLAKE3) Name() string { return "blake3" }

// CalculateRaw computes BLAKE3 of data.
func (c BLAKE3) CalculateRaw(data []byte) string {
	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Listing accumulates the entries of a directory tree and digests them as a
// set: the digest does not depend on the order entries were added in.
// Not safe for concurrent use.
type Listing struct {
	calc    Calculator
	entries []string
}

// NewListing creates an empty listing digested with calc.
// Panics if calc is nil.
func NewListing(calc Calculator) *Listing {
	if calc == nil {
		panic("calculator cannot be nil")
	}
	return &Listing{calc: calc}
}

// Add records one entry, given relative to the listed root with '/'
// separators. Directories should carry a trailing '/' so that they differ
// from a file of the same name.
func (l *Listing) Add(entry string) {
	l.entries = append(l.entries, entry)
}

// Len returns the number of entries recorded.
func (l *Listing) Len() int {
	return len(l.entries)
}

// Name returns the algorithm name of the underlying calculator.
func (l *Listing) Name() string {
	return l.calc.Name()
}

// Sum digests the sorted entries, each terminated by a newline.
func (l *Listing) Sum() string {
	sorted := make([]string, len(l.entries))
	copy(sorted, l.entries)
	sort.Strings(sorted)

	var b strings.Builder
	for _, entry := range sorted {
		b.WriteString(entry)
		b.WriteByte('\n')
	}
	return l.calc.CalculateRaw([]byte(b.String()))
}
