// Package checksum provides digests of directory listings.
//
// A Listing records the entries reached by a walk, relative to its root, and
// digests them as a sorted set. Two trees with the same shape give the same
// digest whatever the host, the walk order or the absolute location of the
// root. File contents play no part.
//
// Available algorithms are SHA-256 and BLAKE3, both rendered as lowercase hex.
//
// # Example Usage
//
//	calculator, err := checksum.ForName("blake3")
//	listing := checksum.NewListing(calculator)
//	listing.Add("docs/")
//	listing.Add("docs/readme.md")
//	digest := listing.Sum()
//
// # Thread Safety
//
// Calculators are safe for concurrent use by multiple goroutines. A Listing
// is not.
package checksum
