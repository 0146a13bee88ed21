// Package version derives the extractor version string from the extraction
// configuration. Any change to strategy composition, scoring weights, or
// thresholds produces a different string, which callers use to detect stale
// stored records.
package version

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// fingerprintLen is the number of hex characters kept from the digest.
const fingerprintLen = 12

// Compute returns a deterministic version identifier for the given strategy
// set, weights, and thresholds. It is a pure function of configuration, never
// of document content.
func Compute(prefix string, strategies []string, weights map[string]float64, confidenceThreshold, semanticThreshold float64) string {
	names := append([]string(nil), strategies...)
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s=%.4f;", name, weights[name])
	}
	fmt.Fprintf(&b, "confidence_threshold=%.4f;", confidenceThreshold)
	fmt.Fprintf(&b, "semantic_threshold=%.4f", semanticThreshold)

	sum := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("%s-%ds-%s", prefix, len(names), hex.EncodeToString(sum[:])[:fingerprintLen])
}
