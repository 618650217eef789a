package octopus

import "regexp"

// productPattern matches a product code embedded in a tariff code: two
// hyphenated letter groups followed by a six-digit date, e.g.
// AGILE-FLEX-22-11-25 inside E-1R-AGILE-FLEX-22-11-25-B.
var productPattern = regexp.MustCompile(`[A-Z]+-[A-Z]+-\d{2}-\d{2}-\d{2}`)

// ProductCode extracts the product code from a tariff code.
//
// It returns the leftmost match of the product pattern, or "" when the
// tariff code contains none. Single-word products carry the register
// marker into the match: E-1R-VAR-22-11-01 yields R-VAR-22-11-01, because
// the pattern needs two letter groups and the R of the register satisfies
// the first.
func ProductCode(tariffCode string) string {
	return productPattern.FindString(tariffCode)
}
