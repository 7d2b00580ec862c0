package gstin

import "strings"

// Extract finds the first GSTIN embedded in s, typically a URL slug such as
// "abc-co-pvt-ltd-27aabcu9603r1zm". The input is uppercased before scanning.
// Only the first match is returned.
func Extract(s string) (GSTIN, bool) {
	up := strings.ToUpper(s)
	for i := 0; i+Length <= len(up); i++ {
		if w := up[i : i+Length]; check(w) < 0 {
			return GSTIN(w), true
		}
	}
	return "", false
}
