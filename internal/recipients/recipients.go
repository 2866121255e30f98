// Package recipients extracts email addresses from free-form recipient input.
package recipients

import "regexp"

// addrPattern matches a permissive email address: dot-separated local-part atoms,
// an "@", one or more dot-terminated domain labels and an alphabetic TLD.
const addrPattern = "(?:[a-z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-z0-9!#$%&'*+/=?^_`{|}~-]+)*)" +
	"@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\\.)+[a-z]{2,}"

var (
	addrRegex  = regexp.MustCompile(`(?i)` + addrPattern)
	exactRegex = regexp.MustCompile(`(?i)^` + addrPattern + `$`)
)

// Parse returns every email address found in raw, in order of appearance.
// Separators (commas, spaces, newlines) need no special handling since only the
// matches are kept. Duplicates are preserved. The result is never nil.
func Parse(raw string) []string {
	matches := addrRegex.FindAllString(raw, -1)
	if matches == nil {
		return []string{}
	}

	return matches
}

// Valid reports whether addr is exactly one email address.
func Valid(addr string) bool {
	return exactRegex.MatchString(addr)
}
