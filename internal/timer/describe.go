package timer

import (
	"fmt"
	"strings"
)

// units lists the supported time units, largest first.
var units = []struct {
	seconds int64
	name    string
}{
	{86400, "day"},
	{3600, "hour"},
	{60, "minute"},
	{1, "second"},
}

// Describe renders a second count as a human-readable decomposition, e.g.
// Describe(3661) == "1 hour, 1 minute, 1 second". Zero-count units are
// omitted, unit names pluralize when the count is not 1, and 0 renders as an
// empty string.
func Describe(seconds int64) string {
	var parts []string
	for _, u := range units {
		n := seconds / u.seconds
		seconds %= u.seconds
		if n == 0 {
			continue
		}
		name := u.name
		if n != 1 {
			name += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, name))
	}
	return strings.Join(parts, ", ")
}
