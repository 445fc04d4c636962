// Package msgfmt substitutes positional "{n}" placeholders in templates.
package msgfmt

import (
	"fmt"
	"regexp"
	"strconv"
)

var placeholder = regexp.MustCompile(`\{(\d+)\}`)

// Format replaces each {n} in pattern with fmt.Sprint(args[n]). Placeholders
// without a matching argument are left in place.
func Format(pattern string, args ...any) string {
	return placeholder.ReplaceAllStringFunc(pattern, func(m string) string {
		i, err := strconv.Atoi(m[1 : len(m)-1])
		if err != nil || i >= len(args) {
			return m
		}
		return fmt.Sprint(args[i])
	})
}
