package utils

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile("[^a-z0-9]+")

// Slugify lowercases s and collapses every run of non-alphanumeric
// characters into a single hyphen, producing a safe filename stem for
// dashboard exports ("Q3 Sales Overview" -> "q3-sales-overview").
func Slugify(s string) string {
	s = nonAlnum.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}
