package estimate

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortNatural sorts keys so that digit runs compare by value: "2" before "10",
// "1.2" before "1.10".
func SortNatural(keys []string) {
	c := collate.New(language.Und, collate.Numeric)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.CompareString(keys[i], keys[j]) < 0
	})
}
