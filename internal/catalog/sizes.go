package catalog

import "strings"

// Size option sets keyed by category family. The storefront offers a
// fixed assortment per family; the derivation is deterministic and a
// product always gets at least one size.
var (
	singleSize   = []string{"3in x 3in"}
	photoSizes   = []string{"2in x 2in", "3in x 3in", "4in x 4in"}
	eventSizes   = []string{"4in x 6in", "5in x 7in", "6in x 8in"}
	defaultSizes = []string{"2in x 3in", "3in x 4in", "4in x 5in"}
)

// SizeOptions derives the selectable sizes for a product from its
// category name. Matching is by lower-cased substring:
//
//	retro, print        -> one fixed size
//	photo, custom       -> photo assortment
//	save, date, wedding -> event assortment
//	anything else       -> default assortment
func SizeOptions(categoryName string) []string {
	name := strings.ToLower(categoryName)

	switch {
	case strings.Contains(name, "retro") || strings.Contains(name, "print"):
		return append([]string(nil), singleSize...)
	case strings.Contains(name, "photo") || strings.Contains(name, "custom"):
		return append([]string(nil), photoSizes...)
	case strings.Contains(name, "save") || strings.Contains(name, "date") || strings.Contains(name, "wedding"):
		return append([]string(nil), eventSizes...)
	default:
		return append([]string(nil), defaultSizes...)
	}
}
