package compare

import "strings"

const regionPrefix = "Region "

// regions whose label carries no "Region " prefix in either form
var bareRegions = map[string]struct{}{
	"NCR":   {},
	"CAR":   {},
	"BARMM": {},
}

// ToShortCode canonicalizes a region label to its short code:
// "Region VII" → "VII". NCR, CAR and BARMM pass through unchanged, as does
// any label that carries no "Region " prefix.
func ToShortCode(label string) string {
	if _, ok := bareRegions[label]; ok {
		return label
	}
	return strings.TrimPrefix(label, regionPrefix)
}

// ToAPILabel is the inverse of ToShortCode, producing the record source's
// native "Region X" form.
func ToAPILabel(shortCode string) string {
	if _, ok := bareRegions[shortCode]; ok {
		return shortCode
	}
	if strings.HasPrefix(shortCode, regionPrefix) {
		return shortCode
	}
	return regionPrefix + shortCode
}
