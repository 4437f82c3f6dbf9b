package countrycode

import (
	"context"
	"sync"

	"github.com/abitofhelp/phonenumber/metadata"
)

// callingCodeToRegions is the vendored calling-code index: each entry lists
// the region codes sharing that calling code, in priority order, with the
// main region (metadata.MainCountryForCode == true) listed first.
var callingCodeToRegions = map[int][]string{
	1:   {"US", "CA"},
	33:  {"FR"},
	39:  {"IT"},
	44:  {"GB"},
	49:  {"DE"},
	61:  {"AU"},
	55:  {"BR"},
	800: {metadata.NonGeoRegion},
	808: {metadata.NonGeoRegion},
}

var (
	supportedOnce sync.Once
	supportedSet  map[string]struct{}
)

func buildSupportedSet() {
	supportedSet = make(map[string]struct{})
	for _, regions := range callingCodeToRegions {
		for _, r := range regions {
			supportedSet[r] = struct{}{}
		}
	}
}

// SupportedRegions returns the set of region codes known to the index,
// including the non-geographical sentinel.
func SupportedRegions() map[string]struct{} {
	supportedOnce.Do(buildSupportedSet)
	return supportedSet
}

// IsSupportedRegion reports whether region appears in the index. It is the
// predicate metadata.Options.IsSupportedRegion is wired to, so an
// unsupported region is rejected before any file lookup is attempted.
func IsSupportedRegion(region string) bool {
	_, ok := SupportedRegions()[region]
	return ok
}

// RegionsForCallingCode returns the ordered region list for a calling code,
// or nil if the calling code is not in the index.
func RegionsForCallingCode(callingCode int) []string {
	return callingCodeToRegions[callingCode]
}

// RegionCodeForCountryCode returns the main (first) region for a calling
// code, or metadata.UnknownRegion if the calling code has no entry.
func RegionCodeForCountryCode(callingCode int) string {
	regions := callingCodeToRegions[callingCode]
	if len(regions) == 0 {
		return metadata.UnknownRegion
	}
	return regions[0]
}

// CountryCodeForValidRegion returns the calling code recorded in region's
// metadata, and whether the lookup succeeded.
func CountryCodeForValidRegion(ctx context.Context, store *metadata.Store, region string) (int, bool) {
	if region == metadata.NonGeoRegion {
		return 0, false
	}
	meta, ok := store.MetadataForRegion(ctx, region)
	if !ok {
		return 0, false
	}
	return meta.CountryCode, true
}
