package validate

import (
	"context"
	"regexp"
	"strconv"

	"github.com/abitofhelp/phonenumber/classify"
	"github.com/abitofhelp/phonenumber/countrycode"
	"github.com/abitofhelp/phonenumber/internal/patterns"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/normalize"
	"github.com/abitofhelp/phonenumber/stringutil"
)

// Number is the subset of a parsed phone number this package needs to
// answer possibility and validity questions. Callers (the phonenumber
// facade) adapt their own value type into this one rather than this
// package depending upward on the facade.
type Number struct {
	CountryCode        int
	NationalNumber     uint64
	ItalianLeadingZero bool
}

// NSN composes the national significant number from NationalNumber and
// ItalianLeadingZero, per the classifier's documented input shape.
func (n Number) NSN() string {
	if n.ItalianLeadingZero {
		return "0" + strconv.FormatUint(n.NationalNumber, 10)
	}
	return strconv.FormatUint(n.NationalNumber, 10)
}

// Result is the outcome of a possibility check.
type Result int

const (
	IsPossible Result = iota
	InvalidCountryCode
	TooShort
	TooLong
)

const (
	minLengthForNSN = 3
	maxLengthForNSN = 15
)

// IsPossibleNumber reports whether a number's NSN has a plausible length
// and shape for its calling code, without fully classifying its type.
func IsPossibleNumber(ctx context.Context, store *metadata.Store, n Number) Result {
	regions := countrycode.RegionsForCallingCode(n.CountryCode)
	if len(regions) == 0 {
		return InvalidCountryCode
	}

	nsn := n.NSN()
	nsnLen := len(nsn)
	if nsnLen < minLengthForNSN {
		return TooShort
	}
	if nsnLen > maxLengthForNSN {
		return TooLong
	}

	region, ok := classify.RegionCodeForNumber(ctx, store, n.CountryCode, nsn)
	if !ok {
		// No candidate region claimed the number (or none could be loaded);
		// fall back to the length-only verdict already computed above.
		return IsPossible
	}

	m, ok := store.MetadataForRegion(ctx, region)
	if !ok || m.GeneralDesc == nil {
		return IsPossible
	}

	possible := m.GeneralDesc.PossibleRegexp()
	if possible == nil {
		return IsPossible
	}
	if !possible.MatchString(nsn) {
		return lengthVerdict(possible, nsn)
	}
	return IsPossible
}

// lengthVerdict distinguishes TooShort from TooLong for an nsn that the
// possible-number pattern rejects: if some leading prefix of nsn would
// satisfy the pattern, the excess trailing digits make it too long;
// otherwise even the full nsn falls short of the pattern's shortest match,
// so it is too short.
func lengthVerdict(possible *regexp.Regexp, nsn string) Result {
	for i := len(nsn) - 1; i >= minLengthForNSN; i-- {
		if possible.MatchString(nsn[:i]) {
			return TooLong
		}
	}
	return TooShort
}

// IsValidNumber reports whether number is valid for the region its own
// country code resolves to.
func IsValidNumber(ctx context.Context, store *metadata.Store, n Number) bool {
	region, ok := classify.RegionCodeForNumber(ctx, store, n.CountryCode, n.NSN())
	if !ok {
		return false
	}
	return IsValidNumberForRegion(ctx, store, n, region)
}

// IsValidNumberForRegion reports whether number is valid specifically for
// region (which may be a geographic region code or the non-geographic
// sentinel metadata.NonGeoRegion).
func IsValidNumberForRegion(ctx context.Context, store *metadata.Store, n Number, region string) bool {
	m, ok := metadataForRegionOrCallingCode(ctx, store, region, n.CountryCode)
	if !ok {
		return false
	}

	if region != metadata.NonGeoRegion {
		cc, ok := countrycode.CountryCodeForValidRegion(ctx, store, region)
		if !ok || cc != n.CountryCode {
			return false
		}
	}

	nsn := n.NSN()

	if m.GeneralDesc == nil || m.GeneralDesc.NationalRegexp() == nil {
		// ITU fallback range; the lower bound is strict per the source's
		// literal ">" comparison (see DESIGN.md for the Open Question this
		// resolves).
		return minLengthForNSN < len(nsn) && len(nsn) <= maxLengthForNSN
	}

	return classify.NumberTypeHelper(nsn, m) != classify.Unknown
}

func metadataForRegionOrCallingCode(ctx context.Context, store *metadata.Store, region string, callingCode int) (*metadata.PhoneMetadata, bool) {
	if region == metadata.NonGeoRegion {
		return store.MetadataForNonGeographicalRegion(ctx, callingCode)
	}
	return store.MetadataForRegion(ctx, region)
}

// ExplainFailure reports, in a single human-readable sentence, why
// IsValidNumberForRegion rejected number for region. It is meant for
// diagnostic logging at the call site, not for caller-visible control flow.
// An empty string means the reported failure reasons could not be
// determined more specifically than "invalid".
func ExplainFailure(ctx context.Context, store *metadata.Store, n Number, region string) string {
	if stringutil.IsEmpty(region) {
		return "region is empty"
	}

	var reasons []string

	m, ok := metadataForRegionOrCallingCode(ctx, store, region, n.CountryCode)
	if !ok {
		return "no metadata available for region " + region
	}

	if region != metadata.NonGeoRegion {
		cc, ok := countrycode.CountryCodeForValidRegion(ctx, store, region)
		if !ok {
			reasons = append(reasons, "region has no recorded calling code")
		} else if cc != n.CountryCode {
			reasons = append(reasons, "country code does not match region")
		}
	}

	nsn := n.NSN()
	if m.GeneralDesc == nil || m.GeneralDesc.NationalRegexp() == nil {
		if !(minLengthForNSN < len(nsn) && len(nsn) <= maxLengthForNSN) {
			reasons = append(reasons, "nsn length is outside the ITU fallback range")
		}
	} else if classify.NumberTypeHelper(nsn, m) == classify.Unknown {
		reasons = append(reasons, "nsn does not match any known number-type category")
	}

	if len(reasons) == 0 {
		return ""
	}
	return stringutil.JoinWithAnd(reasons, true)
}

// IsAlphaNumber reports whether s is a viable phone number that, once any
// trailing extension is stripped, still contains at least 3 letters — i.e.
// it is meaningfully an alpha number like "1-800-MICROSOFT", not a digit
// string that merely happens to contain a couple of stray letters.
func IsAlphaNumber(s string) bool {
	if !normalize.IsViablePhoneNumber(s) {
		return false
	}
	remainder, _ := normalize.MaybeStripExtension(s)
	return patterns.CountLetters(remainder) >= minLengthForNSN
}
