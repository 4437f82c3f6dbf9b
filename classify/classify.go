package classify

import (
	"context"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/abitofhelp/phonenumber/countrycode"
	"github.com/abitofhelp/phonenumber/logging"
	"github.com/abitofhelp/phonenumber/metadata"
)

// NumberType is the classifier's verdict on what kind of number an NSN is,
// within one region's numbering plan.
type NumberType int

const (
	FixedLine NumberType = iota
	Mobile
	FixedLineOrMobile
	TollFree
	PremiumRate
	SharedCost
	Voip
	PersonalNumber
	Pager
	Uan
	Unknown
)

func (t NumberType) String() string {
	switch t {
	case FixedLine:
		return "FIXED_LINE"
	case Mobile:
		return "MOBILE"
	case FixedLineOrMobile:
		return "FIXED_LINE_OR_MOBILE"
	case TollFree:
		return "TOLL_FREE"
	case PremiumRate:
		return "PREMIUM_RATE"
	case SharedCost:
		return "SHARED_COST"
	case Voip:
		return "VOIP"
	case PersonalNumber:
		return "PERSONAL_NUMBER"
	case Pager:
		return "PAGER"
	case Uan:
		return "UAN"
	default:
		return "UNKNOWN"
	}
}

// categoryLadder pairs each non-fixed-line, non-mobile category with its
// accessor, in the exact priority order the classifier tests them. Voicemail
// is deliberately absent: the public NumberType enum has no constant for it
// (see DESIGN.md), so testing for it could never produce a representable
// result.
var categoryLadder = []struct {
	typ  NumberType
	desc func(*metadata.PhoneMetadata) *metadata.PhoneNumberDesc
}{
	{PremiumRate, func(m *metadata.PhoneMetadata) *metadata.PhoneNumberDesc { return m.PremiumRate }},
	{TollFree, func(m *metadata.PhoneMetadata) *metadata.PhoneNumberDesc { return m.TollFree }},
	{SharedCost, func(m *metadata.PhoneMetadata) *metadata.PhoneNumberDesc { return m.SharedCost }},
	{Voip, func(m *metadata.PhoneMetadata) *metadata.PhoneNumberDesc { return m.Voip }},
	{PersonalNumber, func(m *metadata.PhoneMetadata) *metadata.PhoneNumberDesc { return m.PersonalNumber }},
	{Pager, func(m *metadata.PhoneMetadata) *metadata.PhoneNumberDesc { return m.Pager }},
	{Uan, func(m *metadata.PhoneMetadata) *metadata.PhoneNumberDesc { return m.Uan }},
}

// NumberTypeHelper classifies nsn against a single region's metadata,
// returning Unknown if the general descriptor rejects it outright.
func NumberTypeHelper(nsn string, m *metadata.PhoneMetadata) NumberType {
	if m == nil || !m.GeneralDesc.Matches(nsn) {
		return Unknown
	}

	for _, c := range categoryLadder {
		if c.desc(m).Matches(nsn) {
			return c.typ
		}
	}

	fixedMatches := m.FixedLine.Matches(nsn)
	mobileMatches := m.Mobile.Matches(nsn)

	if fixedMatches {
		if m.SameMobileAndFixedLinePattern || mobileMatches {
			return FixedLineOrMobile
		}
		return FixedLine
	}

	if !m.SameMobileAndFixedLinePattern && mobileMatches {
		return Mobile
	}

	return Unknown
}

// diagnosticError reports, for logging only, why a region's general
// descriptor rejected an NSN — the possible-pattern and national-pattern
// conjunction are checked separately so the log line says which one (or
// both) failed.
func diagnosticError(nsn string, m *metadata.PhoneMetadata) error {
	if m == nil || m.GeneralDesc == nil {
		return errNoGeneralDesc
	}
	var err error
	if possible := m.GeneralDesc.PossibleRegexp(); possible == nil || !possible.MatchString(nsn) {
		err = multierr.Append(err, errPossiblePatternRejected)
	}
	if national := m.GeneralDesc.NationalRegexp(); national == nil || !national.MatchString(nsn) {
		err = multierr.Append(err, errNationalPatternRejected)
	}
	return err
}

var (
	errNoGeneralDesc           = sentinelError("metadata has no general_desc")
	errPossiblePatternRejected = sentinelError("nsn rejected by possible_number_pattern")
	errNationalPatternRejected = sentinelError("nsn rejected by national_number_pattern")
)

type sentinelError string

func (e sentinelError) Error() string { return string(e) }

// RegionCodeForNumber resolves the region a number belongs to, given its
// calling code and national significant number (already composed with any
// Italian leading zero by the caller). It returns false if the calling code
// is not in the index, or no candidate region claims the number.
func RegionCodeForNumber(ctx context.Context, store *metadata.Store, callingCode int, nsn string) (string, bool) {
	regions := countrycode.RegionsForCallingCode(callingCode)
	if len(regions) == 0 {
		return "", false
	}
	if len(regions) == 1 {
		return regions[0], true
	}

	logger := storeLogger(store)
	for _, region := range regions {
		m, ok := store.MetadataForRegion(ctx, region)
		if !ok {
			continue
		}

		if leading := m.LeadingDigitsRegexp(); leading != nil {
			if leading.MatchString(nsn) {
				return region, true
			}
			continue
		}

		if typ := NumberTypeHelper(nsn, m); typ != Unknown {
			return region, true
		}
		logger.Debug(ctx, "region candidate rejected", zap.String("region", region), zap.Error(diagnosticError(nsn, m)))
	}

	return "", false
}

// storeLogger recovers the logger attached to store, falling back to a new
// no-op logger when the Store has none (as in a zero-value Store).
func storeLogger(store *metadata.Store) *logging.ContextLogger {
	if l := store.Logger(); l != nil {
		return l
	}
	return logging.NewContextLogger(zap.NewNop())
}
