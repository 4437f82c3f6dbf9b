package metadata

import (
	"regexp"
	"sync"
)

// UnknownRegion is the sentinel region code returned when a calling code has
// no entry in the country-code index.
const UnknownRegion = "ZZ"

// NonGeoRegion is the region code reserved for non-geographical entities,
// such as calling codes 800 (UIFN) and 808 (ISCS).
const NonGeoRegion = "001"

// naSentinel is the pattern string meaning "no numbers of this type exist
// for this region"; it must never match any input.
const naSentinel = "NA"

// PhoneNumberDesc describes the numbering plan for a single semantic
// category within a region: general, fixed-line, mobile, toll-free, and so
// on. NationalNumberPattern and PossibleNumberPattern are anchored regexes
// over digits; PossibleNumberPattern is a cheaper length-class sieve
// evaluated alongside the full pattern.
type PhoneNumberDesc struct {
	NationalNumberPattern string `yaml:"national_number_pattern"`
	PossibleNumberPattern string `yaml:"possible_number_pattern"`
	ExampleNumber         string `yaml:"example_number"`

	compileOnce sync.Once
	national    *regexp.Regexp
	possible    *regexp.Regexp
}

func (d *PhoneNumberDesc) compile() {
	d.national = CompilePattern(d.NationalNumberPattern)
	d.possible = CompilePattern(d.PossibleNumberPattern)
}

// NationalRegexp returns the compiled, anchored national-number-pattern
// regex, or nil if the category has no pattern (absent, empty, or the "NA"
// sentinel).
func (d *PhoneNumberDesc) NationalRegexp() *regexp.Regexp {
	if d == nil {
		return nil
	}
	d.compileOnce.Do(d.compile)
	return d.national
}

// PossibleRegexp returns the compiled, anchored possible-number-pattern
// regex, or nil under the same conditions as NationalRegexp.
func (d *PhoneNumberDesc) PossibleRegexp() *regexp.Regexp {
	if d == nil {
		return nil
	}
	d.compileOnce.Do(d.compile)
	return d.possible
}

// Matches reports whether nsn satisfies both the possible-number and the
// national-number pattern for this category. A nil desc, or a desc with no
// compiled pattern, never matches.
func (d *PhoneNumberDesc) Matches(nsn string) bool {
	if d == nil {
		return false
	}
	national := d.NationalRegexp()
	possible := d.PossibleRegexp()
	return national != nil && possible != nil && national.MatchString(nsn) && possible.MatchString(nsn)
}

// CompilePattern compiles a metadata pattern string into an anchored,
// case-insensitive, Unicode-aware regex. The empty string and the "NA"
// sentinel both mean "no pattern", and compile to nil rather than a regex
// that could never match.
func CompilePattern(pattern string) *regexp.Regexp {
	if pattern == "" || pattern == naSentinel {
		return nil
	}
	return regexp.MustCompile(`(?i)^(?:` + pattern + `)$`)
}

// CompilePrefixPattern compiles a metadata pattern string for a
// prefix-of-NSN match rather than a whole-string match: only the start is
// anchored. Used for PhoneMetadata.LeadingDigits, which disambiguates
// regions sharing a calling code before the full classifier ladder runs.
func CompilePrefixPattern(pattern string) *regexp.Regexp {
	if pattern == "" || pattern == naSentinel {
		return nil
	}
	return regexp.MustCompile(`(?i)^(?:` + pattern + `)`)
}

// NumberFormat is a single rendering rule: a pattern to match against the
// NSN, a template with $1..$N back-references, and an optional ordered list
// of leading-digit alternatives used to pick among formats sharing the same
// pattern. Formatting itself is out of scope here; the model is carried so
// a future formatting subsystem has something to consume.
type NumberFormat struct {
	Pattern                           string   `yaml:"pattern"`
	Format                            string   `yaml:"format"`
	LeadingDigitsPatterns             []string `yaml:"leading_digits_patterns"`
	NationalPrefixFormattingRule      string   `yaml:"national_prefix_formatting_rule"`
	DomesticCarrierCodeFormattingRule string   `yaml:"domestic_carrier_code_formatting_rule"`
}

// PhoneMetadata is the complete numbering-plan record for one region, or for
// one non-geographical calling code (ID NonGeoRegion).
type PhoneMetadata struct {
	ID           string `yaml:"id"`
	CountryCode  int    `yaml:"country_code"`

	InternationalPrefix          string `yaml:"international_prefix"`
	PreferredInternationalPrefix string `yaml:"preferred_international_prefix"`
	NationalPrefix                string `yaml:"national_prefix"`
	PreferredExtnPrefix           string `yaml:"preferred_extn_prefix"`
	NationalPrefixForParsing      string `yaml:"national_prefix_for_parsing"`
	NationalPrefixTransformRule   string `yaml:"national_prefix_transform_rule"`

	// GeneralDesc is authoritative for the region's overall NSN shape; every
	// other category is a refinement of it.
	GeneralDesc             *PhoneNumberDesc `yaml:"general_desc"`
	FixedLine               *PhoneNumberDesc `yaml:"fixed_line"`
	Mobile                  *PhoneNumberDesc `yaml:"mobile"`
	TollFree                *PhoneNumberDesc `yaml:"toll_free"`
	PremiumRate             *PhoneNumberDesc `yaml:"premium_rate"`
	SharedCost              *PhoneNumberDesc `yaml:"shared_cost"`
	Voip                    *PhoneNumberDesc `yaml:"voip"`
	PersonalNumber          *PhoneNumberDesc `yaml:"personal_number"`
	Pager                   *PhoneNumberDesc `yaml:"pager"`
	Uan                     *PhoneNumberDesc `yaml:"uan"`
	Voicemail               *PhoneNumberDesc `yaml:"voicemail"`
	Emergency               *PhoneNumberDesc `yaml:"emergency"`
	ShortCode               *PhoneNumberDesc `yaml:"short_code"`
	StandardRate            *PhoneNumberDesc `yaml:"standard_rate"`
	NoInternationalDialling *PhoneNumberDesc `yaml:"no_international_dialling"`

	NumberFormat     []NumberFormat `yaml:"number_format"`
	IntlNumberFormat []NumberFormat `yaml:"intl_number_format"`

	// MainCountryForCode is true for exactly one region in a list of regions
	// sharing a calling code; it is the deterministic tie-break answer for
	// "region for code" when no other region claims a number.
	MainCountryForCode bool `yaml:"main_country_for_code"`

	LeadingZeroPossible bool `yaml:"leading_zero_possible"`

	// SameMobileAndFixedLinePattern is a pattern-identity hint: when true,
	// the classifier returns FIXED_LINE_OR_MOBILE rather than trying to
	// pick one over the other.
	SameMobileAndFixedLinePattern bool `yaml:"same_mobile_and_fixed_line_pattern"`

	// LeadingDigits disambiguates regions that share a calling code: when
	// set, a region claims a number if this pattern matches as a prefix of
	// the NSN, before the classifier ladder is even consulted.
	LeadingDigits string `yaml:"leading_digits"`

	leadingDigitsOnce sync.Once
	leadingDigitsRe   *regexp.Regexp
}

// LeadingDigitsRegexp returns the compiled, start-anchored LeadingDigits
// regex, or nil if the region has none.
func (m *PhoneMetadata) LeadingDigitsRegexp() *regexp.Regexp {
	if m == nil {
		return nil
	}
	m.leadingDigitsOnce.Do(func() {
		m.leadingDigitsRe = CompilePrefixPattern(m.LeadingDigits)
	})
	return m.leadingDigitsRe
}
