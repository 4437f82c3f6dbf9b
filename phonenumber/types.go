package phonenumber

import (
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/abitofhelp/phonenumber/classify"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/validate"
)

// CountryCodeSource records how a PhoneNumber's country code was
// determined, for numbers parsed from free-form text.
type CountryCodeSource int

const (
	FromNumberWithPlus CountryCodeSource = iota
	FromNumberWithIDD
	FromNumberWithoutPlusSign
	FromDefaultCountry
)

// NumberType is the classifier's verdict on what kind of number a
// PhoneNumber is. It is an alias of classify.NumberType: the classifier
// owns the enum, this package just re-exports it at the public surface.
type NumberType = classify.NumberType

const (
	FixedLine         = classify.FixedLine
	Mobile            = classify.Mobile
	FixedLineOrMobile = classify.FixedLineOrMobile
	TollFree          = classify.TollFree
	PremiumRate       = classify.PremiumRate
	SharedCost        = classify.SharedCost
	Voip              = classify.Voip
	PersonalNumber    = classify.PersonalNumber
	Pager             = classify.Pager
	Uan               = classify.Uan
	UnknownNumberType = classify.Unknown
)

// ValidationResult is the outcome of a possibility check. It is an alias of
// validate.Result for the same reason NumberType aliases classify.NumberType.
type ValidationResult = validate.Result

const (
	IsPossible         = validate.IsPossible
	InvalidCountryCode = validate.InvalidCountryCode
	TooShort           = validate.TooShort
	TooLong            = validate.TooLong
)

// NumberFormat selects a rendering style for a formatter. No formatter
// ships in this module (see DESIGN.md); the constants are
// carried because they are part of the documented external interface a
// future formatting subsystem would consume.
type NumberFormat int

const (
	E164 NumberFormat = iota
	International
	National
	RFC3966
)

// MatchType is the outcome of comparing two phone numbers for equivalence.
// No comparison operation ships in this module; the constants are carried
// for the same reason NumberFormat's are.
type MatchType int

const (
	NotANumber MatchType = iota
	NoMatch
	ShortNSNMatch
	NSNMatch
	ExactMatch
)

// UnknownRegion and NonGeoRegion re-export the metadata package's region
// sentinels at the public surface.
const (
	UnknownRegion = metadata.UnknownRegion
	NonGeoRegion  = metadata.NonGeoRegion
)

var (
	structValidatorOnce sync.Once
	structValidator     *validator.Validate
)

func getStructValidator() *validator.Validate {
	structValidatorOnce.Do(func() {
		structValidator = validator.New()
	})
	return structValidator
}

// PhoneNumber is the neutral, serializable carrier of a parsed number.
// Two instances are equal iff every field matches; ItalianLeadingZero is
// part of identity because it changes the national significant number the
// classifier and validator operate on.
type PhoneNumber struct {
	CountryCode                  int               `validate:"required,min=1,max=999"`
	NationalNumber               uint64            `validate:"required"`
	ItalianLeadingZero           bool
	Extension                    string            `validate:"omitempty,numeric,min=1,max=7"`
	CountryCodeSource            CountryCodeSource `validate:"min=0,max=3"`
	PreferredDomesticCarrierCode string
}

// Validate checks the struct-shape invariants declared in the field tags
// above (country code range, national number presence, extension shape).
// This is distinct from the domain-level validity checks in
// Instance.IsValidNumber, which do not call it.
func (n PhoneNumber) Validate() error {
	return getStructValidator().Struct(n)
}

// NSN composes the national significant number, prefixing a literal "0"
// when ItalianLeadingZero is set.
func (n PhoneNumber) NSN() string {
	if n.ItalianLeadingZero {
		return "0" + strconv.FormatUint(n.NationalNumber, 10)
	}
	return strconv.FormatUint(n.NationalNumber, 10)
}

func (n PhoneNumber) toValidateNumber() validate.Number {
	return validate.Number{
		CountryCode:        n.CountryCode,
		NationalNumber:     n.NationalNumber,
		ItalianLeadingZero: n.ItalianLeadingZero,
	}
}
