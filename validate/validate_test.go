// Copyright (c) 2025 A Bit of Help, Inc.

package validate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abitofhelp/phonenumber/countrycode"
	"github.com/abitofhelp/phonenumber/metadata"
)

func newTestStore() *metadata.Store {
	return metadata.NewStore(metadata.DefaultOptions().WithIsSupportedRegion(countrycode.IsSupportedRegion))
}

func TestNumber_NSN(t *testing.T) {
	n := Number{CountryCode: 39, NationalNumber: 236618300, ItalianLeadingZero: true}
	assert.Equal(t, "0236618300", n.NSN())

	n2 := Number{CountryCode: 1, NationalNumber: 6502530000}
	assert.Equal(t, "6502530000", n2.NSN())
}

func TestIsPossibleNumber_InvalidCountryCode(t *testing.T) {
	store := newTestStore()
	n := Number{CountryCode: 999, NationalNumber: 12345}
	assert.Equal(t, InvalidCountryCode, IsPossibleNumber(context.Background(), store, n))
}

func TestIsPossibleNumber_TooShort(t *testing.T) {
	store := newTestStore()
	n := Number{CountryCode: 49, NationalNumber: 12}
	assert.Equal(t, TooShort, IsPossibleNumber(context.Background(), store, n))
}

func TestIsPossibleNumber_IsPossible(t *testing.T) {
	store := newTestStore()
	n := Number{CountryCode: 1, NationalNumber: 6502530000}
	assert.Equal(t, IsPossible, IsPossibleNumber(context.Background(), store, n))
}

func TestIsPossibleNumber_TooShort_PatternRejected(t *testing.T) {
	store := newTestStore()
	// 5 digits: within the overall [3,15] bound, but short of DE's
	// general_desc possible-number pattern ("\d{6,11}"), and no prefix of it
	// would ever satisfy that pattern either.
	n := Number{CountryCode: 49, NationalNumber: 12345}
	assert.Equal(t, TooShort, IsPossibleNumber(context.Background(), store, n))
}

func TestIsPossibleNumber_TooLong(t *testing.T) {
	store := newTestStore()
	// 11 digits: its first 10 satisfy US's exact "\d{10}" possible pattern,
	// so the excess trailing digit makes this too long, not too short.
	n := Number{CountryCode: 1, NationalNumber: 65025300001}
	assert.Equal(t, TooLong, IsPossibleNumber(context.Background(), store, n))
}

func TestIsValidNumber_NANPA(t *testing.T) {
	store := newTestStore()

	us := Number{CountryCode: 1, NationalNumber: 6502530000}
	assert.True(t, IsValidNumber(context.Background(), store, us))

	ca := Number{CountryCode: 1, NationalNumber: 6043011234}
	assert.True(t, IsValidNumber(context.Background(), store, ca))
}

func TestIsValidNumberForRegion_CountryCodeMismatch(t *testing.T) {
	store := newTestStore()

	n := Number{CountryCode: 1, NationalNumber: 6502530000}
	assert.False(t, IsValidNumberForRegion(context.Background(), store, n, "DE"))
}

func TestIsValidNumberForRegion_NonGeographic(t *testing.T) {
	store := newTestStore()

	n := Number{CountryCode: 800, NationalNumber: 12345678}
	assert.True(t, IsValidNumberForRegion(context.Background(), store, n, metadata.NonGeoRegion))
}

func TestIsValidNumberForRegion_ItalianLeadingZero(t *testing.T) {
	store := newTestStore()

	n := Number{CountryCode: 39, NationalNumber: 236618300, ItalianLeadingZero: true}
	assert.True(t, IsValidNumberForRegion(context.Background(), store, n, "IT"))
}

func TestExplainFailure_CountryCodeMismatch(t *testing.T) {
	store := newTestStore()

	n := Number{CountryCode: 1, NationalNumber: 6502530000}
	reason := ExplainFailure(context.Background(), store, n, "DE")
	assert.Contains(t, reason, "country code does not match region")
}

func TestExplainFailure_EmptyRegion(t *testing.T) {
	store := newTestStore()

	n := Number{CountryCode: 1, NationalNumber: 6502530000}
	assert.Equal(t, "region is empty", ExplainFailure(context.Background(), store, n, ""))
}

func TestExplainFailure_NoReasonWhenValid(t *testing.T) {
	store := newTestStore()

	n := Number{CountryCode: 1, NationalNumber: 6502530000}
	assert.Equal(t, "", ExplainFailure(context.Background(), store, n, "US"))
}

func TestIsAlphaNumber(t *testing.T) {
	assert.True(t, IsAlphaNumber("1-800-MICROSOFT"))
	assert.False(t, IsAlphaNumber("6502530000"))
	assert.False(t, IsAlphaNumber("12"))
}
