package phonenumber

import (
	"context"
	"sync"

	"github.com/abitofhelp/phonenumber/classify"
	"github.com/abitofhelp/phonenumber/config"
	"github.com/abitofhelp/phonenumber/countrycode"
	"github.com/abitofhelp/phonenumber/logging"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/normalize"
	"github.com/abitofhelp/phonenumber/validate"
	"go.uber.org/zap"
)

// Instance owns the metadata store built from a Config. Construct one with
// NewInstance, or use Default for a process-wide convenience instance.
type Instance struct {
	store *metadata.Store
}

// NewInstance builds an Instance from cfg. The country-calling-code index
// (package countrycode) is wired into the metadata store's region-support
// gate, so an unsupported region is rejected before any file lookup.
func NewInstance(cfg config.Config) *Instance {
	base, err := logging.NewLogger(cfg.LogLevel.String(), false)
	if err != nil {
		base = zap.NewNop()
	}

	opts := metadata.DefaultOptions().
		WithPrefix(cfg.MetadataPrefix).
		WithLogger(logging.NewContextLogger(base)).
		WithIsSupportedRegion(countrycode.IsSupportedRegion)

	if cfg.ExternalMetadataFS != nil {
		opts = opts.WithFS(cfg.ExternalMetadataFS)
	}

	return &Instance{store: metadata.NewStore(opts)}
}

var (
	defaultOnce     sync.Once
	defaultInstance *Instance
)

// Default lazily builds and memoizes one process-wide Instance from
// config.Load, for callers that don't need an explicit configuration.
func Default() *Instance {
	defaultOnce.Do(func() {
		cfg, _ := config.Load()
		defaultInstance = NewInstance(cfg)
	})
	return defaultInstance
}

// RegionCodeForNumber resolves the region a number belongs to.
func (i *Instance) RegionCodeForNumber(ctx context.Context, n PhoneNumber) (string, bool) {
	return classify.RegionCodeForNumber(ctx, i.store, n.CountryCode, n.NSN())
}

// NumberType classifies n against the region its own country code resolves
// to, returning UnknownNumberType if no region claims it.
func (i *Instance) NumberType(ctx context.Context, n PhoneNumber) NumberType {
	region, ok := i.RegionCodeForNumber(ctx, n)
	if !ok {
		return UnknownNumberType
	}
	m, ok := i.store.MetadataForRegion(ctx, region)
	if !ok {
		return UnknownNumberType
	}
	return classify.NumberTypeHelper(n.NSN(), m)
}

// IsPossibleNumber reports whether n's NSN has a plausible length and shape
// for its calling code.
func (i *Instance) IsPossibleNumber(ctx context.Context, n PhoneNumber) ValidationResult {
	return validate.IsPossibleNumber(ctx, i.store, n.toValidateNumber())
}

// IsValidNumber reports whether n is valid for the region its own country
// code resolves to.
func (i *Instance) IsValidNumber(ctx context.Context, n PhoneNumber) bool {
	return validate.IsValidNumber(ctx, i.store, n.toValidateNumber())
}

// IsValidNumberForRegion reports whether n is valid specifically for
// region. On rejection it logs a Debug-level explanation via
// validate.ExplainFailure; the explanation never affects the bool returned.
func (i *Instance) IsValidNumberForRegion(ctx context.Context, n PhoneNumber, region string) bool {
	valid := validate.IsValidNumberForRegion(ctx, i.store, n.toValidateNumber(), region)
	if !valid {
		i.store.Logger().Debug(ctx, "number rejected for region",
			zap.String("region", region),
			zap.String("reason", validate.ExplainFailure(ctx, i.store, n.toValidateNumber(), region)))
	}
	return valid
}

// IsAlphaNumber reports whether s is a viable phone number that, once any
// extension is stripped, still contains at least 3 letters. It needs no
// metadata, so it is also available as the package-level IsAlphaNumber.
func (i *Instance) IsAlphaNumber(s string) bool {
	return IsAlphaNumber(s)
}

// IsAlphaNumber reports whether s is a viable phone number that, once any
// extension is stripped, still contains at least 3 letters.
func IsAlphaNumber(s string) bool {
	return validate.IsAlphaNumber(s)
}

// IsViablePhoneNumber reports whether s is cheaply recognizable as the
// shape of a phone number.
func IsViablePhoneNumber(s string) bool {
	return normalize.IsViablePhoneNumber(s)
}

// Normalize reduces s to a pure digit string, folding alpha characters
// through the E.161 keypad mapping when s looks like an alpha number.
func Normalize(s string) string {
	return normalize.Normalize(s)
}

// MaybeStripExtension splits a trailing extension off s, if one is present
// and the remainder is itself a viable phone number.
func MaybeStripExtension(s string) (remainder string, extension string) {
	return normalize.MaybeStripExtension(s)
}
