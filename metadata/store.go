package metadata

import (
	"context"
	"fmt"
	"io/fs"
	"strconv"
	"sync"

	koanf "github.com/knadh/koanf/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"go.uber.org/zap"

	internalerrors "github.com/abitofhelp/phonenumber/errors"
	"github.com/abitofhelp/phonenumber/logging"
)

// Options configures a Store. Use DefaultOptions and the fluent With*
// setters, the same construction idiom the rest of this module uses for its
// configurable components.
type Options struct {
	// Prefix is the metadata file-name prefix: a region's file is
	// "<prefix>_<region>.yaml" under the store's filesystem.
	Prefix string

	// FS is the filesystem metadata files are read from. It defaults to the
	// module's embedded data set; callers that want to supply their own
	// metadata (for example during the generator's own tests) can point
	// this at an external fs.FS instead.
	FS fs.FS

	// Logger receives Debug/Warn diagnostics about load attempts. A nil
	// Logger is replaced with a no-op logger.
	Logger *logging.ContextLogger

	// IsSupportedRegion reports whether a region code is known to the
	// country-calling-code index. A region that fails this check is
	// rejected before the Store ever touches its filesystem. Left nil, the
	// Store accepts every region code and lets the file lookup fail
	// naturally — callers that want strict gating should inject
	// countrycode.IsSupportedRegion here.
	IsSupportedRegion func(region string) bool
}

// DefaultOptions returns an Options using the embedded metadata set with the
// conventional "phonemetadata" file prefix.
func DefaultOptions() Options {
	return Options{
		Prefix: "phonemetadata",
		FS:     defaultFS,
	}
}

// WithPrefix sets the metadata file-name prefix.
func (o Options) WithPrefix(prefix string) Options {
	o.Prefix = prefix
	return o
}

// WithFS overrides the filesystem metadata files are read from.
func (o Options) WithFS(fsys fs.FS) Options {
	o.FS = fsys
	return o
}

// WithLogger sets the logger used for load diagnostics.
func (o Options) WithLogger(logger *logging.ContextLogger) Options {
	o.Logger = logger
	return o
}

// WithIsSupportedRegion sets the region-support predicate.
func (o Options) WithIsSupportedRegion(fn func(region string) bool) Options {
	o.IsSupportedRegion = fn
	return o
}

// Store is a lazy, concurrency-safe, immutable cache of PhoneMetadata. Each
// region or non-geographical calling code that loads successfully is read
// and parsed once; after that, lookups are served from memory for the
// remainder of the process. A failed load is not cached, so the next lookup
// of that key reads the file again.
type Store struct {
	mu    sync.RWMutex
	cache map[string]*PhoneMetadata

	prefix            string
	fsys              fs.FS
	logger            *logging.ContextLogger
	isSupportedRegion func(region string) bool
}

// NewStore builds a Store from the given Options.
func NewStore(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewContextLogger(zap.NewNop())
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = defaultFS
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "phonemetadata"
	}

	isSupported := opts.IsSupportedRegion
	if isSupported == nil {
		isSupported = func(string) bool { return true }
	}

	return &Store{
		cache:             make(map[string]*PhoneMetadata),
		prefix:            prefix,
		fsys:              fsys,
		logger:            logger,
		isSupportedRegion: isSupported,
	}
}

// Logger returns the Store's configured diagnostic logger, so other
// packages composing on top of a Store (notably classify) can log under the
// same sink rather than constructing their own.
func (s *Store) Logger() *logging.ContextLogger {
	return s.logger
}

// MetadataForRegion returns the metadata for a geographic region code, and
// whether it was found. An unsupported region is rejected without touching
// the filesystem.
func (s *Store) MetadataForRegion(ctx context.Context, region string) (*PhoneMetadata, bool) {
	if region == "" || region == UnknownRegion || region == NonGeoRegion {
		return nil, false
	}
	if !s.isSupportedRegion(region) {
		s.logger.Debug(ctx, "region not in supported set", zap.String("region", region))
		return nil, false
	}
	return s.load(ctx, region, region)
}

// MetadataForNonGeographicalRegion returns the metadata for a non-geographic
// calling code (e.g. 800, 808), and whether it was found.
func (s *Store) MetadataForNonGeographicalRegion(ctx context.Context, countryCode int) (*PhoneMetadata, bool) {
	key := strconv.Itoa(countryCode)
	return s.load(ctx, NonGeoRegion+":"+key, key)
}

func (s *Store) load(ctx context.Context, cacheKey, fileKey string) (*PhoneMetadata, bool) {
	s.mu.RLock()
	if m, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return m, true
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have populated the entry while we waited for
	// the write lock.
	if m, ok := s.cache[cacheKey]; ok {
		return m, true
	}

	filename := fmt.Sprintf("data/%s_%s.yaml", s.prefix, fileKey)
	raw, err := fs.ReadFile(s.fsys, filename)
	if err != nil {
		s.logger.Debug(ctx, "metadata file not found", zap.String("file", filename), zap.Error(err))
		return nil, false
	}

	m, err := decode(raw)
	if err != nil {
		domErr := internalerrors.NewMetadataUnavailable(fileKey, err)
		s.logger.Warn(ctx, "metadata parse failed", zap.String("file", filename), zap.Error(domErr))
		return nil, false
	}

	s.cache[cacheKey] = m
	return m, true
}

// decode parses a declarative YAML metadata record into a PhoneMetadata,
// using the same koanf + yaml-parser + rawbytes-provider stack this module
// uses for every other piece of declarative configuration.
func decode(raw []byte) (*PhoneMetadata, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(raw), yaml.Parser()); err != nil {
		return nil, err
	}

	var m PhoneMetadata
	if err := k.UnmarshalWithConf("", &m, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, err
	}
	return &m, nil
}
