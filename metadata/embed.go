package metadata

import "embed"

// defaultFS is the built-in metadata set. It ships a representative,
// not-exhaustive region set; adding a region is purely a matter of dropping
// in one more YAML file here, no code change required.
//
//go:embed data/*.yaml
var defaultFS embed.FS
