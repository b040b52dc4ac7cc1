package assets

import "errors"

// ErrNoPath is returned for assets that were not configured.
var ErrNoPath = errors.New("no asset path configured")
