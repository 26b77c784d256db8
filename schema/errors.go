package schema

import "errors"

// ErrInvalidInput marks malformed data arriving from an external source,
// such as an inference provider response that fails shape validation or an
// out-of-range feedback rating. It is the only error class the analysis
// pipeline raises for bad data; degraded pixel input never errors and is
// reported through ClassificationResult instead.
var ErrInvalidInput = errors.New("invalid input")
