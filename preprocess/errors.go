package preprocess

import "errors"

// ErrInvalidLambda is returned when BuildOmegaGraph is given a
// scalarization weight outside [0, 1].
var ErrInvalidLambda = errors.New("preprocess: lambda must be in [0, 1]")
