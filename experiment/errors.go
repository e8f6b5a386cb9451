package experiment

import "errors"

// ErrMalformedExperiment indicates an experiment file that does not name a
// mapping, a PE array and a statement.
var ErrMalformedExperiment = errors.New("experiment: expected mapping, PE array and statement files")
