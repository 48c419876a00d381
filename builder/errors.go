// SPDX-License-Identifier: MIT
// Package: netrel/builder
//
// errors.go - sentinel errors returned by constructors.
// Callers branch with errors.Is; messages carry a "builder:" prefix.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability parameter outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
