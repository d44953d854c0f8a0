// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

// Package diffmatchpatch computes edit scripts between two texts and refines
// them for human legibility.
package diffmatchpatch

import (
	"math"
	"slices"
	"time"
)

// NoTimeout disables the deadline of DiffMain: the search always runs until it
// finds an optimal script.
const NoTimeout time.Duration = math.MaxInt64

// DiffMatchPatch holds the configuration for diff operations.
type DiffMatchPatch struct {
	// Time budget for DiffMain. A zero or negative budget yields a deadline
	// that has already passed, and NoTimeout removes the deadline altogether.
	DiffTimeout time.Duration
	// Skip the half-match speedup even when the budget allows it.
	DisableHalfMatch bool
}

// New creates a new DiffMatchPatch object with default parameters.
func New() *DiffMatchPatch {
	// Defaults.
	return &DiffMatchPatch{
		DiffTimeout: time.Second,
	}
}

// halfMatchEnabled reports whether the current configuration allows the
// half-match heuristic.
func (dmp *DiffMatchPatch) halfMatchEnabled() bool {
	return !dmp.DisableHalfMatch && dmp.DiffTimeout > 0
}

// deadline converts DiffTimeout into an absolute instant. The zero time means
// there is no deadline.
func (dmp *DiffMatchPatch) deadline() time.Time {
	if dmp.DiffTimeout == NoTimeout {
		return time.Time{}
	}
	return time.Now().Add(dmp.DiffTimeout)
}

// splice removes amount elements from diffs at index and inserts elements in
// their place. A caller scanning with a cursor past index must shift it by
// len(elements)-amount.
func splice(diffs []Diff, index int, amount int, elements ...Diff) []Diff {
	return slices.Replace(diffs, index, index+amount, elements...)
}

// Return the index of pattern in target, starting at target[i].
func runesIndexOf(target, pattern []rune, i int) int {
	if i > len(target)-1 {
		return -1
	}
	if i <= 0 {
		return runesIndex(target, pattern)
	}
	ind := runesIndex(target[i:], pattern)
	if ind == -1 {
		return -1
	}
	return ind + i
}

func runesEqual(r1, r2 []rune) bool {
	if len(r1) != len(r2) {
		return false
	}
	for i, c := range r1 {
		if c != r2[i] {
			return false
		}
	}
	return true
}

// The equivalent of strings.Index for rune slices.
func runesIndex(r1, r2 []rune) int {
	last := len(r1) - len(r2)
	for i := 0; i <= last; i++ {
		if runesEqual(r1[i:i+len(r2)], r2) {
			return i
		}
	}
	return -1
}
