// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"bytes"
	"strconv"
)

// Operation defines the operation of a diff item.
type Operation int8

const (
	// DiffDelete item represents a delete diff.
	DiffDelete Operation = -1
	// DiffInsert item represents an insert diff.
	DiffInsert Operation = 1
	// DiffEqual item represents an equal diff.
	DiffEqual Operation = 0
)

func (o Operation) String() string {
	switch o {
	case DiffDelete:
		return "Delete"
	case DiffInsert:
		return "Insert"
	case DiffEqual:
		return "Equal"
	}
	return "Operation(" + strconv.Itoa(int(o)) + ")"
}

// Diff represents one diff operation.
//
// The data structure representing a diff is a slice of Diff values:
// [{DiffDelete, "Hello"}, {DiffInsert, "Goodbye"}, {DiffEqual, " world."}]
// which means: delete "Hello", add "Goodbye" and keep " world."
type Diff struct {
	Type Operation
	Text string
}

// WithText returns a diff of the same operation carrying text.
func (d Diff) WithText(text string) Diff {
	return Diff{Type: d.Type, Text: text}
}

// DiffText1 computes and returns the source text (all equalities and deletions).
func (dmp *DiffMatchPatch) DiffText1(diffs []Diff) string {
	var text bytes.Buffer
	for _, aDiff := range diffs {
		if aDiff.Type != DiffInsert {
			_, _ = text.WriteString(aDiff.Text)
		}
	}
	return text.String()
}

// DiffText2 computes and returns the destination text (all equalities and insertions).
func (dmp *DiffMatchPatch) DiffText2(diffs []Diff) string {
	var text bytes.Buffer
	for _, aDiff := range diffs {
		if aDiff.Type != DiffDelete {
			_, _ = text.WriteString(aDiff.Text)
		}
	}
	return text.String()
}

// DiffLevenshtein computes the Levenshtein distance that is the number of
// inserted, deleted or substituted runes.
func (dmp *DiffMatchPatch) DiffLevenshtein(diffs []Diff) int {
	levenshtein := 0
	insertions := 0
	deletions := 0
	for _, aDiff := range diffs {
		switch aDiff.Type {
		case DiffInsert:
			insertions += runeCount(aDiff.Text)
		case DiffDelete:
			deletions += runeCount(aDiff.Text)
		case DiffEqual:
			// A deletion and an insertion is one substitution.
			levenshtein += max(insertions, deletions)
			insertions = 0
			deletions = 0
		}
	}
	levenshtein += max(insertions, deletions)
	return levenshtein
}

// DiffXIndex translates loc, a rune offset into text1, to the equivalent rune
// offset into text2. A location inside a deletion maps to the start of the
// deletion. For example "The cat" vs "The big cat" maps 1 to 1 and 4 to 8.
func (dmp *DiffMatchPatch) DiffXIndex(diffs []Diff, loc int) int {
	chars1, chars2 := 0, 0
	lastChars1, lastChars2 := 0, 0
	for _, aDiff := range diffs {
		n := runeCount(aDiff.Text)
		if aDiff.Type != DiffInsert {
			chars1 += n
		}
		if aDiff.Type != DiffDelete {
			chars2 += n
		}
		if chars1 > loc {
			// Overshot the location.
			if aDiff.Type == DiffDelete {
				return lastChars2
			}
			break
		}
		lastChars1, lastChars2 = chars1, chars2
	}
	return lastChars2 + (loc - lastChars1)
}
