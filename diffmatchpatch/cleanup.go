// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Define some regex patterns for matching boundaries.
var (
	blanklineEndRegex   = regexp.MustCompile(`\n\r?\n\z`)
	blanklineStartRegex = regexp.MustCompile(`\A\r?\n\r?\n`)
)

// DiffCleanupMerge reorders and merges like edit sections. Merge equalities.
// Any edit section can move as long as it doesn't cross an equality.
// The input slice is left untouched.
func (dmp *DiffMatchPatch) DiffCleanupMerge(diffs []Diff) []Diff {
	return cleanupMerge(slices.Clone(diffs))
}

// cleanupMerge works on diffs in place.
func cleanupMerge(diffs []Diff) []Diff {
	for {
		diffs = mergeRuns(diffs)
		var changes bool
		// If shifts were made, the diff needs reordering and another shift sweep.
		if diffs, changes = shiftSingleEdits(diffs); !changes {
			return diffs
		}
	}
}

// mergeRuns coalesces every run of deletions and insertions between two
// equalities into at most one deletion followed by one insertion, moving their
// common prefix and suffix into the neighbouring equalities. Adjacent
// equalities are joined and records with empty text are dropped.
func mergeRuns(diffs []Diff) []Diff {
	// Add a dummy entry at the end.
	diffs = append(diffs, Diff{DiffEqual, ""})
	pointer := 0
	countDelete := 0
	countInsert := 0
	var textDelete []rune
	var textInsert []rune

	for pointer < len(diffs) {
		if diffs[pointer].Text == "" && pointer != len(diffs)-1 {
			diffs = splice(diffs, pointer, 1)
			continue
		}
		switch diffs[pointer].Type {
		case DiffInsert:
			countInsert++
			textInsert = append(textInsert, []rune(diffs[pointer].Text)...)
			pointer++
		case DiffDelete:
			countDelete++
			textDelete = append(textDelete, []rune(diffs[pointer].Text)...)
			pointer++
		case DiffEqual:
			// Upon reaching an equality, check for prior redundancies.
			if countDelete+countInsert > 1 {
				if countDelete != 0 && countInsert != 0 {
					// Factor out any common prefixes.
					if commonlength := commonPrefixLength(textInsert, textDelete); commonlength != 0 {
						x := pointer - countDelete - countInsert
						if x > 0 && diffs[x-1].Type == DiffEqual {
							diffs[x-1].Text += string(textInsert[:commonlength])
						} else {
							diffs = splice(diffs, x, 0, Diff{DiffEqual, string(textInsert[:commonlength])})
							pointer++
						}
						textInsert = textInsert[commonlength:]
						textDelete = textDelete[commonlength:]
					}
					// Factor out any common suffixes.
					if commonlength := commonSuffixLength(textInsert, textDelete); commonlength != 0 {
						insertIndex := len(textInsert) - commonlength
						deleteIndex := len(textDelete) - commonlength
						diffs[pointer].Text = string(textInsert[insertIndex:]) + diffs[pointer].Text
						textInsert = textInsert[:insertIndex]
						textDelete = textDelete[:deleteIndex]
					}
				}
				// Delete the offending records and add the merged ones.
				var merged []Diff
				if len(textDelete) != 0 {
					merged = append(merged, Diff{DiffDelete, string(textDelete)})
				}
				if len(textInsert) != 0 {
					merged = append(merged, Diff{DiffInsert, string(textInsert)})
				}
				pointer -= countDelete + countInsert
				diffs = splice(diffs, pointer, countDelete+countInsert, merged...)
				pointer += len(merged)
				// A run that vanished entirely leaves this equality next to the
				// previous one; stay on it so the two are joined.
				if len(merged) != 0 {
					pointer++
				}
			} else if pointer != 0 && diffs[pointer-1].Type == DiffEqual {
				// Merge this equality with the previous one.
				diffs[pointer-1].Text += diffs[pointer].Text
				diffs = splice(diffs, pointer, 1)
			} else {
				pointer++
			}
			countInsert = 0
			countDelete = 0
			textDelete = nil
			textInsert = nil
		}
	}

	if len(diffs) != 0 && diffs[len(diffs)-1].Text == "" {
		diffs = diffs[:len(diffs)-1] // Remove the dummy entry at the end.
	}
	if len(diffs) == 0 {
		return nil
	}
	return diffs
}

// shiftSingleEdits looks for single edits surrounded on both sides by
// equalities which can be shifted sideways to eliminate an equality.
// E.g: A<ins>BA</ins>C -> <ins>AB</ins>AC
func shiftSingleEdits(diffs []Diff) ([]Diff, bool) {
	changes := false
	// Intentionally ignore the first and last element (don't need checking).
	for pointer := 1; pointer < len(diffs)-1; pointer++ {
		if diffs[pointer-1].Type != DiffEqual || diffs[pointer+1].Type != DiffEqual {
			continue
		}
		// This is a single edit surrounded by equalities.
		previous := diffs[pointer-1].Text
		edit := diffs[pointer].Text
		next := diffs[pointer+1].Text
		if strings.HasSuffix(edit, previous) {
			// Shift the edit over the previous equality.
			diffs[pointer].Text = previous + edit[:len(edit)-len(previous)]
			diffs[pointer+1].Text = previous + next
			diffs = splice(diffs, pointer-1, 1)
			changes = true
		} else if strings.HasPrefix(edit, next) {
			// Shift the edit over the next equality.
			diffs[pointer-1].Text += next
			diffs[pointer].Text = edit[len(next):] + next
			diffs = splice(diffs, pointer+1, 1)
			changes = true
		}
	}
	return diffs, changes
}

// maxSemanticPasses bounds the passes DiffCleanupSemantic makes while looking
// for a script it no longer changes.
const maxSemanticPasses = 8

// DiffCleanupSemantic reduces the number of edits by eliminating semantically
// trivial equalities. The input slice is left untouched, and cleaning the
// result again returns it unchanged.
func (dmp *DiffMatchPatch) DiffCleanupSemantic(diffs []Diff) []Diff {
	diffs = slices.Clone(diffs)
	for pass := 0; pass < maxSemanticPasses; pass++ {
		next := cleanupSemanticPass(slices.Clone(diffs))
		if slices.Equal(next, diffs) {
			break
		}
		diffs = next
	}
	return diffs
}

func cleanupSemanticPass(diffs []Diff) []Diff {
	diffs = eliminateSmallEqualities(diffs)
	diffs, removed := cleanupSemanticLossless(diffs)
	if removed {
		// Edits that met over a consumed equality must be joined.
		diffs = cleanupMerge(diffs)
	}
	return eliminateOverlaps(diffs)
}

// eliminateSmallEqualities turns every equality that is no longer than the
// edits on both sides of it into a deletion and an insertion.
func eliminateSmallEqualities(diffs []Diff) []Diff {
	changes := false
	// Stack of indices where equalities are found.
	equalities := make([]int, 0, len(diffs))

	var lastequality string
	hasLastEquality := false
	// Always equal to diffs[equalities[equalitiesLength - 1]][1]
	var pointer int // Index of current position.
	// Number of characters that changed prior to the equality.
	var lengthInsertions1, lengthDeletions1 int
	// Number of characters that changed after the equality.
	var lengthInsertions2, lengthDeletions2 int

	for pointer < len(diffs) {
		if diffs[pointer].Type == DiffEqual {
			// Equality found.
			equalities = append(equalities, pointer)
			lengthInsertions1 = lengthInsertions2
			lengthDeletions1 = lengthDeletions2
			lengthInsertions2 = 0
			lengthDeletions2 = 0
			lastequality = diffs[pointer].Text
			hasLastEquality = true
		} else {
			// An insertion or deletion.
			if diffs[pointer].Type == DiffInsert {
				lengthInsertions2 += runeCount(diffs[pointer].Text)
			} else {
				lengthDeletions2 += runeCount(diffs[pointer].Text)
			}
			// Eliminate an equality that is smaller or equal to the edits on both sides of it.
			difference1 := max(lengthInsertions1, lengthDeletions1)
			difference2 := max(lengthInsertions2, lengthDeletions2)
			if hasLastEquality {
				if n := runeCount(lastequality); n <= difference1 && n <= difference2 {
					// Duplicate record.
					insPoint := equalities[len(equalities)-1]
					diffs = splice(diffs, insPoint, 0, Diff{DiffDelete, lastequality})

					// Change second copy to insert.
					diffs[insPoint+1].Type = DiffInsert
					// Throw away the equality we just deleted.
					// Throw away the previous equality (it needs to be reevaluated).
					equalities = equalities[:max(0, len(equalities)-2)]

					// Rewind to the previous equality, or to the start so the
					// increment below resumes at index 0.
					pointer = -1
					if len(equalities) > 0 {
						pointer = equalities[len(equalities)-1]
					}

					lengthInsertions1 = 0 // Reset the counters.
					lengthDeletions1 = 0
					lengthInsertions2 = 0
					lengthDeletions2 = 0
					lastequality = ""
					hasLastEquality = false
					changes = true
				}
			}
		}
		pointer++
	}

	// Normalize the diff.
	if changes {
		diffs = cleanupMerge(diffs)
	}
	return diffs
}

// eliminateOverlaps finds overlaps between deletions and insertions and turns
// the overlapping region into an equality. Only an overlap at least half as
// long as the deletion or the insertion is extracted.
// e.g: <del>abcxxx</del><ins>xxxdef</ins>
//
//	-> <del>abc</del>xxx<ins>def</ins>
//
// e.g: <del>xxxabc</del><ins>defxxx</ins>
//
//	-> <ins>def</ins>xxx<del>abc</del>
func eliminateOverlaps(diffs []Diff) []Diff {
	pointer := 1
	for pointer < len(diffs) {
		if diffs[pointer-1].Type == DiffDelete &&
			diffs[pointer].Type == DiffInsert {
			deletion := []rune(diffs[pointer-1].Text)
			insertion := []rune(diffs[pointer].Text)
			overlapLength1 := commonOverlapLength(deletion, insertion)
			overlapLength2 := commonOverlapLength(insertion, deletion)
			if overlapLength1 >= overlapLength2 {
				if overlapLength1 > 0 && (overlapLength1*2 >= len(deletion) || overlapLength1*2 >= len(insertion)) {
					// Overlap found. Insert an equality and trim the surrounding edits.
					diffs = splice(diffs, pointer, 0, Diff{DiffEqual, string(insertion[:overlapLength1])})
					diffs[pointer-1].Text = string(deletion[:len(deletion)-overlapLength1])
					diffs[pointer+1].Text = string(insertion[overlapLength1:])
					pointer++
				}
			} else {
				if overlapLength2*2 >= len(deletion) || overlapLength2*2 >= len(insertion) {
					// Reverse overlap found. Insert an equality and swap and trim the surrounding edits.
					diffs = splice(diffs, pointer, 0, Diff{DiffEqual, string(deletion[:overlapLength2])})
					diffs[pointer-1] = Diff{DiffInsert, string(insertion[:len(insertion)-overlapLength2])}
					diffs[pointer+1] = Diff{DiffDelete, string(deletion[overlapLength2:])}
					pointer++
				}
			}
			pointer++
		}
		pointer++
	}
	return diffs
}

// DiffCleanupSemanticLossless looks for single edits surrounded on both sides
// by equalities which can be shifted sideways to align the edit to a word
// boundary.
// E.g: The c<ins>at c</ins>ame. -> The <ins>cat </ins>came.
func (dmp *DiffMatchPatch) DiffCleanupSemanticLossless(diffs []Diff) []Diff {
	diffs, removed := cleanupSemanticLossless(slices.Clone(diffs))
	if removed {
		diffs = cleanupMerge(diffs)
	}
	return diffs
}

// cleanupSemanticLossless reports whether an equality was consumed entirely,
// which can leave two edits of the same kind side by side.
func cleanupSemanticLossless(diffs []Diff) ([]Diff, bool) {
	removed := false
	pointer := 1

	// Intentionally ignore the first and last element (don't need checking).
	for pointer < len(diffs)-1 {
		if diffs[pointer-1].Type == DiffEqual &&
			diffs[pointer+1].Type == DiffEqual {

			// This is a single edit surrounded by equalities.
			equality1 := diffs[pointer-1].Text
			edit := diffs[pointer].Text
			equality2 := diffs[pointer+1].Text

			// First, shift the edit as far left as possible.
			editRunes := []rune(edit)
			if commonOffset := commonSuffixLength([]rune(equality1), editRunes); commonOffset > 0 {
				commonString := string(editRunes[len(editRunes)-commonOffset:])
				equality1 = equality1[:len(equality1)-len(commonString)]
				edit = commonString + edit[:len(edit)-len(commonString)]
				equality2 = commonString + equality2
			}

			// Second, step character by character right, looking for the best fit.
			bestEquality1 := equality1
			bestEdit := edit
			bestEquality2 := equality2
			bestScore := diffCleanupSemanticScore(equality1, edit) +
				diffCleanupSemanticScore(edit, equality2)

			for edit != "" && equality2 != "" {
				first := firstRune(edit)
				if first != firstRune(equality2) {
					break
				}
				equality1 += first
				edit = edit[len(first):] + first
				equality2 = equality2[len(first):]
				score := diffCleanupSemanticScore(equality1, edit) +
					diffCleanupSemanticScore(edit, equality2)
				// The >= encourages trailing rather than leading whitespace on edits.
				if score >= bestScore {
					bestScore = score
					bestEquality1 = equality1
					bestEdit = edit
					bestEquality2 = equality2
				}
			}

			if diffs[pointer-1].Text != bestEquality1 {
				// We have an improvement, save it back to the diff.
				if len(bestEquality1) != 0 {
					diffs[pointer-1].Text = bestEquality1
				} else {
					diffs = splice(diffs, pointer-1, 1)
					pointer--
					removed = true
				}

				diffs[pointer].Text = bestEdit
				if len(bestEquality2) != 0 {
					diffs[pointer+1].Text = bestEquality2
				} else {
					diffs = splice(diffs, pointer+1, 1)
					pointer--
					removed = true
				}
			}
		}
		pointer++
	}

	return diffs, removed
}

// diffCleanupSemanticScore computes a score representing whether the internal
// boundary falls on logical boundaries.
// Scores range from 6 (best) to 0 (worst).
func diffCleanupSemanticScore(one, two string) int {
	if len(one) == 0 || len(two) == 0 {
		// Edges are the best.
		return 6
	}

	// Each port of this function behaves slightly differently due to subtle
	// differences in each language's definition of things like 'whitespace'.
	// Since this function's purpose is largely cosmetic, the choice has been
	// made to use each language's native features rather than force total
	// conformity.
	char1, _ := utf8.DecodeLastRuneInString(one)
	char2, _ := utf8.DecodeRuneInString(two)

	nonAlphaNumeric1 := !isAlphanumeric(char1)
	nonAlphaNumeric2 := !isAlphanumeric(char2)
	whitespace1 := nonAlphaNumeric1 && unicode.IsSpace(char1)
	whitespace2 := nonAlphaNumeric2 && unicode.IsSpace(char2)
	lineBreak1 := whitespace1 && isNewline(char1)
	lineBreak2 := whitespace2 && isNewline(char2)
	blankLine1 := lineBreak1 && blanklineEndRegex.MatchString(one)
	blankLine2 := lineBreak2 && blanklineStartRegex.MatchString(two)

	if blankLine1 || blankLine2 {
		// Five points for blank lines.
		return 5
	} else if lineBreak1 || lineBreak2 {
		// Four points for line breaks.
		return 4
	} else if nonAlphaNumeric1 && !whitespace1 && whitespace2 {
		// Three points for end of sentences.
		return 3
	} else if whitespace1 || whitespace2 {
		// Two points for whitespace.
		return 2
	} else if nonAlphaNumeric1 || nonAlphaNumeric2 {
		// One point for non-alphanumeric.
		return 1
	}
	return 0
}

func isAlphanumeric(r rune) bool {
	return unicode.In(r, unicode.Letter, unicode.Mark, unicode.Number)
}

func isNewline(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// firstRune returns the leading rune of text as a string.
func firstRune(text string) string {
	_, size := utf8.DecodeRuneInString(text)
	return text[:size]
}
