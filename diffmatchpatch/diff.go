// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"time"
)

// DiffMain finds the differences between two texts.
// The search is bounded by DiffTimeout; see DiffMatchPatch.
func (dmp *DiffMatchPatch) DiffMain(text1, text2 string) []Diff {
	return dmp.DiffMainRunes([]rune(text1), []rune(text2))
}

// DiffMainRunes finds the differences between two rune sequences.
func (dmp *DiffMatchPatch) DiffMainRunes(text1, text2 []rune) []Diff {
	return dmp.diffMainRunes(text1, text2, dmp.halfMatchEnabled(), dmp.deadline())
}

// diffMainRunes is the recursive entry point. The deadline is passed by value
// so independent diffs never share state; the zero time means no deadline.
func (dmp *DiffMatchPatch) diffMainRunes(text1, text2 []rune, halfMatch bool, deadline time.Time) []Diff {
	if runesEqual(text1, text2) {
		var diffs []Diff
		if len(text1) > 0 {
			diffs = append(diffs, Diff{DiffEqual, string(text1)})
		}
		return diffs
	}
	// Trim off common prefix (speedup).
	commonlength := commonPrefixLength(text1, text2)
	commonprefix := text1[:commonlength]
	text1 = text1[commonlength:]
	text2 = text2[commonlength:]

	// Trim off common suffix (speedup).
	commonlength = commonSuffixLength(text1, text2)
	commonsuffix := text1[len(text1)-commonlength:]
	text1 = text1[:len(text1)-commonlength]
	text2 = text2[:len(text2)-commonlength]

	// Compute the diff on the middle block.
	diffs := dmp.diffCompute(text1, text2, halfMatch, deadline)

	// Restore the prefix and suffix.
	if len(commonprefix) != 0 {
		diffs = append([]Diff{{DiffEqual, string(commonprefix)}}, diffs...)
	}
	if len(commonsuffix) != 0 {
		diffs = append(diffs, Diff{DiffEqual, string(commonsuffix)})
	}

	return cleanupMerge(diffs)
}

// diffCompute finds the differences between two rune slices that share no
// common prefix or suffix.
func (dmp *DiffMatchPatch) diffCompute(text1, text2 []rune, halfMatch bool, deadline time.Time) []Diff {
	if len(text1) == 0 {
		// Just add some text (speedup).
		return []Diff{{DiffInsert, string(text2)}}
	} else if len(text2) == 0 {
		// Just delete some text (speedup).
		return []Diff{{DiffDelete, string(text1)}}
	}

	var longtext, shorttext []rune
	if len(text1) > len(text2) {
		longtext = text1
		shorttext = text2
	} else {
		longtext = text2
		shorttext = text1
	}

	if i := runesIndex(longtext, shorttext); i != -1 {
		op := DiffInsert
		// Swap insertions for deletions if diff is reversed.
		if len(text1) > len(text2) {
			op = DiffDelete
		}
		// Shorter text is inside the longer text (speedup).
		return []Diff{
			{op, string(longtext[:i])},
			{DiffEqual, string(shorttext)},
			{op, string(longtext[i+len(shorttext):])},
		}
	} else if len(shorttext) == 1 {
		// Single character string.
		// After the previous speedup, the character can't be an equality.
		return []Diff{
			{DiffDelete, string(text1)},
			{DiffInsert, string(text2)},
		}
	}

	// The half-match may yield a non-optimal diff; it is off for expired budgets.
	if halfMatch {
		if hm := diffHalfMatch(text1, text2); hm != nil {
			// A half-match was found; send both pairs off for separate processing.
			diffs := dmp.diffMainRunes(hm.text1A, hm.text2A, halfMatch, deadline)
			diffsB := dmp.diffMainRunes(hm.text1B, hm.text2B, halfMatch, deadline)
			// Merge the results.
			diffs = append(diffs, Diff{DiffEqual, string(hm.midCommon)})
			return append(diffs, diffsB...)
		}
	}

	return dmp.diffBisect(text1, text2, halfMatch, deadline)
}

// DiffBisect finds the 'middle snake' of a diff, splits the problem in two and
// returns the recursively constructed diff. The zero deadline searches until
// an optimal split is found.
// See Myers's 1986 paper: An O(ND) Difference Algorithm and Its Variations.
func (dmp *DiffMatchPatch) DiffBisect(text1, text2 string, deadline time.Time) []Diff {
	return dmp.diffBisect([]rune(text1), []rune(text2), dmp.halfMatchEnabled(), deadline)
}

// diffBisect finds the 'middle snake' of a diff, splits the problem in two and
// returns the recursively constructed diff.
func (dmp *DiffMatchPatch) diffBisect(runes1, runes2 []rune, halfMatch bool, deadline time.Time) []Diff {
	// Cache the text lengths to prevent multiple calls.
	runes1Len, runes2Len := len(runes1), len(runes2)

	maxD := (runes1Len + runes2Len + 1) / 2
	vOffset := maxD
	vLength := 2*maxD + 1

	v1 := make([]int, vLength)
	v2 := make([]int, vLength)
	for i := range v1 {
		v1[i] = -1
		v2[i] = -1
	}
	v1[vOffset+1] = 0
	v2[vOffset+1] = 0

	delta := runes1Len - runes2Len
	// If the total number of characters is odd, then the front path will collide with the reverse path.
	front := (delta%2 != 0)
	// Offsets for start and end of k loop. Prevents mapping of space beyond the grid.
	k1start := 0
	k1end := 0
	k2start := 0
	k2end := 0
	for d := 0; d < maxD; d++ {
		// Bail out if deadline is reached.
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}

		// Walk the front path one step.
		for k1 := -d + k1start; k1 <= d-k1end; k1 += 2 {
			k1Offset := vOffset + k1
			var x1 int

			if k1 == -d || (k1 != d && v1[k1Offset-1] < v1[k1Offset+1]) {
				x1 = v1[k1Offset+1]
			} else {
				x1 = v1[k1Offset-1] + 1
			}

			y1 := x1 - k1
			for x1 < runes1Len && y1 < runes2Len {
				if runes1[x1] != runes2[y1] {
					break
				}
				x1++
				y1++
			}
			v1[k1Offset] = x1
			if x1 > runes1Len {
				// Ran off the right of the graph.
				k1end += 2
			} else if y1 > runes2Len {
				// Ran off the bottom of the graph.
				k1start += 2
			} else if front {
				k2Offset := vOffset + delta - k1
				if k2Offset >= 0 && k2Offset < vLength && v2[k2Offset] != -1 {
					// Mirror x2 onto top-left coordinate system.
					x2 := runes1Len - v2[k2Offset]
					if x1 >= x2 {
						// Overlap detected.
						return dmp.diffBisectSplit(runes1, runes2, x1, y1, halfMatch, deadline)
					}
				}
			}
		}
		// Walk the reverse path one step.
		for k2 := -d + k2start; k2 <= d-k2end; k2 += 2 {
			k2Offset := vOffset + k2
			var x2 int
			if k2 == -d || (k2 != d && v2[k2Offset-1] < v2[k2Offset+1]) {
				x2 = v2[k2Offset+1]
			} else {
				x2 = v2[k2Offset-1] + 1
			}
			y2 := x2 - k2
			for x2 < runes1Len && y2 < runes2Len {
				if runes1[runes1Len-x2-1] != runes2[runes2Len-y2-1] {
					break
				}
				x2++
				y2++
			}
			v2[k2Offset] = x2
			if x2 > runes1Len {
				// Ran off the left of the graph.
				k2end += 2
			} else if y2 > runes2Len {
				// Ran off the top of the graph.
				k2start += 2
			} else if !front {
				k1Offset := vOffset + delta - k2
				if k1Offset >= 0 && k1Offset < vLength && v1[k1Offset] != -1 {
					x1 := v1[k1Offset]
					y1 := vOffset + x1 - k1Offset
					// Mirror x2 onto top-left coordinate system.
					x2 = runes1Len - x2
					if x1 >= x2 {
						// Overlap detected.
						return dmp.diffBisectSplit(runes1, runes2, x1, y1, halfMatch, deadline)
					}
				}
			}
		}
	}
	// Diff took too long and hit the deadline or number of diffs equals number of characters, no commonality at all.
	return []Diff{
		{DiffDelete, string(runes1)},
		{DiffInsert, string(runes2)},
	}
}

// diffBisectSplit diffs both halves around the split point (x, y) serially
// and concatenates the results.
func (dmp *DiffMatchPatch) diffBisectSplit(runes1, runes2 []rune, x, y int, halfMatch bool, deadline time.Time) []Diff {
	runes1a := runes1[:x]
	runes2a := runes2[:y]
	runes1b := runes1[x:]
	runes2b := runes2[y:]

	// Compute both diffs serially.
	diffs := dmp.diffMainRunes(runes1a, runes2a, halfMatch, deadline)
	diffsb := dmp.diffMainRunes(runes1b, runes2b, halfMatch, deadline)

	return append(diffs, diffsb...)
}

// halfMatch is a common substring at least half as long as the longer of two
// texts, with the texts split around it: text1A+midCommon+text1B is text1 and
// text2A+midCommon+text2B is text2.
type halfMatch struct {
	text1A, text1B []rune
	text2A, text2B []rune
	midCommon      []rune
}

// DiffHalfMatch checks whether the two texts share a substring which is at
// least half the length of the longer text. It returns a slice of five
// strings: the prefix of text1, the suffix of text1, the prefix of text2, the
// suffix of text2 and the common middle, or nil if there was no match or the
// configuration does not allow the heuristic.
func (dmp *DiffMatchPatch) DiffHalfMatch(text1, text2 string) []string {
	if !dmp.halfMatchEnabled() {
		return nil
	}
	hm := diffHalfMatch([]rune(text1), []rune(text2))
	if hm == nil {
		return nil
	}
	return []string{
		string(hm.text1A),
		string(hm.text1B),
		string(hm.text2A),
		string(hm.text2B),
		string(hm.midCommon),
	}
}

func diffHalfMatch(text1, text2 []rune) *halfMatch {
	var longtext, shorttext []rune
	if len(text1) > len(text2) {
		longtext = text1
		shorttext = text2
	} else {
		longtext = text2
		shorttext = text1
	}

	if len(longtext) < 4 || len(shorttext)*2 < len(longtext) {
		return nil // Pointless.
	}

	// First check if the second quarter is the seed for a half-match.
	hm1 := diffHalfMatchI(longtext, shorttext, (len(longtext)+3)/4)

	// Check again based on the third quarter.
	hm2 := diffHalfMatchI(longtext, shorttext, (len(longtext)+1)/2)

	var hm *halfMatch
	if hm1 == nil && hm2 == nil {
		return nil
	} else if hm2 == nil {
		hm = hm1
	} else if hm1 == nil {
		hm = hm2
	} else {
		// Both matched. Select the longest.
		if len(hm1.midCommon) > len(hm2.midCommon) {
			hm = hm1
		} else {
			hm = hm2
		}
	}

	// A half-match was found, sort out the return data.
	if len(text1) > len(text2) {
		return hm
	}
	return &halfMatch{
		text1A:    hm.text2A,
		text1B:    hm.text2B,
		text2A:    hm.text1A,
		text2B:    hm.text1B,
		midCommon: hm.midCommon,
	}
}

// diffHalfMatchI checks if a substring of shorttext exist within longtext such
// that the substring is at least half the length of longtext. Its text1 fields
// refer to longtext and its text2 fields to shorttext.
func diffHalfMatchI(l, s []rune, i int) *halfMatch {
	var bestCommon []rune
	var bestLongtextA []rune
	var bestLongtextB []rune
	var bestShorttextA []rune
	var bestShorttextB []rune

	// Start with a 1/4 length substring at position i as a seed.
	seed := l[i : i+len(l)/4]

	for j := runesIndexOf(s, seed, 0); j != -1; j = runesIndexOf(s, seed, j+1) {
		prefixLength := commonPrefixLength(l[i:], s[j:])
		suffixLength := commonSuffixLength(l[:i], s[:j])

		if len(bestCommon) < suffixLength+prefixLength {
			bestCommon = s[j-suffixLength : j+prefixLength]
			bestLongtextA = l[:i-suffixLength]
			bestLongtextB = l[i+prefixLength:]
			bestShorttextA = s[:j-suffixLength]
			bestShorttextB = s[j+prefixLength:]
		}
	}

	if len(bestCommon)*2 < len(l) {
		return nil
	}

	return &halfMatch{
		text1A:    bestLongtextA,
		text1B:    bestLongtextB,
		text2A:    bestShorttextA,
		text2B:    bestShorttextB,
		midCommon: bestCommon,
	}
}
