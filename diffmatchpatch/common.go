// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import "unicode/utf8"

// DiffCommonPrefix determines the common prefix length of two strings, in runes.
func (dmp *DiffMatchPatch) DiffCommonPrefix(text1, text2 string) int {
	return commonPrefixLength([]rune(text1), []rune(text2))
}

// DiffCommonSuffix determines the common suffix length of two strings, in runes.
func (dmp *DiffMatchPatch) DiffCommonSuffix(text1, text2 string) int {
	return commonSuffixLength([]rune(text1), []rune(text2))
}

// DiffCommonOverlap determines how many runes at the end of text1 equal the
// start of text2.
func (dmp *DiffMatchPatch) DiffCommonOverlap(text1 string, text2 string) int {
	return commonOverlapLength([]rune(text1), []rune(text2))
}

// commonPrefixLength returns the length of the common prefix of two rune slices.
// If a prefix of length n matches, every shorter prefix does too, so the
// longest one is found by binary search.
func commonPrefixLength(text1, text2 []rune) int {
	// Quick check for common null cases.
	if len(text1) == 0 || len(text2) == 0 || text1[0] != text2[0] {
		return 0
	}

	// Performance analysis: http://neil.fraser.name/news/2007/10/09/
	pointerMin := 0
	pointerMax := min(len(text1), len(text2))
	pointerMid := pointerMax
	pointerStart := 0
	for pointerMin < pointerMid {
		if runesEqual(text1[pointerStart:pointerMid], text2[pointerStart:pointerMid]) {
			pointerMin = pointerMid
			pointerStart = pointerMin
		} else {
			pointerMax = pointerMid
		}
		pointerMid = (pointerMax-pointerMin)/2 + pointerMin
	}
	return pointerMid
}

// commonSuffixLength returns the length of the common suffix of two rune slices.
func commonSuffixLength(text1, text2 []rune) int {
	length1, length2 := len(text1), len(text2)
	// Quick check for common null cases.
	if length1 == 0 || length2 == 0 || text1[length1-1] != text2[length2-1] {
		return 0
	}

	pointerMin := 0
	pointerMax := min(length1, length2)
	pointerMid := pointerMax
	pointerEnd := 0
	for pointerMin < pointerMid {
		if runesEqual(text1[length1-pointerMid:length1-pointerEnd], text2[length2-pointerMid:length2-pointerEnd]) {
			pointerMin = pointerMid
			pointerEnd = pointerMin
		} else {
			pointerMax = pointerMid
		}
		pointerMid = (pointerMax-pointerMin)/2 + pointerMin
	}
	return pointerMid
}

// commonOverlapLength returns the largest n such that the last n runes of
// text1 equal the first n runes of text2. Runes are compared as code points;
// a ligature never equals its decomposed letters.
func commonOverlapLength(text1, text2 []rune) int {
	// Cache the text lengths to prevent multiple calls.
	length1 := len(text1)
	length2 := len(text2)
	// Eliminate the null case.
	if length1 == 0 || length2 == 0 {
		return 0
	}
	// Truncate the longer string.
	if length1 > length2 {
		text1 = text1[length1-length2:]
	} else if length1 < length2 {
		text2 = text2[:length1]
	}
	textLength := min(length1, length2)
	// Quick check for the worst case.
	if runesEqual(text1, text2) {
		return textLength
	}

	// Start by looking for a single character match
	// and increase length until no match is found.
	// Performance analysis: http://neil.fraser.name/news/2010/11/04/
	best := 0
	length := 1
	for {
		pattern := text1[textLength-length:]
		found := runesIndex(text2, pattern)
		if found == -1 {
			break
		}
		length += found
		if found == 0 || runesEqual(text1[textLength-length:], text2[:length]) {
			best = length
			length++
		}
	}
	return best
}

func runeCount(text string) int {
	return utf8.RuneCountInString(text)
}
