// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"strings"
	"unicode"
)

// maxLineRunes is the number of distinct lines a pair of texts can be encoded
// with, one rune per line, skipping the surrogate range.
const maxLineRunes = unicode.MaxRune - 0x800

// DiffMainLines computes the differences between text1 and text2 one whole line
// at a time. It is much faster than DiffMain on large texts, at the expense of
// a coarser result.
func (dmp *DiffMatchPatch) DiffMainLines(text1, text2 string) []Diff {
	runes1, runes2, lines := dmp.DiffLinesToRunes(text1, text2)
	diffs := dmp.diffMainRunes(runes1, runes2, dmp.halfMatchEnabled(), dmp.deadline())
	return dmp.DiffCharsToLines(diffs, lines)
}

// DiffLinesToRunes splits two texts into lines and encodes every distinct line
// as a single rune. The returned slice maps each rune back to its line; index 0
// is never used.
func (dmp *DiffMatchPatch) DiffLinesToRunes(text1, text2 string) ([]rune, []rune, []string) {
	// "\x00" is a valid character, but various debuggers don't like it.
	// So we'll insert a junk entry to avoid generating a null character.
	lineArray := []string{""}
	lineHash := map[string]int{}

	// Leave room for text2 once text1 has been encoded.
	runes1 := linesToRunes(text1, &lineArray, lineHash, maxLineRunes*2/3)
	runes2 := linesToRunes(text2, &lineArray, lineHash, maxLineRunes)
	return runes1, runes2, lineArray
}

// DiffCharsToLines rehydrates the text in a diff from a string of line hashes
// to real lines of text.
func (dmp *DiffMatchPatch) DiffCharsToLines(diffs []Diff, lineArray []string) []Diff {
	hydrated := make([]Diff, 0, len(diffs))
	for _, aDiff := range diffs {
		var text strings.Builder
		for _, r := range aDiff.Text {
			text.WriteString(lineArray[runeToLineIndex(r)])
		}
		hydrated = append(hydrated, aDiff.WithText(text.String()))
	}
	return hydrated
}

// linesToRunes splits text into lines and returns one rune per line. Lines
// are added to lineArray until it holds maxLines entries; after that the
// remainder of text is treated as a single line.
func linesToRunes(text string, lineArray *[]string, lineHash map[string]int, maxLines int) []rune {
	var runes []rune
	for len(text) > 0 {
		end := strings.IndexByte(text, '\n')
		if end == -1 || len(*lineArray) >= maxLines {
			end = len(text) - 1
		}
		line := text[:end+1]
		text = text[end+1:]

		index, ok := lineHash[line]
		if !ok {
			*lineArray = append(*lineArray, line)
			index = len(*lineArray) - 1
			lineHash[line] = index
		}
		runes = append(runes, lineIndexToRune(index))
	}
	return runes
}

func lineIndexToRune(i int) rune {
	if i >= 0xD800 {
		i += 0x800
	}
	return rune(i)
}

func runeToLineIndex(r rune) int {
	if r >= 0xE000 {
		r -= 0x800
	}
	return int(r)
}
