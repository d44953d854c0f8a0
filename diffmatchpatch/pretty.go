// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"html"
	"strings"

	"github.com/mgutz/ansi"
)

// Styles applied by DiffPrettyText, in mgutz/ansi notation.
const (
	InsertStyle = "green"
	DeleteStyle = "red"
)

// DiffPrettyHtml converts a []Diff into a pretty HTML report.
// It is intended as an example from which to write one's own display functions.
func (dmp *DiffMatchPatch) DiffPrettyHtml(diffs []Diff) string {
	var b strings.Builder
	for _, diff := range diffs {
		text := strings.ReplaceAll(html.EscapeString(diff.Text), "\n", "&para;<br>")
		switch diff.Type {
		case DiffInsert:
			b.WriteString(`<ins style="background:#e6ffe6;">` + text + "</ins>")
		case DiffDelete:
			b.WriteString(`<del style="background:#ffe6e6;">` + text + "</del>")
		case DiffEqual:
			b.WriteString("<span>" + text + "</span>")
		}
	}
	return b.String()
}

// DiffPrettyText converts a []Diff into a colored text report: insertions in
// InsertStyle, deletions in DeleteStyle and equalities uncolored.
func (dmp *DiffMatchPatch) DiffPrettyText(diffs []Diff) string {
	var b strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case DiffInsert:
			b.WriteString(ansi.Color(diff.Text, InsertStyle))
		case DiffDelete:
			b.WriteString(ansi.Color(diff.Text, DeleteStyle))
		case DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}

// DiffPlainText renders a []Diff without colors, wrapping deletions in [-...-]
// and insertions in {+...+} the way word-diff tools do.
func (dmp *DiffMatchPatch) DiffPlainText(diffs []Diff) string {
	var b strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case DiffInsert:
			b.WriteString("{+" + diff.Text + "+}")
		case DiffDelete:
			b.WriteString("[-" + diff.Text + "-]")
		case DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}
