// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"fmt"
	"strings"
)

// DefaultContextLines is the number of unchanged lines of surrounding
// context displayed by Unified.
const DefaultContextLines = 3

// Unified computes the line differences between text1 and text2 and formats
// them in the "unified diff" format.
func (dmp *DiffMatchPatch) Unified(text1, text2 string, opts ...UnifiedOption) string {
	return dmp.DiffUnified(dmp.DiffMainLines(text1, text2), opts...)
}

// DiffUnified formats diffs in the "unified diff" format. The diffs need not
// be line aligned; they are regrouped into whole lines first.
func (dmp *DiffMatchPatch) DiffUnified(diffs []Diff, opts ...UnifiedOption) string {
	o := unifiedOptions{
		contextLines: DefaultContextLines,
		label1:       "text1",
		label2:       "text2",
	}
	for _, opt := range opts {
		opt(&o)
	}

	hunks := buildHunks(splitLines(diffs), o.contextLines)
	if len(hunks) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s\n", o.label1, o.label2)
	for _, h := range hunks {
		h.writeTo(&b)
	}
	return b.String()
}

// UnifiedOption configures DiffUnified and Unified.
type UnifiedOption func(*unifiedOptions)

type unifiedOptions struct {
	contextLines   int
	label1, label2 string
}

// UnifiedContextLines sets the number of unchanged lines printed around each
// change. Non-positive values select DefaultContextLines.
func UnifiedContextLines(lines int) UnifiedOption {
	if lines <= 0 {
		lines = DefaultContextLines
	}
	return func(o *unifiedOptions) {
		o.contextLines = lines
	}
}

// UnifiedLabels sets the labels for the old and new files. Defaults to "text1" and "text2".
func UnifiedLabels(oldLabel, newLabel string) UnifiedOption {
	return func(o *unifiedOptions) {
		o.label1 = oldLabel
		o.label2 = newLabel
	}
}

// hunk is a run of changed lines together with their context. Hunks are
// separated by more than twice the context size.
type hunk struct {
	// 1-based first line of the hunk in each text.
	from1, from2 int
	lines        []Diff
}

func (h hunk) counts() (n1, n2 int) {
	for _, l := range h.lines {
		if l.Type != DiffInsert {
			n1++
		}
		if l.Type != DiffDelete {
			n2++
		}
	}
	return n1, n2
}

func (h hunk) writeTo(b *strings.Builder) {
	n1, n2 := h.counts()
	fmt.Fprintf(b, "@@ -%s +%s @@\n", hunkRange(h.from1, n1), hunkRange(h.from2, n2))
	for _, l := range h.lines {
		switch l.Type {
		case DiffDelete:
			b.WriteByte('-')
		case DiffInsert:
			b.WriteByte('+')
		default:
			b.WriteByte(' ')
		}
		b.WriteString(l.Text)
		if !strings.HasSuffix(l.Text, "\n") {
			b.WriteString("\n\\ No newline at end of file\n")
		}
	}
}

// hunkRange formats one side of a hunk header the way GNU diff -u does.
func hunkRange(start, n int) string {
	switch n {
	case 0:
		// An empty range names the line before it.
		return fmt.Sprintf("%d,0", start-1)
	case 1:
		return fmt.Sprint(start)
	}
	return fmt.Sprintf("%d,%d", start, n)
}

// buildHunks groups line diffs into hunks with up to context unchanged lines
// on each side.
func buildHunks(lines []Diff, context int) []hunk {
	var hunks []hunk
	var cur *hunk
	var pending []Diff // equal lines since the last change
	line1, line2 := 1, 1

	flush := func() {
		cur.lines = append(cur.lines, pending[:min(len(pending), context)]...)
		hunks = append(hunks, *cur)
		cur = nil
	}

	for _, l := range lines {
		if l.Type == DiffEqual {
			pending = append(pending, l)
			line1++
			line2++
			continue
		}
		if cur != nil && len(pending) > 2*context {
			flush()
		}
		if cur == nil {
			lead := pending[len(pending)-min(len(pending), context):]
			cur = &hunk{from1: line1 - len(lead), from2: line2 - len(lead)}
			pending = lead
		}
		cur.lines = append(cur.lines, pending...)
		cur.lines = append(cur.lines, l)
		pending = nil
		if l.Type == DiffDelete {
			line1++
		} else {
			line2++
		}
	}
	if cur != nil {
		flush()
	}
	return hunks
}

// splitLines regroups diffs so that each one holds exactly one line, including
// its newline. Within a block of changes deletions precede insertions.
func splitLines(diffs []Diff) []Diff {
	var out, dels, inss []Diff
	var old, cur strings.Builder

	emit := func(d Diff) {
		switch d.Type {
		case DiffDelete:
			dels = append(dels, d)
		case DiffInsert:
			inss = append(inss, d)
		default:
			out = append(out, dels...)
			out = append(out, inss...)
			out = append(out, d)
			dels, inss = nil, nil
		}
	}
	// A line counts as unchanged only if both texts built it identically.
	closeLines := func(final bool) {
		text1, text2 := old.String(), cur.String()
		done1 := text1 != "" && (final || strings.HasSuffix(text1, "\n"))
		done2 := text2 != "" && (final || strings.HasSuffix(text2, "\n"))
		if done1 && done2 && text1 == text2 {
			emit(Diff{DiffEqual, text1})
			old.Reset()
			cur.Reset()
			return
		}
		if done1 {
			emit(Diff{DiffDelete, text1})
			old.Reset()
		}
		if done2 {
			emit(Diff{DiffInsert, text2})
			cur.Reset()
		}
	}

	for _, d := range alignToNewlines(diffs) {
		for _, segment := range strings.SplitAfter(d.Text, "\n") {
			if d.Type != DiffInsert {
				old.WriteString(segment)
			}
			if d.Type != DiffDelete {
				cur.WriteString(segment)
			}
			closeLines(false)
		}
	}
	closeLines(true)
	out = append(out, dels...)
	return append(out, inss...)
}

// alignToNewlines shifts an edit sandwiched between equalities so that it
// starts right after a newline where possible:
// =<equal> ±<common\n><change> =<common\n><rest>
// becomes =<equal><common\n> ±<change><common\n> =<rest>.
func alignToNewlines(diffs []Diff) []Diff {
	out := make([]Diff, 0, len(diffs))
	for i := 0; i < len(diffs); i++ {
		if i+2 < len(diffs) && diffs[i].Type == DiffEqual && diffs[i+1].Type != DiffEqual && diffs[i+2].Type == DiffEqual {
			if common := prefixThroughNewline(diffs[i+1].Text, diffs[i+2].Text); common != "" {
				out = append(out,
					Diff{DiffEqual, diffs[i].Text + common},
					Diff{diffs[i+1].Type, diffs[i+1].Text[len(common):] + common},
					Diff{DiffEqual, diffs[i+2].Text[len(common):]},
				)
				i += 2
				continue
			}
		}
		out = append(out, diffs[i])
	}
	return out
}

// prefixThroughNewline returns the longest common prefix of text1 and text2
// that ends in a newline, or "" if there is none.
func prefixThroughNewline(text1, text2 string) string {
	n := 0
	for n < len(text1) && n < len(text2) && text1[n] == text2[n] {
		n++
	}
	return text1[:strings.LastIndexByte(text1[:n], '\n')+1]
}
