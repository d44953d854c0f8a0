// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/di-graph/semdiff/diffmatchpatch"
)

// natoLines returns one line per word, each ending in a newline.
func natoLines(words ...string) string {
	return strings.Join(words, "\n") + "\n"
}

const unifiedHeader = "--- old.txt\n+++ new.txt\n"

func TestDiffUnifiedModes(t *testing.T) {
	type TestCase struct {
		Name string

		Text1 string
		Text2 string

		Expected string
	}

	dmp := diffmatchpatch.New()
	labels := diffmatchpatch.UnifiedLabels("old.txt", "new.txt")

	for i, tc := range []TestCase{
		{
			Name:     "Identical texts",
			Text1:    natoLines("alpha", "bravo"),
			Text2:    natoLines("alpha", "bravo"),
			Expected: "",
		},
		{
			Name:     "Changed middle line",
			Text1:    natoLines("alpha", "bravo", "charlie"),
			Text2:    natoLines("alpha", "BRAVO", "charlie"),
			Expected: unifiedHeader + "@@ -1,3 +1,3 @@\n alpha\n-bravo\n+BRAVO\n charlie\n",
		},
		{
			Name:     "Line inserted between lines",
			Text1:    natoLines("alpha", "charlie"),
			Text2:    natoLines("alpha", "bravo", "charlie"),
			Expected: unifiedHeader + "@@ -1,2 +1,3 @@\n alpha\n+bravo\n charlie\n",
		},
		{
			Name:     "Line appended",
			Text1:    natoLines("alpha", "bravo"),
			Text2:    natoLines("alpha", "bravo", "charlie"),
			Expected: unifiedHeader + "@@ -1,2 +1,3 @@\n alpha\n bravo\n+charlie\n",
		},
		{
			Name:     "First line removed",
			Text1:    natoLines("alpha", "bravo", "charlie"),
			Text2:    natoLines("bravo", "charlie"),
			Expected: unifiedHeader + "@@ -1,3 +1,2 @@\n-alpha\n bravo\n charlie\n",
		},
		{
			Name:     "Deletions precede insertions in a block",
			Text1:    natoLines("alpha", "bravo", "charlie", "delta"),
			Text2:    natoLines("alpha", "BRAVO", "CHARLIE", "delta"),
			Expected: unifiedHeader + "@@ -1,4 +1,4 @@\n alpha\n-bravo\n-charlie\n+BRAVO\n+CHARLIE\n delta\n",
		},
		{
			Name:     "CRLF lines",
			Text1:    "alpha\r\nbravo\r\ncharlie\r\n",
			Text2:    "alpha\r\nbeta\r\ncharlie\r\n",
			Expected: unifiedHeader + "@@ -1,3 +1,3 @@\n alpha\r\n-bravo\r\n+beta\r\n charlie\r\n",
		},
		{
			Name:     "LF turned into CRLF",
			Text1:    "alpha\nbravo\n",
			Text2:    "alpha\r\nbravo\n",
			Expected: unifiedHeader + "@@ -1,2 +1,2 @@\n-alpha\n+alpha\r\n bravo\n",
		},
		{
			Name:     "Final newline added",
			Text1:    "alpha\nbravo",
			Text2:    "alpha\nbravo\n",
			Expected: unifiedHeader + "@@ -1,2 +1,2 @@\n alpha\n-bravo\n\\ No newline at end of file\n+bravo\n",
		},
		{
			Name:     "Unterminated last line kept as context",
			Text1:    "alpha\nbravo\ncharlie",
			Text2:    "alpha\nBRAVO\ncharlie",
			Expected: unifiedHeader + "@@ -1,3 +1,3 @@\n alpha\n-bravo\n+BRAVO\n charlie\n\\ No newline at end of file\n",
		},
		{
			Name:     "Empty old text",
			Text1:    "",
			Text2:    natoLines("alpha"),
			Expected: unifiedHeader + "@@ -0,0 +1 @@\n+alpha\n",
		},
		{
			Name:     "Empty new text",
			Text1:    natoLines("alpha", "bravo"),
			Text2:    "",
			Expected: unifiedHeader + "@@ -1,2 +0,0 @@\n-alpha\n-bravo\n",
		},
	} {
		msg := fmt.Sprintf("Test case #%d, %s", i, tc.Name)

		lineMode := dmp.DiffUnified(dmp.DiffMainLines(tc.Text1, tc.Text2), labels)
		if diff := cmp.Diff(tc.Expected, lineMode); diff != "" {
			t.Errorf("%s: line mode differs (-want/+got):\n%s", msg, diff)
		}

		// Character diffs are regrouped into the same lines.
		charMode := dmp.DiffUnified(dmp.DiffMain(tc.Text1, tc.Text2), labels)
		assert.Equal(t, lineMode, charMode, msg)

		assert.Equal(t, lineMode, dmp.Unified(tc.Text1, tc.Text2, labels), msg)
	}
}

func TestDiffUnifiedContextLines(t *testing.T) {
	type TestCase struct {
		Name string

		Context int

		Expected string
	}

	words := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel", "india", "juliett", "kilo", "lima"}
	text1 := natoLines(words...)
	changed := append([]string(nil), words...)
	changed[2] = "CHARLIE"
	changed[9] = "JULIETT"
	text2 := natoLines(changed...)

	whole := "@@ -1,12 +1,12 @@\n alpha\n bravo\n-charlie\n+CHARLIE\n delta\n echo\n foxtrot\n golf\n hotel\n india\n-juliett\n+JULIETT\n kilo\n lima\n"

	dmp := diffmatchpatch.New()

	for i, tc := range []TestCase{
		{
			Name:    "One line",
			Context: 1,
			Expected: "@@ -2,3 +2,3 @@\n bravo\n-charlie\n+CHARLIE\n delta\n" +
				"@@ -9,3 +9,3 @@\n india\n-juliett\n+JULIETT\n kilo\n",
		},
		{
			Name:    "Gap just over twice the context splits",
			Context: 2,
			Expected: "@@ -1,5 +1,5 @@\n alpha\n bravo\n-charlie\n+CHARLIE\n delta\n echo\n" +
				"@@ -8,5 +8,5 @@\n hotel\n india\n-juliett\n+JULIETT\n kilo\n lima\n",
		},
		{
			Name:     "Gap of twice the context merges",
			Context:  3,
			Expected: whole,
		},
		{
			Name:     "Zero selects the default",
			Context:  0,
			Expected: whole,
		},
		{
			Name:     "Negative selects the default",
			Context:  -4,
			Expected: whole,
		},
	} {
		actual := dmp.Unified(text1, text2, diffmatchpatch.UnifiedLabels("old.txt", "new.txt"), diffmatchpatch.UnifiedContextLines(tc.Context))
		if diff := cmp.Diff(unifiedHeader+tc.Expected, actual); diff != "" {
			t.Errorf("Test case #%d, %s: output differs (-want/+got):\n%s", i, tc.Name, diff)
		}
	}

	assert.True(t, strings.HasPrefix(dmp.Unified(text1, text2), "--- text1\n+++ text2\n@@ -1,12 +1,12 @@\n"))
}

func ExampleDiffMatchPatch_DiffUnified() {
	text1 := "listen 80\nroot /srv/www\nindex index.html\n"
	text2 := "listen 8080\nroot /srv/www\nindex index.html\n"

	dmp := diffmatchpatch.New()

	// Diff whole lines rather than characters.
	diffs := dmp.DiffMainLines(text1, text2)

	fmt.Print(dmp.DiffUnified(diffs,
		diffmatchpatch.UnifiedLabels("old.conf", "new.conf"),
		diffmatchpatch.UnifiedContextLines(2)))
	// Output:
	// --- old.conf
	// +++ new.conf
	// @@ -1,3 +1,3 @@
	// -listen 80
	// +listen 8080
	//  root /srv/www
	//  index index.html
}
