package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"

	"github.com/di-graph/semdiff/diffmatchpatch"
	"github.com/di-graph/semdiff/internal/config"
)

const (
	headerStyle = "white+b"
	hunkStyle   = "cyan"
)

// jsonDiff is the wire form of one diff record in the json format.
type jsonDiff struct {
	Op   string `json:"op"`
	Text string `json:"text"`
}

func toJSON(diffs []diffmatchpatch.Diff) []jsonDiff {
	records := make([]jsonDiff, 0, len(diffs))
	for _, d := range diffs {
		records = append(records, jsonDiff{Op: strings.ToLower(d.Type.String()), Text: d.Text})
	}
	return records
}

// render writes diffs to w in the configured format. label1 and label2 head
// the unified format.
func render(w io.Writer, dmp *diffmatchpatch.DiffMatchPatch, diffs []diffmatchpatch.Diff, cfg config.Config, label1, label2 string, color bool) error {
	var out string
	switch cfg.Format {
	case config.FormatText:
		if color {
			out = dmp.DiffPrettyText(diffs)
		} else {
			out = dmp.DiffPlainText(diffs)
		}
	case config.FormatHTML:
		out = dmp.DiffPrettyHtml(diffs) + "\n"
	case config.FormatUnified:
		out = dmp.DiffUnified(diffs,
			diffmatchpatch.UnifiedLabels(label1, label2),
			diffmatchpatch.UnifiedContextLines(cfg.ContextLines))
		if color {
			out = colorizeUnified(out)
		}
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(toJSON(diffs))
	default:
		return fmt.Errorf("%w: format %q", config.ErrInvalid, cfg.Format)
	}

	_, err := io.WriteString(w, out)
	return err
}

// colorizeUnified paints the headers, hunk ranges and changed lines of a
// unified diff.
func colorizeUnified(out string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(out, "\n") {
		body := strings.TrimSuffix(line, "\n")

		var style string
		switch {
		case strings.HasPrefix(body, "--- "), strings.HasPrefix(body, "+++ "):
			style = headerStyle
		case strings.HasPrefix(body, "@@"):
			style = hunkStyle
		case strings.HasPrefix(body, "+"):
			style = diffmatchpatch.InsertStyle
		case strings.HasPrefix(body, "-"):
			style = diffmatchpatch.DeleteStyle
		}

		if style == "" {
			b.WriteString(line)
			continue
		}
		b.WriteString(ansi.Color(body, style))
		b.WriteString(line[len(body):])
	}
	return b.String()
}

// colorEnabled resolves the color policy against the output writer. Under
// "auto" only terminals get colors.
func colorEnabled(policy string, w io.Writer) bool {
	switch policy {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type diffStats struct {
	Inserted    int
	Deleted     int
	Levenshtein int
}

// statsOf counts inserted and deleted code points.
func statsOf(dmp *diffmatchpatch.DiffMatchPatch, diffs []diffmatchpatch.Diff) diffStats {
	s := diffStats{Levenshtein: dmp.DiffLevenshtein(diffs)}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			s.Inserted += utf8.RuneCountInString(d.Text)
		case diffmatchpatch.DiffDelete:
			s.Deleted += utf8.RuneCountInString(d.Text)
		}
	}
	return s
}
