// Package cli implements the semdiff command line.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/di-graph/semdiff/diffmatchpatch"
	"github.com/di-graph/semdiff/internal/config"
)

type options struct {
	configPath  string
	timeout     time.Duration
	exhaustive  bool
	noHalfMatch bool
	semantic    bool
	lines       bool
	format      string
	context     int
	color       string
	normalize   bool
	stats       bool
	verbose     bool
}

// NewRootCommand builds the semdiff command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}
	defaults := config.Default()

	root := &cobra.Command{
		Use:   "semdiff [flags] OLD NEW",
		Short: "Compare two texts and print a human-friendly diff",
		Long: `semdiff computes a character or line diff of two files within a time budget,
optionally cleans it up for human readers and prints it as colored text, HTML,
a unified diff or JSON. Either operand may be "-" to read standard input.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], args[1])
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file (default "+config.DefaultPath+" when present)")
	pf.DurationVar(&opts.timeout, "timeout", defaults.Timeout, "time budget of the diff; 0 gives a fast, coarse diff")
	pf.BoolVar(&opts.exhaustive, "exhaustive", false, "search for an optimal diff without a deadline")
	pf.BoolVar(&opts.noHalfMatch, "no-half-match", false, "disable the half-match speedup")
	pf.BoolVar(&opts.semantic, "semantic", false, "rewrite the diff along word and line boundaries")
	pf.BoolVar(&opts.lines, "lines", false, "diff whole lines instead of characters")
	pf.BoolVar(&opts.normalize, "normalize", false, "NFC-normalize both inputs before diffing")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	f := root.Flags()
	f.StringVar(&opts.format, "format", defaults.Format, "output format: text, html, unified or json")
	f.IntVar(&opts.context, "context", defaults.ContextLines, "context lines of the unified format")
	f.StringVar(&opts.color, "color", defaults.Color, "colorize output: auto, always or never")
	f.BoolVar(&opts.stats, "stats", false, "log insertion, deletion and Levenshtein counts")

	root.AddCommand(newLocateCommand(opts), newVersionCommand(version))
	return root
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "semdiff %s\n", version)
		},
	}
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// loadConfig layers the config file, the environment and the flags the user
// set explicitly, in that order.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg := config.Default()

	var err error
	if opts.configPath != "" {
		err = config.Load(opts.configPath, &cfg)
	} else {
		err = config.LoadOrDefault(config.DefaultPath, &cfg)
	}
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	if flags.Changed("exhaustive") {
		cfg.Exhaustive = opts.exhaustive
	}
	if flags.Changed("no-half-match") {
		cfg.HalfMatch = !opts.noHalfMatch
	}
	if flags.Changed("semantic") {
		cfg.Semantic = opts.semantic
	}
	if flags.Changed("lines") {
		cfg.Mode = config.ModeChars
		if opts.lines {
			cfg.Mode = config.ModeLines
		}
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("context") {
		cfg.ContextLines = opts.context
	}
	if flags.Changed("color") {
		cfg.Color = opts.color
	}
	if flags.Changed("normalize") {
		cfg.Normalize = opts.normalize
	}

	return cfg, cfg.Validate()
}

func newDiffMatchPatch(cfg config.Config) *diffmatchpatch.DiffMatchPatch {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = cfg.Timeout
	if cfg.Exhaustive {
		dmp.DiffTimeout = diffmatchpatch.NoTimeout
	}
	dmp.DisableHalfMatch = !cfg.HalfMatch
	return dmp
}

// session holds the decoded inputs and the engine configured for them.
type session struct {
	log          *logrus.Logger
	cfg          config.Config
	dmp          *diffmatchpatch.DiffMatchPatch
	text1, text2 string
}

func prepare(cmd *cobra.Command, opts *options, path1, path2 string) (*session, error) {
	log := newLogger(cmd.ErrOrStderr(), opts.verbose)

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	text1, text2, err := readInputs(cmd.InOrStdin(), path1, path2, cfg.Normalize)
	if err != nil {
		return nil, err
	}

	return &session{
		log:   log,
		cfg:   cfg,
		dmp:   newDiffMatchPatch(cfg),
		text1: text1,
		text2: text2,
	}, nil
}

// diff computes the script in the configured mode and applies the semantic
// cleanup when enabled.
func (s *session) diff() []diffmatchpatch.Diff {
	start := time.Now()

	var diffs []diffmatchpatch.Diff
	if s.cfg.Mode == config.ModeLines {
		diffs = s.dmp.DiffMainLines(s.text1, s.text2)
	} else {
		diffs = s.dmp.DiffMain(s.text1, s.text2)
	}
	if s.cfg.Semantic {
		diffs = s.dmp.DiffCleanupSemantic(diffs)
	}

	s.log.WithFields(logrus.Fields{
		"ops":      len(diffs),
		"elapsed":  time.Since(start),
		"timeout":  s.cfg.Timeout,
		"semantic": s.cfg.Semantic,
		"mode":     s.cfg.Mode,
	}).Debug("diff computed")
	return diffs
}

func run(cmd *cobra.Command, opts *options, path1, path2 string) error {
	s, err := prepare(cmd, opts, path1, path2)
	if err != nil {
		return err
	}
	diffs := s.diff()

	out := cmd.OutOrStdout()
	if err := render(out, s.dmp, diffs, s.cfg, path1, path2, colorEnabled(s.cfg.Color, out)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if opts.stats {
		st := statsOf(s.dmp, diffs)
		s.log.WithFields(logrus.Fields{
			"inserted":    st.Inserted,
			"deleted":     st.Deleted,
			"levenshtein": st.Levenshtein,
		}).Info("diff stats")
	}
	return nil
}
