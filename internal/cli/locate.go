package cli

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// ErrOffsetRange is returned when the offset lies outside OLD.
var ErrOffsetRange = errors.New("offset out of range")

func newLocateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "locate OLD NEW OFFSET",
		Short: "Map a character offset in OLD to the matching offset in NEW",
		Long: `locate diffs OLD against NEW and prints where the character at OFFSET in OLD
ends up in NEW. Offsets count code points from 0. An offset inside deleted text
maps to the point where the deletion happened.`,
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := cast.ToIntE(args[2])
			if err != nil {
				return fmt.Errorf("offset %q: %w", args[2], err)
			}

			s, err := prepare(cmd, opts, args[0], args[1])
			if err != nil {
				return err
			}
			if n := utf8.RuneCountInString(s.text1); loc < 0 || loc > n {
				return fmt.Errorf("%w: %d not in [0, %d]", ErrOffsetRange, loc, n)
			}

			newLoc := s.dmp.DiffXIndex(s.diff(), loc)
			s.log.WithFields(logrus.Fields{"from": loc, "to": newLoc}).Debug("offset translated")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), newLoc)
			return err
		},
	}
}
