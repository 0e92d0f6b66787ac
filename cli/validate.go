package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/um1ng/oumu.ai/furigana"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate RAW ORIGINAL",
		Short: "Check whether a payload yields usable annotations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !furigana.Validate(args[0], args[1]) {
				return errors.New("no annotations recognized")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
