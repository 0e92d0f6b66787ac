package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/um1ng/oumu.ai/furigana"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect RAW",
		Short: "Guess the encoding of a raw annotation payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), furigana.DetectFormat(args[0]))
			return nil
		},
	}
}
