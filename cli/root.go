// Package cli wires the annotation toolkit into a cobra command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/um1ng/oumu.ai/util"
)

// Execute builds the command tree and runs it with ctx, which is
// cancelled on interrupt signals by the caller.
func Execute(ctx context.Context, config util.Config) error {
	root := newRootCmd(config)
	return root.ExecuteContext(ctx)
}

func newRootCmd(config util.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "oumu",
		Short: "Furigana annotation toolkit",
		Long: `oumu parses phonetic reading annotations in several encodings
(JSON reading maps, inline ruby markup, bracket pairs, spaced pairs,
tagger and segmenter output) and renders them as inline ruby markup.
It can also produce annotations from plain Japanese text.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newParseCmd(config),
		newDetectCmd(),
		newValidateCmd(),
		newAnnotateCmd(config),
	)

	return root
}
