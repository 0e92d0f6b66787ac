package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/um1ng/oumu.ai/furigana"
	"github.com/um1ng/oumu.ai/util"
)

func newParseCmd(config util.Config) *cobra.Command {
	var format string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse RAW ORIGINAL",
		Short: "Render a raw annotation payload as ruby markup",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag := furigana.Format(format)
			if format == "" {
				tag = furigana.Format(config.DefaultFormat)
			}

			res := furigana.Parse(args[0], args[1], tag)

			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Markup)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "",
		"annotation format (json|ruby|brackets|spaced|mecab|kuromoji); defaults to the configured format")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")

	return cmd
}
