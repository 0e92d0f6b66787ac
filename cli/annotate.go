package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/um1ng/oumu.ai/furigana"
	"github.com/um1ng/oumu.ai/tokenize"
	"github.com/um1ng/oumu.ai/util"
)

// annotated is one JSON line of annotate output.
type annotated struct {
	ID             string `json:"id"`
	Text           string `json:"text"`
	Markup         string `json:"markup"`
	HasAnnotations bool   `json:"has_annotations"`
}

func newAnnotateCmd(config util.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "annotate [FILE]",
		Short: "Tokenize plain-text lines and emit ruby markup as JSON lines",
		Long: `annotate reads plain Japanese text line by line from FILE or stdin,
segments each line with the bundled IPA dictionary and prints one JSON
object per line with the rendered ruby markup.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("cannot open input file: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runAnnotate(cmd.Context(), in, cmd.OutOrStdout(), config.AnnotateWorkers)
		},
	}
}

// runAnnotate fans the input lines out to a bounded worker group and
// prints the results in input order once all workers finished.
func runAnnotate(ctx context.Context, in io.Reader, out io.Writer, workers int) error {
	if workers < 1 {
		workers = 1
	}

	lines, err := readLines(in)
	if err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}

	results := make([]annotated, len(lines))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, line := range lines {
		i, line := i, line
		group.Go(func() error {
			tokens, err := tokenize.Tokenize(ctx, line)
			if err != nil {
				return fmt.Errorf("cannot tokenize line %d: %w", i+1, err)
			}

			res := furigana.Parse(tokenize.MecabLines(tokens), line, furigana.FormatMecab)
			results[i] = annotated{
				ID:             uuid.NewString(),
				Text:           line,
				Markup:         res.Markup,
				HasAnnotations: res.HasAnnotations,
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	log.Info().Int("lines", len(results)).Msg("annotation batch finished")

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// readLines collects non-empty trimmed lines from r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines, scanner.Err()
}
