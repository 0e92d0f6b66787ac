package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/um1ng/oumu.ai/util"
)

func testConfig() util.Config {
	return util.Config{
		Environment:     "test",
		LogLevel:        "info",
		DefaultFormat:   "json",
		AnnotateWorkers: 2,
	}
}

// execute runs the command tree against the given args and returns
// whatever was printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd(testConfig())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}
