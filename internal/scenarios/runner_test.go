package scenarios_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"coffee/internal/scenarios"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSuite_AllScenariosPass(t *testing.T) {
	for _, s := range scenarios.Suite() {
		t.Run(s.Name, func(t *testing.T) {
			require.NoError(t, s.Run())
		})
	}
}

func TestRunner_RunAll(t *testing.T) {
	t.Run("should print a line per scenario and a summary", func(t *testing.T) {
		var out bytes.Buffer
		suite := scenarios.Suite()

		err := scenarios.NewRunner(suite, &out, discardLogger()).RunAll(t.Context())

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, len(suite)+2)
		assert.Equal(t, "basic order: passed", lines[0])
		assert.Empty(t, lines[len(suite)])
		assert.Equal(t, "All 14 scenarios passed", lines[len(lines)-1])
	})

	t.Run("should stop at the first failure", func(t *testing.T) {
		var out bytes.Buffer
		boom := errors.New("boom")
		thirdRan := false

		err := scenarios.NewRunner([]scenarios.Scenario{
			{Name: "first", Run: func() error { return nil }},
			{Name: "second", Run: func() error { return boom }},
			{Name: "third", Run: func() error { thirdRan = true; return nil }},
		}, &out, discardLogger()).RunAll(t.Context())

		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), `"second"`)
		assert.Equal(t, "first: passed\n", out.String())
		assert.False(t, thirdRan)
	})

	t.Run("should honour a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		err := scenarios.NewRunner(scenarios.Suite(), io.Discard, discardLogger()).RunAll(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}
