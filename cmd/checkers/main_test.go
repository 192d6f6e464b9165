package main

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/checkers"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestTimeLimitDefaultsToConfig(t *testing.T) {
	unsetenv(t, "CHECKERS_TIME_LIMIT")
	conf := checkers.DefaultConfig()
	conf.Search.TimeLimit = 7 * time.Second

	run := func(args ...string) time.Duration {
		var got time.Duration
		app := &cli.App{
			Flags: []cli.Flag{timeLimitFlag()},
			Action: func(c *cli.Context) error {
				got = timeLimit(c, conf)
				return nil
			},
		}
		require.NoError(t, app.Run(append([]string{"checkers"}, args...)))
		return got
	}

	assert.Equal(t, 7*time.Second, run())
	assert.Equal(t, 1500*time.Millisecond, run("--time-limit", "1.5"))
	assert.Equal(t, 2*time.Second, run("-t", "2"))
}

func TestEnvNoticeUsesConfiguredLogger(t *testing.T) {
	unsetenv(t, "CHECKERS_LOG_LEVEL", "CHECKERS_CONFIG")
	var buf bytes.Buffer
	stderr = &buf
	defer func() { stderr = os.Stderr }()
	envErr := errors.New("open .env: no such file or directory")

	require.NoError(t, newApp(envErr).Run([]string{"checkers", "perft", "--depth", "1"}))
	assert.Empty(t, buf.String())

	require.NoError(t, newApp(envErr).Run([]string{"checkers", "--log-level", "debug", "perft", "--depth", "1"}))
	assert.Contains(t, buf.String(), "no .env file loaded")
	assert.NotContains(t, buf.String(), `{"level"`)
}
