package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSmoke(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	results := runSmoke(zerolog.New(&buf))
	assert.Len(results, 22)
	for _, r := range results {
		assert.True(r.Pass, "%s: %s", r.Group, r.Check)
	}
	assert.Equal(0, countFailed(results))
	assert.Contains(buf.String(), `"message":"smoke run complete"`)
	assert.Contains(buf.String(), `"capacity":32`)
}

func TestCountFailed(t *testing.T) {
	assert.Equal(t, 2, countFailed([]result{
		{Group: "g", Check: "a", Pass: false},
		{Group: "g", Check: "b", Pass: true},
		{Group: "g", Check: "c", Pass: false},
	}))
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(run([]result{{Group: "g", Check: "a", Pass: true}}))
	assert.NoError(run(nil))

	err := run([]result{
		{Group: "g", Check: "a", Pass: true},
		{Group: "g", Check: "b", Pass: false},
	})
	assert.True(errors.Is(err, errSmokeFailed))
	assert.EqualError(err, "smoke checks failed: 1 of 2")
}

func restoreLogging(t *testing.T) {
	level := zerolog.GlobalLevel()
	logger := log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = logger
	})
}

func TestRootCmdVerbose(t *testing.T) {
	restoreLogging(t)

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--verbose"})
	require.NoError(t, cmd.Execute())

	var checks = 0
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		if _, ok := line["check"]; ok {
			checks++
			assert.Equal(t, true, line["pass"], "check %v", line["check"])
		}
	}
	assert.Equal(t, 22, checks)
}

func TestRootCmdQuiet(t *testing.T) {
	restoreLogging(t)

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.NotContains(t, buf.String(), `"check"`, "passing checks are debug level")
	assert.Contains(t, buf.String(), "smoke run complete")
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}
