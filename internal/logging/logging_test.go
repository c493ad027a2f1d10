package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, Config{}.Validate())
	require.NoError(t, Config{Level: "DEBUG", Format: "json"}.Validate())
	require.NoError(t, Config{Level: "warning", Format: "Text"}.Validate())
	require.ErrorIs(t, Config{Level: "verbose"}.Validate(), ErrBadLevel)
	require.ErrorIs(t, Config{Format: "xml"}.Validate(), ErrBadFormat)
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf})

	log.Debug(context.Background(), "hidden")
	log.With(String("strategy", "flood")).Info(context.Background(), "solved",
		Float("radius", 3), Int("cells", 16), Err(errors.New("none")))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "solved", rec["msg"])
	assert.Equal(t, "flood", rec["strategy"])
	assert.Equal(t, 3.0, rec["radius"])
	assert.Equal(t, 16.0, rec["cells"])
	assert.Equal(t, "none", rec["error"])
}

func TestTextLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Output: &buf})
	log.Info(context.Background(), "dropped")
	assert.Zero(t, buf.Len())
	log.Error(context.Background(), "kept")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestRunID(t *testing.T) {
	ctx, id := EnsureRunID(context.Background())
	require.Len(t, id, 36)
	assert.Equal(t, id, RunIDFromContext(ctx))

	again, same := EnsureRunID(ctx)
	assert.Equal(t, id, same)
	assert.Equal(t, ctx, again)

	var buf bytes.Buffer
	_, log := WithRunLogger(ctx, New(Config{Format: "json", Output: &buf}))
	log.Info(ctx, "start")
	assert.Contains(t, buf.String(), `"run_id":"`+id+`"`)

	assert.Empty(t, RunIDFromContext(nil))
}

func TestNoop(t *testing.T) {
	log := Noop().With(String("k", "v"))
	assert.NotPanics(t, func() {
		log.Debug(context.Background(), "x")
		log.Info(context.Background(), "x")
		log.Warn(context.Background(), "x")
		log.Error(context.Background(), "x")
	})
	_, l := WithRunLogger(context.Background(), nil)
	assert.NotNil(t, l)
}
