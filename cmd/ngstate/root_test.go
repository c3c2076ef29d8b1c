package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaronLay10/ngstate/internal/neuroglancer"
	"github.com/AaronLay10/ngstate/internal/version"
)

const fixture = "../../internal/neuroglancer/testdata/path-state.json"

func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestPointsCommand(t *testing.T) {
	out, _, err := executeCommand(t, "points", "--annotation-layer", "annotation", fixture)
	require.NoError(t, err)

	var points []neuroglancer.Point
	require.NoError(t, json.Unmarshal([]byte(out), &points))
	assert.Equal(t, []neuroglancer.Point{
		{6815.5, 5411.5, 130.5},
		{6830.5, 5402.5, 131.5},
		{6842.5, 5396.5, 133.5},
	}, points)
}

func TestPointsCommand_RequiresLayerName(t *testing.T) {
	_, _, err := executeCommand(t, "points", fixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "annotation layer name is required")
}

func TestPointsCommand_NoMatchingLayer(t *testing.T) {
	_, stderr, err := executeCommand(t, "points", "--annotation-layer", "missing", fixture)
	require.Error(t, err)
	assert.Equal(t, "No annotations found in the file.", err.Error())
	assert.Contains(t, stderr, `"event":"annotation.failed"`)
}

func TestSourceCommand(t *testing.T) {
	out, _, err := executeCommand(t, "source", "--image-layer", "img", fixture)
	require.NoError(t, err)
	assert.Equal(t, "precomputed://gs://example-bucket/em/raw\n", out)
}

func TestSourceCommand_FromEnv(t *testing.T) {
	t.Setenv("NGSTATE_NEUROGLANCER_IMAGE_LAYER", "img")

	out, _, err := executeCommand(t, "source", fixture)
	require.NoError(t, err)
	assert.Equal(t, "precomputed://gs://example-bucket/em/raw\n", out)
}

func TestSourceCommand_InvalidShape(t *testing.T) {
	state := writeFile(t, "state.json", `{"layers": [{"type": "image", "name": "em", "source": 42}]}`)

	_, _, err := executeCommand(t, "source", "--image-layer", "em", state)
	require.Error(t, err)
	assert.Equal(t, "Invalid source format in the file.", err.Error())
}

func TestLayersCommand(t *testing.T) {
	out, _, err := executeCommand(t, "layers", fixture)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"image_layers": [{"type": "image", "name": "img"}],
		"annotation_layers": [{"type": "annotation", "name": "annotation"}]
	}`, out)
}

func TestExtractCommand_OptionsFile(t *testing.T) {
	opts := writeFile(t, "options.yaml", `version: 1
neuroglancer_annotation_layer: annotation
neuroglancer_image_layer: img
`)

	out, _, err := executeCommand(t, "extract", "--options", opts, fixture)
	require.NoError(t, err)

	var got neuroglancer.Extraction
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Points, 3)
	assert.Equal(t, "precomputed://gs://example-bucket/em/raw", got.SourceURL)
}

func TestExtractCommand_FlagOverridesOptionsFile(t *testing.T) {
	opts := writeFile(t, "options.yaml", `version: 1
neuroglancer_annotation_layer: annotation
neuroglancer_image_layer: wrong
`)

	out, _, err := executeCommand(t, "extract", "--options", opts, "--image-layer", "img", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "precomputed://gs://example-bucket/em/raw")
}

func TestExtractCommand_EnvOverridesOptionsFile(t *testing.T) {
	t.Setenv("NGSTATE_NEUROGLANCER_IMAGE_LAYER", "img")
	opts := writeFile(t, "options.yaml", `version: 1
neuroglancer_annotation_layer: annotation
neuroglancer_image_layer: wrong
`)

	out, _, err := executeCommand(t, "extract", "--options", opts, fixture)
	require.NoError(t, err)

	var got neuroglancer.Extraction
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "precomputed://gs://example-bucket/em/raw", got.SourceURL)
	assert.Len(t, got.Points, 3)
}

func TestExtractCommand_FlagOverridesEnv(t *testing.T) {
	t.Setenv("NGSTATE_NEUROGLANCER_IMAGE_LAYER", "wrong")

	out, _, err := executeCommand(t, "source", "--image-layer", "img", fixture)
	require.NoError(t, err)
	assert.Equal(t, "precomputed://gs://example-bucket/em/raw\n", out)
}

func TestExtractCommand_MissingNames(t *testing.T) {
	_, _, err := executeCommand(t, "extract", fixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neuroglancer_annotation_layer is required")
	assert.Contains(t, err.Error(), "neuroglancer_image_layer is required")
}

func TestExtractCommand_BadOptionsFile(t *testing.T) {
	opts := writeFile(t, "options.yaml", "version: 3\n")

	_, _, err := executeCommand(t, "extract", "--options", opts, fixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load options file")
}

func TestExtractCommand_MissingStateFile(t *testing.T) {
	_, stderr, err := executeCommand(t, "extract",
		"--annotation-layer", "a", "--image-layer", "b", "/nonexistent/state.json")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "An error occurred while opening the given JSON file: "))
	assert.Contains(t, stderr, `"event":"state.failed"`)
}

func TestVerboseLogsDebugEvents(t *testing.T) {
	_, stderr, err := executeCommand(t, "source", "-v", "--image-layer", "img", fixture)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"event":"system.startup"`)
	assert.Contains(t, stderr, `"event":"source.extracted"`)
}

func TestVersionFlag(t *testing.T) {
	out, _, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version.Version)
}
