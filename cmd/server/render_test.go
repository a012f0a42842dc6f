package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand_HTML(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ada.yaml")
	out := filepath.Join(dir, "ada.html")
	require.NoError(t, os.WriteFile(in, []byte("name: Ada Lovelace\nskills: [Mathematics]\n"), 0o644))

	rootCmd.SetArgs([]string{"render", "--in", in, "--out", out})
	require.NoError(t, rootCmd.Execute())

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<h1>Ada Lovelace</h1>")
	assert.Contains(t, string(b), `<span class="badge">Mathematics</span>`)
	assert.NotContains(t, string(b), "<input")
}

func TestRenderCommand_UnsupportedOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ada.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"name":"Ada"}`), 0o644))

	rootCmd.SetArgs([]string{"render", "--in", in, "--out", filepath.Join(dir, "ada.docx")})
	err := rootCmd.Execute()

	assert.ErrorContains(t, err, "unsupported output format")
}
