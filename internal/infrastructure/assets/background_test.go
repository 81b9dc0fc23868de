package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackgroundStyle(t *testing.T) {
	// 最小のPNGヘッダー
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	path := filepath.Join(t.TempDir(), "backimage.png")
	require.NoError(t, os.WriteFile(path, png, 0o644))

	style, err := BackgroundStyle(path)
	require.NoError(t, err)

	css := string(style)
	assert.True(t, strings.HasPrefix(css, `background-image: url("data:image/png;base64,`))
	assert.Contains(t, css, "background-size: contain;")
	assert.Contains(t, css, "background-color: #AAAAAA;")
}

func TestBackgroundStyle_MissingFile(t *testing.T) {
	style, err := BackgroundStyle(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.Error(t, err)
	assert.Equal(t, DefaultBackgroundStyle(), style)
}
