package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/qss/internal/translate"
)

func TestReadSource_File(t *testing.T) {
	path := writeSource(t, ".a { x }")

	src, err := ReadSource(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ".a { x }", src)
}

func TestReadSource_Stdin(t *testing.T) {
	src, err := ReadSource(StdinPath, strings.NewReader(".a {}"))
	require.NoError(t, err)
	assert.Equal(t, ".a {}", src)
}

func TestReadSource_MissingFile(t *testing.T) {
	_, err := ReadSource(filepath.Join(t.TempDir(), "nope.qss"), nil)
	require.Error(t, err)

	loadErr := err.(*LoadError)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestReadSource_RejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.qss")
	require.NoError(t, os.WriteFile(path, []byte{'.', 'a', 0xff, 0xfe}, 0644))

	_, err := ReadSource(path, nil)
	require.Error(t, err)

	loadErr := err.(*LoadError)
	assert.Equal(t, ErrCodeNotUTF8, loadErr.Code)
}

func TestReadSource_NormalizesToNFC(t *testing.T) {
	// "café" with a decomposed é: 'e' followed by combining acute.
	decomposed := ".café { id }"
	composed := ".café { id }"

	src, err := ReadSource(StdinPath, strings.NewReader(decomposed))
	require.NoError(t, err)
	assert.Equal(t, composed, src)

	// Both spellings translate to the same statement.
	sql, err := translate.Translate(src)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM café;", sql)
}

func TestDisplayPath(t *testing.T) {
	assert.Equal(t, "<stdin>", displayPath(StdinPath))
	assert.Equal(t, "x.qss", displayPath("x.qss"))
}
