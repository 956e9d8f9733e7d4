package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_File(t *testing.T) {
	path := writeSource(t, ".users {\n  name,\n  id\n}")

	out, _, err := execute(t, nil, "compile", path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT name, id FROM users;\n", out)
}

func TestCompile_Stdin(t *testing.T) {
	out, _, err := execute(t, strings.NewReader(".a { x }"), "compile", "-")
	require.NoError(t, err)
	assert.Equal(t, "SELECT x FROM a;\n", out)
}

func TestCompile_EmptyInput(t *testing.T) {
	path := writeSource(t, "")

	out, _, err := execute(t, nil, "compile", path)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestCompile_JSON(t *testing.T) {
	path := writeSource(t, ".a{}\n.b{x}")

	out, _, err := execute(t, nil, "--format", "json", "compile", path)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.TraceID)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "SELECT FROM a;\nSELECT x FROM b;", data["sql"])
	assert.Equal(t, float64(2), data["statements"])
}

func TestCompile_OutputFile(t *testing.T) {
	path := writeSource(t, ".a { x }")
	outPath := filepath.Join(t.TempDir(), "out.sql")

	_, _, err := execute(t, nil, "compile", path, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "SELECT x FROM a;\n", string(data))
}

func TestCompile_SyntaxErrorProducesNoOutput(t *testing.T) {
	path := writeSource(t, ".a { x ")

	out, _, err := execute(t, nil, "compile", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	// Diagnostic only - no partial SQL.
	assert.Contains(t, out, "UNTERMINATED_RULE")
	assert.Contains(t, out, path+":1:4")
	assert.NotContains(t, out, "SELECT")
}

func TestCompile_LexErrorPosition(t *testing.T) {
	path := writeSource(t, ".a { x; }")

	out, _, err := execute(t, nil, "compile", path)
	require.Error(t, err)
	assert.Contains(t, out, "UNEXPECTED_CHAR")
	assert.Contains(t, out, path+":1:7")
}

func TestCompile_MissingFile(t *testing.T) {
	out, _, err := execute(t, nil, "compile", filepath.Join(t.TempDir(), "missing.qss"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, ErrCodeNotFound)
}

func TestCompile_ErrorJSON(t *testing.T) {
	path := writeSource(t, "users {}")

	out, _, err := execute(t, nil, "--format", "json", "compile", path)
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "EXPECTED_SELECTOR", resp.Error.Code)
}

func TestCountStatements(t *testing.T) {
	assert.Equal(t, 0, countStatements(""))
	assert.Equal(t, 1, countStatements("SELECT x FROM a;"))
	assert.Equal(t, 3, countStatements("a;\nb;\nc;"))
}
