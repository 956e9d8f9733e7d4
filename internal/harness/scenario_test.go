package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScenario writes a scenario YAML into a temp dir and returns its path.
func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	path := writeScenario(t, `
name: basic
description: a valid scenario
input: ".a { x }"
want_sql: "SELECT x FROM a;"
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "basic", s.Name)
	require.NotNil(t, s.WantSQL)
	assert.Equal(t, "SELECT x FROM a;", *s.WantSQL)
}

func TestLoadScenario_EmptyWantSQLIsValid(t *testing.T) {
	// The empty stylesheet legitimately expects empty output.
	path := writeScenario(t, `
name: empty
description: empty in, empty out
input: ""
want_sql: ""
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	require.NotNil(t, s.WantSQL)
	assert.Equal(t, "", *s.WantSQL)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestLoadScenario_UnknownFieldRejected(t *testing.T) {
	// Strict parsing catches typos like "want_err:" for "want_error:".
	path := writeScenario(t, `
name: typo
description: has a typo
input: ".a {}"
want_err:
  code: UNTERMINATED_RULE
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "missing name",
			content: "description: d\ninput: \"\"\nwant_sql: \"\"\n",
			wantMsg: "name is required",
		},
		{
			name:    "missing description",
			content: "name: n\ninput: \"\"\nwant_sql: \"\"\n",
			wantMsg: "description is required",
		},
		{
			name:    "no expectation",
			content: "name: n\ndescription: d\ninput: \".a {}\"\n",
			wantMsg: "one of want_sql or want_error is required",
		},
		{
			name: "both expectations",
			content: "name: n\ndescription: d\ninput: \".a {}\"\nwant_sql: \"\"\n" +
				"want_error:\n  code: UNTERMINATED_RULE\n",
			wantMsg: "mutually exclusive",
		},
		{
			name:    "error without code",
			content: "name: n\ndescription: d\ninput: \".a {\"\nwant_error:\n  line: 1\n",
			wantMsg: "want_error.code is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}
