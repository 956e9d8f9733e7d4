package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarios runs every scenario file under testdata/scenarios.
// Success scenarios are additionally pinned against golden files.
func TestScenarios(t *testing.T) {
	files, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files, "no scenario files found")

	for _, file := range files {
		scenario, err := LoadScenario(file)
		require.NoError(t, err, "loading %s", file)

		t.Run(scenario.Name, func(t *testing.T) {
			require.NoError(t, RunWithGolden(t, scenario))
		})
	}
}

func TestRun_ReportsSQLMismatch(t *testing.T) {
	want := "SELECT wrong FROM users;"
	s := &Scenario{
		Name:        "mismatch",
		Description: "deliberately wrong expectation",
		Input:       ".users { name }",
		WantSQL:     &want,
	}

	result, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SQL mismatch")
	// The raw outcome is still available for diagnostics.
	assert.Equal(t, "SELECT name FROM users;", result.SQL)
}

func TestRun_ReportsUnexpectedSuccess(t *testing.T) {
	s := &Scenario{
		Name:        "expected-failure",
		Description: "expects an error that never happens",
		Input:       ".a { x }",
		WantError:   &ErrorExpectation{Code: "UNTERMINATED_RULE"},
	}

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "translation succeeded")
}

func TestRun_ReportsWrongErrorCode(t *testing.T) {
	s := &Scenario{
		Name:        "wrong-code",
		Description: "expects a different failure",
		Input:       ".a { x ",
		WantError:   &ErrorExpectation{Code: "EXPECTED_SELECTOR"},
	}

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error code mismatch")
}

func TestRun_ChecksErrorPosition(t *testing.T) {
	s := &Scenario{
		Name:        "wrong-position",
		Description: "right code, wrong column",
		Input:       ".a { x ",
		WantError:   &ErrorExpectation{Code: "UNTERMINATED_RULE", Line: 1, Column: 99},
	}

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column mismatch")
}
