package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	checklist, ok := c.Documentation("va-disability-compensation")
	require.True(t, ok, "embedded catalog must know va-disability-compensation")
	assert.Contains(t, checklist.Required, "DD-214 (Certificate of Release or Discharge from Active Duty)")
	assert.NotEmpty(t, checklist.Recommended)
}

func TestDocumentation_UnknownProgram(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	_, ok := c.Documentation("program-without-checklist")
	assert.False(t, ok)
}

func TestParse_SplitsByRequiredFlag(t *testing.T) {
	c, err := parse([]byte(`{
		"prog-a": [
			{"name": "Proof of income", "required": true},
			{"name": "Utility bill", "required": false},
			{"name": "Birth certificate", "required": true}
		]
	}`))
	require.NoError(t, err)

	checklist, ok := c.Documentation("prog-a")
	require.True(t, ok)
	assert.Equal(t, []string{"Birth certificate", "Proof of income"}, checklist.Required)
	assert.Equal(t, []string{"Utility bill"}, checklist.Recommended)
}

func TestParse_Malformed(t *testing.T) {
	_, err := parse([]byte(`{"prog-a": "not a list"}`))
	assert.Error(t, err)
}

func TestPrograms_Sorted(t *testing.T) {
	c, err := parse([]byte(`{"zeta": [], "alpha": [], "mid": []}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, c.Programs())
}
