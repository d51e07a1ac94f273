package manifest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	m := Default()

	assert.Equal(t, "sandbox", m.Name)
	assert.ElementsMatch(t, []string{"nodejs", "npm", "curl", "wget"}, m.Names())
	assert.Len(t, m.Packages, 4)
}

func TestDefault_PassesValidation(t *testing.T) {
	// The embedded manifest goes through the same validating loader as
	// external manifests.
	m, err := Load(bytes.NewReader(defaultManifest))
	require.NoError(t, err)
	assert.Equal(t, Default().Names(), m.Names())
}

func TestDefault_Categories(t *testing.T) {
	m := Default()

	assert.Equal(t, []string{"Runtimes", "Networking"}, m.Categories())
	assert.Len(t, m.ByCategory("Runtimes"), 2)
	assert.Len(t, m.ByCategory("Networking"), 2)
	assert.Empty(t, m.ByCategory("Databases"))
}

func TestLoad(t *testing.T) {
	input := `
name: minimal
packages:
  - name: curl
    category: Networking
`
	m, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "minimal", m.Name)
	assert.Equal(t, []string{"curl"}, m.Names())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "empty manifest",
			input:   "name: empty\npackages: []\n",
			wantErr: "declares no packages",
		},
		{
			name:    "nameless package",
			input:   "name: bad\npackages:\n  - description: oops\n",
			wantErr: "without a name",
		},
		{
			name:    "duplicate package",
			input:   "name: dup\npackages:\n  - name: curl\n  - name: curl\n",
			wantErr: "more than once",
		},
		{
			name:    "not yaml",
			input:   "{{{",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
