package apt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateCmd(t *testing.T) {
	tests := []struct {
		name     string
		prefix   []string
		expected []string
	}{
		{
			name:     "no prefix runs apt-get directly",
			prefix:   nil,
			expected: []string{"apt-get", "update"},
		},
		{
			name:     "sudo prefix wraps apt-get",
			prefix:   []string{"sudo"},
			expected: []string{"sudo", "apt-get", "update"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := UpdateCmd(tt.prefix)
			assert.Equal(t, tt.expected, inv.Argv())
			assert.Equal(t, tt.expected[0], inv.Name)
			assert.Contains(t, inv.Env, "DEBIAN_FRONTEND=noninteractive")
		})
	}
}

func TestInstallCmd(t *testing.T) {
	packages := []string{"nodejs", "npm", "curl", "wget"}

	inv := InstallCmd(nil, packages)
	assert.Equal(t, []string{"apt-get", "install", "-y", "nodejs", "npm", "curl", "wget"}, inv.Argv())

	inv = InstallCmd([]string{"sudo"}, packages)
	assert.Equal(t, "sudo", inv.Name)
	assert.Equal(t, []string{"apt-get", "install", "-y", "nodejs", "npm", "curl", "wget"}, inv.Args)
}

func TestInstallCmd_DoesNotMutatePackages(t *testing.T) {
	packages := []string{"curl", "wget"}
	InstallCmd([]string{"sudo"}, packages)
	assert.Equal(t, []string{"curl", "wget"}, packages)
}
