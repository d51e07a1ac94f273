package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockExecutor is a mock command executor for testing.
type MockExecutor struct {
	LookPathFunc   func(file string) (string, error)
	RunFunc        func(name string, args ...string) (string, error)
	StreamFunc     func(name string, args ...string) error
	FileExistsFunc func(path string) bool
}

func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}

func (m *MockExecutor) Run(name string, args ...string) (string, error) {
	if m.RunFunc != nil {
		return m.RunFunc(name, args...)
	}
	return "1.0.0", nil
}

func (m *MockExecutor) Stream(_ context.Context, _ []string, name string, args ...string) error {
	if m.StreamFunc != nil {
		return m.StreamFunc(name, args...)
	}
	return nil
}

func (m *MockExecutor) FileExists(path string) bool {
	if m.FileExistsFunc != nil {
		return m.FileExistsFunc(path)
	}
	return true
}

func TestCheckAptGet_Installed(t *testing.T) {
	exec := &MockExecutor{
		LookPathFunc: func(file string) (string, error) {
			if file == "apt-get" {
				return "/usr/bin/apt-get", nil
			}
			return "", errors.New("not found")
		},
		RunFunc: func(name string, args ...string) (string, error) {
			return "apt 2.7.14 (amd64)", nil
		},
	}

	check := CheckAptGet(exec)

	assert.Equal(t, IDAptGet, check.ID)
	assert.Equal(t, StatusOK, check.Status)
	assert.Equal(t, "2.7.14", check.Message)
	assert.Nil(t, check.FixCommand)
}

func TestCheckAptGet_NotInstalled(t *testing.T) {
	exec := &MockExecutor{
		LookPathFunc: func(file string) (string, error) {
			return "", errors.New("not found")
		},
	}

	check := CheckAptGet(exec)

	assert.Equal(t, StatusMissing, check.Status)
	assert.Equal(t, "not installed", check.Message)
}

func TestCheckAptSources_Configured(t *testing.T) {
	exec := &MockExecutor{
		FileExistsFunc: func(path string) bool {
			return path == "/etc/apt/sources.list"
		},
	}

	check := CheckAptSources(exec)

	assert.Equal(t, StatusOK, check.Status)
	assert.Equal(t, "/etc/apt/sources.list", check.Message)
}

func TestCheckAptSources_DirectoryOnly(t *testing.T) {
	exec := &MockExecutor{
		FileExistsFunc: func(path string) bool {
			return path == "/etc/apt/sources.list.d"
		},
	}

	check := CheckAptSources(exec)

	assert.Equal(t, StatusOK, check.Status)
	assert.Equal(t, "/etc/apt/sources.list.d", check.Message)
}

func TestCheckAptSources_Missing(t *testing.T) {
	exec := &MockExecutor{
		FileExistsFunc: func(path string) bool {
			return false
		},
	}

	check := CheckAptSources(exec)

	assert.Equal(t, StatusWarning, check.Status)
	assert.Equal(t, "no repository sources found", check.Message)
}

func TestCheckSudo_AsRoot(t *testing.T) {
	exec := &MockExecutor{
		LookPathFunc: func(file string) (string, error) {
			return "", errors.New("should not be called")
		},
	}

	check := CheckSudo(exec, 0)

	assert.Equal(t, StatusOK, check.Status)
	assert.Equal(t, "running as root, not needed", check.Message)
}

func TestCheckSudo_CachedCredentials(t *testing.T) {
	exec := &MockExecutor{
		RunFunc: func(name string, args ...string) (string, error) {
			assert.Equal(t, "sudo", name)
			return "", nil
		},
	}

	check := CheckSudo(exec, 1000)

	assert.Equal(t, StatusOK, check.Status)
	assert.Equal(t, "credentials cached", check.Message)
}

func TestCheckSudo_NeedsPassword(t *testing.T) {
	exec := &MockExecutor{
		RunFunc: func(name string, args ...string) (string, error) {
			return "", errors.New("a password is required")
		},
	}

	check := CheckSudo(exec, 1000)

	assert.Equal(t, StatusWarning, check.Status)
	assert.Contains(t, check.Message, "password")
}

func TestCheckSudo_NotInstalled(t *testing.T) {
	exec := &MockExecutor{
		LookPathFunc: func(file string) (string, error) {
			return "", errors.New("not found")
		},
	}

	check := CheckSudo(exec, 1000)

	assert.Equal(t, StatusMissing, check.Status)
}

func TestCheckNodeJS_Installed(t *testing.T) {
	exec := &MockExecutor{
		LookPathFunc: func(file string) (string, error) {
			if file == "node" {
				return "/usr/bin/node", nil
			}
			return "", errors.New("not found")
		},
		RunFunc: func(name string, args ...string) (string, error) {
			return "v20.11.1", nil
		},
	}

	check := CheckNodeJS(exec)

	assert.Equal(t, StatusOK, check.Status)
	assert.Equal(t, "20.11.1", check.Message)
}

func TestCheckNodeJS_NotInstalled(t *testing.T) {
	exec := &MockExecutor{
		LookPathFunc: func(file string) (string, error) {
			return "", errors.New("not found")
		},
	}

	check := CheckNodeJS(exec)

	assert.Equal(t, StatusMissing, check.Status)
	require.NotNil(t, check.FixCommand)
	assert.Equal(t, "apt-get install -y nodejs", check.FixCommand.Command)
	assert.True(t, check.FixCommand.Sudo)
}

func TestCheckWget_VersionExtraction(t *testing.T) {
	exec := &MockExecutor{
		RunFunc: func(name string, args ...string) (string, error) {
			return "GNU Wget 1.21.4 built on linux-gnu.", nil
		},
	}

	check := CheckWget(exec)

	assert.Equal(t, StatusOK, check.Status)
	assert.Equal(t, "1.21.4", check.Message)
}

func TestCheckAll(t *testing.T) {
	checker := NewCheckerWithExecutor(&MockExecutor{}, 0)

	groups := checker.CheckAll()

	require.Len(t, groups, 2)
	assert.Equal(t, GroupSystem, groups[0].ID)
	assert.Len(t, groups[0].Checks, 3)
	assert.Equal(t, GroupPackages, groups[1].ID)
	assert.Len(t, groups[1].Checks, 4)
}

func TestCheckAllAsync_MatchesSync(t *testing.T) {
	checker := NewCheckerWithExecutor(&MockExecutor{}, 0)

	sync := checker.CheckAll()
	async := checker.CheckAllAsync()

	require.Len(t, async, len(sync))
	for i := range sync {
		assert.Equal(t, sync[i].ID, async[i].ID)
		assert.Len(t, async[i].Checks, len(sync[i].Checks))
	}
}

func TestGetSummary(t *testing.T) {
	checker := NewCheckerWithExecutor(&MockExecutor{}, 0)

	groups := []CheckGroup{
		{
			Checks: []Check{
				{Status: StatusOK},
				{Status: StatusMissing},
				{Status: StatusWarning},
				{Status: StatusError},
			},
		},
	}

	summary := checker.GetSummary(groups)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 1, summary.OK)
	assert.Equal(t, 1, summary.Missing)
	assert.Equal(t, 1, summary.Warnings)
	assert.Equal(t, 1, summary.Errors)
	assert.True(t, checker.HasIssues(groups))
}

func TestHasIssues_AllOK(t *testing.T) {
	checker := NewCheckerWithExecutor(&MockExecutor{}, 0)

	groups := []CheckGroup{
		{Checks: []Check{{Status: StatusOK}, {Status: StatusWarning}}},
	}

	assert.False(t, checker.HasIssues(groups))
}

func TestRunCheck_Unknown(t *testing.T) {
	checker := NewCheckerWithExecutor(&MockExecutor{}, 0)

	check := checker.GetCheck("made-up")

	assert.Equal(t, StatusError, check.Status)
	assert.Equal(t, "unknown check", check.Message)
}

func TestCheckStatusString(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "missing", StatusMissing.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "warning", StatusWarning.String())
	assert.Equal(t, "unknown", CheckStatus(99).String())
}
