package doctor

import (
	"regexp"
	"strings"

	"github.com/jaspreet-dot-casa/sandbox-init/pkg/privilege"
	"github.com/jaspreet-dot-casa/sandbox-init/pkg/sysexec"
)

// checkTool checks if a tool is installed and gets its version.
func checkTool(exec sysexec.CommandExecutor, id, binary, name, desc string, versionArgs []string, versionRegex *regexp.Regexp, fixCmd *FixCommand) Check {
	check := Check{
		ID:          id,
		Name:        name,
		Description: desc,
		FixCommand:  fixCmd,
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		check.Status = StatusMissing
		check.Message = "not installed"
		return check
	}

	output, err := exec.Run(path, versionArgs...)
	if err != nil {
		// Tool exists but version check failed - still consider it OK
		check.Status = StatusOK
		check.Message = "installed (version unknown)"
		return check
	}

	version := extractVersion(output, versionRegex)
	if version != "" {
		check.Status = StatusOK
		check.Message = version
	} else {
		check.Status = StatusOK
		check.Message = "installed"
	}

	return check
}

// extractVersion extracts version string from command output.
func extractVersion(output string, regex *regexp.Regexp) string {
	if regex == nil {
		defaultRegex := regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?(?:-[a-zA-Z0-9]+)?)`)
		matches := defaultRegex.FindStringSubmatch(output)
		if len(matches) >= 2 {
			return matches[1]
		}
		return ""
	}

	matches := regex.FindStringSubmatch(output)
	if len(matches) >= 2 {
		return matches[1]
	}
	return ""
}

// CheckAptGet checks if the package manager is installed.
func CheckAptGet(exec sysexec.CommandExecutor) Check {
	return checkTool(
		exec,
		IDAptGet,
		"apt-get",
		"apt-get",
		"Debian-family package manager",
		[]string{"--version"},
		regexp.MustCompile(`apt (\d+\.\d+(?:\.\d+)?)`),
		nil, // A host without apt-get cannot be fixed from here
	)
}

// aptSourcePaths are the locations apt reads repository definitions from.
var aptSourcePaths = []string{
	"/etc/apt/sources.list",
	"/etc/apt/sources.list.d",
}

// CheckAptSources checks that the host has package repositories configured,
// since the index refresh pulls from the mirrors defined there.
func CheckAptSources(exec sysexec.CommandExecutor) Check {
	check := Check{
		ID:          IDAptSources,
		Name:        "apt sources",
		Description: "Package repository configuration",
	}

	for _, path := range aptSourcePaths {
		if exec.FileExists(path) {
			check.Status = StatusOK
			check.Message = path
			return check
		}
	}

	check.Status = StatusWarning
	check.Message = "no repository sources found"
	return check
}

// CheckSudo checks privilege escalation. Running as root passes without
// sudo; otherwise sudo must be on PATH, and cached credentials are reported.
func CheckSudo(exec sysexec.CommandExecutor, uid int) Check {
	check := Check{
		ID:          IDSudo,
		Name:        "sudo",
		Description: "Privilege escalation for package-manager commands",
	}

	if uid == privilege.RootUID {
		check.Status = StatusOK
		check.Message = "running as root, not needed"
		return check
	}

	if _, err := exec.LookPath(privilege.EscalationCommand); err != nil {
		check.Status = StatusMissing
		check.Message = "not installed"
		return check
	}

	if privilege.SudoCached(exec) {
		check.Status = StatusOK
		check.Message = "credentials cached"
		return check
	}

	check.Status = StatusWarning
	check.Message = "installed, will prompt for a password"
	return check
}

// CheckNodeJS checks if the Node.js runtime is installed.
func CheckNodeJS(exec sysexec.CommandExecutor) Check {
	return checkTool(
		exec,
		IDNodeJS,
		"node",
		"Node.js",
		"JavaScript runtime",
		[]string{"--version"},
		regexp.MustCompile(`v(\d+\.\d+\.\d+)`),
		packageFix("nodejs"),
	)
}

// CheckNpm checks if npm is installed.
func CheckNpm(exec sysexec.CommandExecutor) Check {
	return checkTool(
		exec,
		IDNpm,
		"npm",
		"npm",
		"Node.js package manager",
		[]string{"--version"},
		regexp.MustCompile(`(\d+\.\d+\.\d+)`),
		packageFix("npm"),
	)
}

// CheckCurl checks if curl is installed.
func CheckCurl(exec sysexec.CommandExecutor) Check {
	return checkTool(
		exec,
		IDCurl,
		"curl",
		"curl",
		"HTTP client",
		[]string{"--version"},
		regexp.MustCompile(`curl (\d+\.\d+(?:\.\d+)?)`),
		packageFix("curl"),
	)
}

// CheckWget checks if wget is installed.
func CheckWget(exec sysexec.CommandExecutor) Check {
	return checkTool(
		exec,
		IDWget,
		"wget",
		"wget",
		"Network downloader",
		[]string{"--version"},
		regexp.MustCompile(`Wget (\d+\.\d+(?:\.\d+)?)`),
		packageFix("wget"),
	)
}

// packageFix returns the fix command for a missing apt package.
func packageFix(name string) *FixCommand {
	return &FixCommand{
		Description: "Install via apt",
		Command:     strings.Join([]string{"apt-get", "install", "-y", name}, " "),
		Sudo:        true,
	}
}
