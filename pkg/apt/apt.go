// Package apt builds apt-get invocations for the provisioner. It constructs
// argv slices only; execution goes through the shared executor so tests can
// observe exactly what would run.
package apt

// Command is the Debian-family package manager binary.
const Command = "apt-get"

// NoninteractiveEnv suppresses debconf prompts during unattended installs.
var NoninteractiveEnv = []string{"DEBIAN_FRONTEND=noninteractive"}

// Invocation is a fully resolved package-manager command.
type Invocation struct {
	// Name is the program to execute (the escalation command when a prefix
	// is present, apt-get otherwise).
	Name string

	// Args are the remaining argv entries.
	Args []string

	// Env holds extra environment variables for the child process.
	Env []string
}

// Argv returns the full command line, name included, for display.
func (i Invocation) Argv() []string {
	return append([]string{i.Name}, i.Args...)
}

// UpdateCmd returns the index-refresh invocation with the given
// privilege-escalation prefix applied.
func UpdateCmd(prefix []string) Invocation {
	return build(prefix, "update")
}

// InstallCmd returns the install invocation for the given packages with the
// privilege-escalation prefix applied. The -y flag keeps apt-get from
// prompting for confirmation.
func InstallCmd(prefix []string, packages []string) Invocation {
	args := append([]string{"install", "-y"}, packages...)
	return build(prefix, args...)
}

func build(prefix []string, args ...string) Invocation {
	argv := make([]string, 0, len(prefix)+1+len(args))
	argv = append(argv, prefix...)
	argv = append(argv, Command)
	argv = append(argv, args...)

	return Invocation{
		Name: argv[0],
		Args: argv[1:],
		Env:  NoninteractiveEnv,
	}
}
