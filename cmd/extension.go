package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passed to extensions, with the global flag values.
const (
	EnvConfigFile = "PCQ_CONFIG"
	EnvSession    = "PCQ_SESSION"
	EnvVerbose    = "PCQ_VERBOSE"
)

// ExtensionPrefix prefixes the name of external subcommands.
const ExtensionPrefix = "pcq-"

// RunExtension attempts to find and execute an external pcq-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the global flags as environment variables.
func extensionEnv() []string {
	return []string{
		EnvConfigFile + "=" + *configFile,
		EnvSession + "=" + *sessionKey,
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}
