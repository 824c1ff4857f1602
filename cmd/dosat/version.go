package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version information set at build time via ldflags. When unset (plain
// `go install`), the values are recovered from the embedded build info.
var (
	version = ""
	commit  = ""
)

// getVersion returns the version string for the root command and the
// version subcommand. ldflags win over module build info.
func getVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

// getCommit returns the short VCS revision the binary was built from,
// or an empty string when neither ldflags nor build info carry one.
func getCommit() string {
	if commit != "" {
		return commit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 7 {
				return s.Value[:7]
			}
			return s.Value
		}
	}
	return ""
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version of dosat and, when known, the commit it was built from.`,
		Run: func(cmd *cobra.Command, _ []string) {
			if c := getCommit(); c != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "dosat %s (%s)\n", getVersion(), c)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dosat %s\n", getVersion())
		},
	}
}
