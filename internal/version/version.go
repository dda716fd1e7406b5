// Package version provides version information and CLI command support for
// the quest tools.
package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Build-time variables injected via ldflags:
//
//	-X github.com/GauravWaghmare23/OnChain-Quest/internal/version.Version={{.Version}}
//	-X github.com/GauravWaghmare23/OnChain-Quest/internal/version.GitCommit={{.FullCommit}}
//	-X github.com/GauravWaghmare23/OnChain-Quest/internal/version.BuildDate={{.Date}}
var (
	// Version is the semantic version of the application.
	// Set at build time via ldflags, defaults to "0.1.0-dev" for local builds.
	Version = "0.1.0-dev"

	// GitCommit is the git commit hash of the build.
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

// Info contains all version and build information.
type Info struct {
	Name      string   `json:"name" yaml:"name"`
	Version   string   `json:"version" yaml:"version"`
	GitCommit string   `json:"commit" yaml:"commit"`
	BuildDate string   `json:"build_date,omitempty" yaml:"build_date,omitempty"`
	GoVersion string   `json:"go" yaml:"go"`
	BuildDeps []string `json:"build_deps,omitempty" yaml:"build_deps,omitempty"`
}

// NewInfo creates a new Info struct with the given app name.
func NewInfo(name string) Info {
	return Info{
		Name:      name,
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: fmt.Sprintf("go version %s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
	}
}

// WithBuildDeps populates the build dependency list from runtime/debug.
func (i Info) WithBuildDeps() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	deps := make([]string, 0, len(bi.Deps))
	for _, dep := range bi.Deps {
		deps = append(deps, fmt.Sprintf("%s@%s", dep.Path, dep.Version))
	}
	sort.Strings(deps)
	i.BuildDeps = deps
	return i
}

// NewCommand returns a cobra command printing version information in text,
// json, or yaml.
func NewCommand(appName string) *cobra.Command {
	var format string
	var long bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := NewInfo(appName)
			if long {
				info = info.WithBuildDeps()
			}

			switch format {
			case "json":
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			case "yaml":
				out, err := yaml.Marshal(info)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(out))
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, %s)\n",
					info.Name, info.Version, info.GitCommit, info.GoVersion)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format (text|json|yaml)")
	cmd.Flags().BoolVar(&long, "long", false, "Include build dependencies")
	return cmd
}
