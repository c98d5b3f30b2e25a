package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcph/mcph/internal/errors"
	"github.com/mcph/mcph/internal/server"
)

// Package-level flag variables for the install command.
var (
	installName      string
	installEnv       []string
	installSkipCheck bool
)

func init() {
	installCmd.Flags().StringVar(&installName, "name", "",
		"server name to register (default: derived from the package)")
	installCmd.Flags().StringSliceVar(&installEnv, "env", nil,
		"environment variables in KEY=VALUE format (repeatable)")
	installCmd.Flags().BoolVar(&installSkipCheck, "skip-checks", false,
		"skip dependency checks")
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install <package>",
	Short: "Install an MCP server from a package specifier",
	Long: `Install an MCP server by package specifier.

The specifier determines the server type and launch command:

  @scope/pkg[@version]     npm package, launched via npx
  docker:image[:tag]       docker image, launched via docker run
  path/to/server.py        python script
  https://...              binary download URL

Before writing any config, the dependencies of the detected type are
checked (Node.js for npm, Python for scripts, Docker for images) and
install instructions are printed when something is missing.

Examples:
  mcph install @modelcontextprotocol/server-filesystem
  mcph install server-github@2.0.0 --name github
  mcph install docker:ghcr.io/example/mcp:latest --client cursor`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

// runInstall implements the install command logic.
func runInstall(cmd *cobra.Command, args []string) error {
	spec := server.Detect(args[0])

	name := installName
	if name == "" {
		name = defaultServerName(spec)
	}

	if !installSkipCheck {
		if checker := spec.Checker(); checker != nil {
			check := checker.Check(cmd.Context())
			fmt.Printf("%s: %s\n", check.Name, check.Summary())
			if !check.Healthy() {
				for _, m := range check.Instructions {
					fmt.Printf("  %s: %s\n", m.Name, m.Command)
				}
				return errors.NewUserError(
					errors.Newf("dependency %s is not ready", check.Name),
					"Install the dependency above, or pass --skip-checks")
			}
		}
	}

	cfg := spec.Command()
	envMap, err := parseKeyValueSlice(installEnv, "--env")
	if err != nil {
		return err
	}
	cfg.Env = envMap

	registry, err := newRegistry()
	if err != nil {
		return err
	}
	targets, err := targetClients(registry)
	if err != nil {
		return err
	}

	manager := newHistoryManager()
	for _, c := range targets {
		fmt.Printf("Installing '%s' on %s... ", name, c.Name())
		if _, err := manager.ApplyConfig(c, name, cfg); err != nil {
			fmt.Println("failed")
			return err
		}
		fmt.Println("done")
	}

	fmt.Printf("MCP server '%s' installed (%s)\n", name, formatCommand(cfg))
	return nil
}

// defaultServerName derives a server name from the package specifier:
// the last path segment, without scope, version, or extension.
func defaultServerName(spec server.Spec) string {
	name := spec.Package
	for _, sep := range []string{"/", ":"} {
		if i := strings.LastIndex(name, sep); i >= 0 {
			name = name[i+1:]
		}
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name
}
