package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcph/mcph/internal/deps"
	"github.com/mcph/mcph/internal/errors"
)

// doctorJSON holds the value of the doctor --json flag.
var doctorJSON bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check tool dependencies and client config health",
	Long: `Run diagnostic checks on external tools and client config files.

Probes the runtimes MCP servers commonly need (Node.js, Python, Docker,
Git) and verifies that each detected client's config file is readable.

Exit codes:
  0 - All checks passed
  1 - One or more checks failed`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

// doctorReport is the JSON shape of the doctor output.
type doctorReport struct {
	Dependencies []deps.Check  `json:"dependencies"`
	Clients      []clientCheck `json:"clients"`
}

type clientCheck struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Detected bool   `json:"detected"`
	Error    string `json:"error,omitempty"`
}

// runDoctor implements the doctor command logic.
func runDoctor(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	checkers := []deps.Checker{
		deps.NewNodeChecker(""),
		deps.NewPythonChecker(""),
		deps.NewDockerChecker("", false),
		deps.NewGitChecker(),
	}

	report := doctorReport{}
	for _, checker := range checkers {
		report.Dependencies = append(report.Dependencies, checker.Check(ctx))
	}

	registry, err := newRegistry()
	if err != nil {
		return err
	}
	for _, c := range registry.All() {
		cc := clientCheck{
			Name:     c.Name(),
			Path:     c.ConfigPath(),
			Detected: c.IsInstalled(),
		}
		if cc.Detected {
			if _, err := c.ListServers(); err != nil {
				cc.Error = err.Error()
			}
		}
		report.Clients = append(report.Clients, cc)
	}

	if doctorJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printDoctorText(report)
	}

	if failed := countFailures(report); failed > 0 {
		return errors.NewExitError(errors.Newf("%d checks failed", failed), errors.ExitUser)
	}
	return nil
}

func printDoctorText(report doctorReport) {
	fmt.Println("Dependencies:")
	for _, check := range report.Dependencies {
		icon := "✓"
		if !check.Healthy() {
			icon = "✗"
		}
		fmt.Printf("  %s %s: %s\n", icon, check.Name, check.Summary())
		for _, m := range check.Instructions {
			fmt.Printf("      %s: %s\n", m.Name, m.Command)
		}
	}

	fmt.Println("Clients:")
	for _, cc := range report.Clients {
		switch {
		case cc.Error != "":
			fmt.Printf("  ✗ %s: config unreadable: %s\n", cc.Name, cc.Error)
		case cc.Detected:
			fmt.Printf("  ✓ %s: %s\n", cc.Name, cc.Path)
		default:
			fmt.Printf("  - %s: not detected\n", cc.Name)
		}
	}
}

func countFailures(report doctorReport) int {
	n := 0
	for _, check := range report.Dependencies {
		// Missing optional runtimes are informational; only broken
		// installs count as failures.
		if check.Status == deps.StatusVersionMismatch || check.Status == deps.StatusNeedsConfig {
			n++
		}
	}
	for _, cc := range report.Clients {
		if cc.Error != "" {
			n++
		}
	}
	return n
}
