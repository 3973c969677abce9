package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bryan-cox/shiftplanner/internal/clipboard"
	"github.com/bryan-cox/shiftplanner/internal/collect"
	"github.com/bryan-cox/shiftplanner/internal/config"
	"github.com/bryan-cox/shiftplanner/internal/report"
	"github.com/bryan-cox/shiftplanner/internal/schedule"
)

// Output formats for the generate command.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// --- Cobra Command Definitions ---

var (
	// Used for flags.
	filePath    string
	configPath  string
	verbose     bool
	format      string
	showSummary bool
	copyOutput  bool
	appendMode  bool

	logLevel = new(slog.LevelVar)

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "shiftplanner",
		Short: "A CLI tool to build weekly shift rosters from employee preferences.",
		Long: `ShiftPlanner assigns employees to Morning, Afternoon and Evening shifts for each day of the week,
honoring each employee's first and second choice per day, a per-shift seat capacity and a weekly day cap.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logLevel.Set(slog.LevelDebug)
			}
		},
	}

	// generateCmd represents the generate command
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate the weekly roster.",
		Long:  `Reads the employee file, assigns shifts in registration order and prints the roster for Monday through Sunday.`,
		Run:   runGenerateCommand,
	}

	// collectCmd represents the collect command
	collectCmd = &cobra.Command{
		Use:   "collect",
		Short: "Enter employees and their shift preferences interactively.",
		Long:  `Prompts for employee names and per-day shift preferences (` + collect.CodeHelp + `) and saves them to the employee file.`,
		Run:   runCollectCommand,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Errors from commands are handled by slog, so we just exit.
		os.Exit(1)
	}
}

func init() {
	// Add persistent flags to the root command (available to all subcommands)
	rootCmd.PersistentFlags().StringVar(&filePath, "file", "employees.yml", "Path to the YAML employee file.")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML file overriding the scheduling limits.")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log each assignment decision.")

	// Add local flags to the 'generate' command
	generateCmd.Flags().StringVar(&format, "format", formatText, "Output format (text or yaml).")
	generateCmd.Flags().BoolVar(&showSummary, "summary", false, "Print a per-employee summary after the roster.")
	generateCmd.Flags().BoolVar(&copyOutput, "copy", false, "Copy the roster to the clipboard.")

	// Add local flags to the 'collect' command
	collectCmd.Flags().BoolVar(&appendMode, "append", false, "Keep the employees already in the file.")

	// Add subcommands to the root command
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(collectCmd)
}

// --- Main Application Entry Point ---

func main() {
	// Setup structured JSON logger for errors.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
	Execute()
}

// --- Command Execution Logic ---

func runGenerateCommand(cmd *cobra.Command, args []string) {
	team, err := collect.LoadFile(filePath)
	if err != nil {
		slog.Error("failed to load employee file", "error", err, "path", filePath)
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err, "path", configPath)
		os.Exit(1)
	}

	engine := schedule.NewEngine(cfg.ModelLimits(), slog.Default())
	result := engine.Generate(team.Employees())

	var rendered string
	switch format {
	case formatText:
		rendered = report.RosterText(result.Roster)
	case formatYAML:
		var b bytes.Buffer
		if err := report.WriteYAML(&b, result.Roster); err != nil {
			slog.Error("failed to render roster", "error", err)
			os.Exit(1)
		}
		rendered = b.String()
	default:
		slog.Error("unknown output format", "format", format)
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, rendered)
	if showSummary {
		report.PrintSummary(out, report.Summarize(result))
	}

	if copyOutput {
		if err := clipboard.CopyText(rendered); err != nil {
			slog.Warn("could not copy roster to clipboard", "error", err)
		} else {
			slog.Info("roster copied to clipboard")
		}
	}
}

func runCollectCommand(cmd *cobra.Command, args []string) {
	team := &schedule.Team{}
	if appendMode {
		if _, err := os.Stat(filePath); err == nil {
			if team, err = collect.LoadFile(filePath); err != nil {
				slog.Error("failed to load employee file", "error", err, "path", filePath)
				os.Exit(1)
			}
		}
	}

	prompter := collect.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	added, err := prompter.Collect(team)
	if err != nil {
		slog.Error("failed to collect employees", "error", err, "added", added)
		os.Exit(1)
	}

	if err := collect.SaveFile(filePath, team.Employees()); err != nil {
		slog.Error("failed to save employee file", "error", err, "path", filePath)
		os.Exit(1)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nSaved %d employee(s) to %s\n", team.Len(), filePath)
}
