// Copyright (c) 2026 Genpass Team
// Genpass - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for Genpass using the
// Cobra library. It defines the root command, its flags, the hidden
// clipboard-holder subcommand, and the main entry point for execution.

package cli

import (
	"crypto/rand"
	"fmt"
	"os"
	"strconv"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/toeirei/genpass/internal/clipboard"
	"github.com/toeirei/genpass/internal/config"
	"github.com/toeirei/genpass/internal/generator"
	"github.com/toeirei/genpass/internal/logging"
)

var version = "dev" // this will be set by the linker

// Execute runs the CLI entrypoint. The root main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command. This
// function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genpass [length]",
		Short: "Genpass generates random passwords from a configurable symbol universe.",
		Long: `Genpass generates a random password from a configurable universe of
symbols: latin letters, digits, special characters, plus free-form
allow and deny sets. Characters are drawn from the operating system's
entropy source.

By default the password is printed to stdout. With --copy it is placed
into the system clipboard instead; on linux a detached holder process
keeps it available until the clipboard is replaced.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}
	cmd.Version = version

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose (debug) output on stderr")
	cmd.PersistentFlags().String("config", "", "config file")

	cmd.Flags().Bool("no-latin-lower", false, "Turn off latin lowercase symbols")
	cmd.Flags().Bool("no-latin-upper", false, "Turn off latin uppercase symbols")
	cmd.Flags().Bool("no-latin", false, "Turn off latin symbols")
	cmd.Flags().Bool("no-digits", false, "Turn off digits")
	cmd.Flags().Bool("no-special", false, "Turn off special symbols")
	cmd.Flags().StringArrayP("allow", "a", nil, "Allow additional symbols (repeatable)")
	cmd.Flags().StringArrayP("deny", "d", nil, "Deny symbols, takes precedence over --allow (repeatable)")
	cmd.Flags().BoolP("copy", "c", false, "Copy the generated password to the clipboard instead of printing it")

	cmd.AddCommand(newHolderCmd())

	return cmd
}

// runGenerate is the whole pipeline: config record, symbol universe,
// secure sampling, delivery.
func runGenerate(cmd *cobra.Command, args []string) error {
	cfgPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := map[string]any{"length": config.DefaultLength}
	cfg, usedFile, err := config.LoadConfig[config.Config](cmd, defaults, cfgPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logging.Init(cfg.Verbose)

	// First run: persist a default config so users have a file to edit.
	// Failure is a warning, the run continues on defaults.
	if usedFile == "" {
		def := config.Config{Length: config.DefaultLength}
		if writeErr := config.WriteConfigFile(&def, false); writeErr != nil {
			log.Warnf("could not write default config file: %v", writeErr)
		}
	}

	// The positional length argument overrides the config value.
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid length %q: %w", args[0], err)
		}
		cfg.Length = n
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	req, err := generator.NewRequest(cfg)
	if err != nil {
		return err
	}

	password, err := req.Generate(rand.Reader)
	if err != nil {
		return err
	}
	defer password.Zero()

	if req.Copy {
		return clipboard.New(cfg.Verbose).Deliver(password)
	}

	return password.Use(func(b []byte) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n", b)
		return err
	})
}

// newHolderCmd returns the hidden subcommand the detached clipboard
// holder process runs under. It reads the password from stdin, stores it,
// and blocks until the clipboard is superseded.
func newHolderCmd() *cobra.Command {
	return &cobra.Command{
		Use:    clipboard.HolderCommand,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logging.Init(verbose)
			return clipboard.Hold(cmd.InOrStdin())
		},
	}
}

// getConfigPathFromCli returns the --config flag value when the user has
// explicitly set it, verifying the file exists.
func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}
