package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"xltotxt/internal/app"
	"xltotxt/internal/cli"
	"xltotxt/internal/config"
	"xltotxt/internal/logger"
)

func main() {
	err := run(os.Stdin, os.Stdout, os.Args[1:])
	if err == nil {
		return
	}

	var exitErr *app.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, exitErr.Message)
		os.Exit(exitErr.Code)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(app.ExitFailure)
}

// run parses args and performs one conversion. Prompts read from in and
// everything the user sees is written to out.
func run(in io.Reader, out io.Writer, args []string) error {
	var configPath, promptMode string

	rootCmd := &cobra.Command{
		Use:   "xltotxt <source> <sheet> <target>",
		Short: "Append an Excel sheet to a plain text file",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(in, out, args, configPath, promptMode)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a TOML config file")
	rootCmd.Flags().StringVar(&promptMode, "prompt", "", "Prompt style: auto, line or tui (overrides config)")
	// flags end at the first positional, so sheet and file names may start with a dash
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.SetHelpFunc(func(*cobra.Command, []string) {
		fmt.Fprintln(out, cli.Help)
	})
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &app.ExitError{Code: app.ExitUsage, Message: fmt.Sprintf("Error: %v%s", err, cli.Usage), Err: err}
	})
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	return rootCmd.Execute()
}

func convert(in io.Reader, out io.Writer, args []string, configPath, promptMode string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return &app.ExitError{Code: app.ExitFailure, Message: fmt.Sprintf("Error loading config: %v", err), Err: err}
	}
	if promptMode != "" {
		cfg.Prompt.Mode = strings.ToLower(promptMode)
		if err := cfg.Validate(); err != nil {
			return &app.ExitError{Code: app.ExitUsage, Message: fmt.Sprintf("Error: %v%s", err, cli.Usage), Err: err}
		}
	}

	// logging is best effort and never stops a conversion
	if err := logger.Setup(cfg.Log.File, cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logger.Close()
	if configPath != "" {
		logger.Info("Loaded configuration", "path", configPath)
	}

	cwd := workingDir()
	inv, err := cli.Parse(args, cwd, cfg.Output.Extension)
	if err != nil {
		logger.Error("Too many arguments", "count", len(args))
		return &app.ExitError{Code: app.ExitUsage, Message: cli.TooManyArguments(), Err: err}
	}

	a, err := app.New(cfg, in, out, cwd)
	if err != nil {
		logger.Error("Failed to start", "error", err)
		return &app.ExitError{Code: app.ExitFailure, Message: fmt.Sprintf("Error: %v", err), Err: err}
	}

	err = a.Run(inv)
	if err != nil {
		logger.Error("Conversion ended with error", "error", err)
	}
	return err
}

func workingDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
