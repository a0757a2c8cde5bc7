package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"xltotxt/internal/app"
	"xltotxt/internal/cli"
)

// setupWorkspace changes into a fresh directory holding book.xlsx and a
// config that keeps logs inside it and forces line prompts.
func setupWorkspace(t *testing.T) (dir, configPath string) {
	t.Helper()

	dir = t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(prev) })

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "Parts"))
	require.NoError(t, f.SetSheetRow("Parts", "A1", &[]any{"Part", "Count"}))
	require.NoError(t, f.SetSheetRow("Parts", "A2", &[]any{"Nut", 40}))
	require.NoError(t, f.SetSheetRow("Parts", "A3", &[]any{"Washer", nil}))
	_, err = f.NewSheet("Archive")
	require.NoError(t, err)
	require.NoError(t, f.SaveAs(filepath.Join(dir, "book.xlsx")))

	configPath = filepath.Join(dir, "xltotxt.toml")
	content := fmt.Sprintf("[prompt]\nmode = \"line\"\n\n[log]\nfile = %q\nlevel = \"debug\"\n", filepath.Join(dir, "logs", "xltotxt.log"))
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return dir, configPath
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *app.ExitError
	require.True(t, errors.As(err, &exitErr), "expected *app.ExitError, got %T (%v)", err, err)
	return exitErr.Code
}

func TestRun_CreatesTargetWithForcedExtension(t *testing.T) {
	dir, configPath := setupWorkspace(t)

	out := &bytes.Buffer{}
	err := run(strings.NewReader("N\n"), out, []string{"--config", configPath, "book.xlsx", "Parts", "out"})
	require.NoError(t, err)

	require.Contains(t, out.String(), "Creating 'out.txt'...")
	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	require.Equal(t, "Part Count \nNut 40 \nWasher None \n", string(data))

	logData, err := os.ReadFile(filepath.Join(dir, "logs", "xltotxt.log"))
	require.NoError(t, err)
	require.Contains(t, string(logData), "Loaded configuration")
	require.Contains(t, string(logData), "Wrote target")
}

func TestRun_AppendThenOverwrite(t *testing.T) {
	dir, configPath := setupWorkspace(t)
	target := filepath.Join(dir, "out.txt")
	args := []string{"--config", configPath, "book.xlsx", "Parts", "out.txt"}

	require.NoError(t, run(strings.NewReader("n\n"), &bytes.Buffer{}, args))
	require.NoError(t, run(strings.NewReader("1\nn\n"), &bytes.Buffer{}, args))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, 3+1+3, strings.Count(string(data), "\n"))

	require.NoError(t, run(strings.NewReader("2\ny\nn\n"), &bytes.Buffer{}, args))
	data, err = os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(string(data), "\n"))
}

func TestRun_ListSheets(t *testing.T) {
	_, configPath := setupWorkspace(t)

	out := &bytes.Buffer{}
	err := run(strings.NewReader(""), out, []string{"--config", configPath, "book.xlsx", "list"})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Sheet names in 'book.xlsx':\n  Parts\n  Archive\n")
}

func TestRun_NoArguments(t *testing.T) {
	_, configPath := setupWorkspace(t)

	out := &bytes.Buffer{}
	err := run(strings.NewReader(""), out, []string{"--config", configPath})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Missing argument <source path/file.extension>")
	require.Contains(t, out.String(), "  book.xlsx\n")
}

func TestRun_HelpFlag(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(strings.NewReader(""), out, []string{"-h"})
	require.NoError(t, err)
	require.Contains(t, out.String(), cli.Help)
}

func TestRun_UsageErrors(t *testing.T) {
	_, configPath := setupWorkspace(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"too many arguments", []string{"--config", configPath, "a.xlsx", "s", "t", "u"}, "Error: Too many arguments."},
		{"unknown flag", []string{"--colour"}, "unknown flag: --colour"},
		{"bad prompt mode", []string{"--config", configPath, "--prompt", "gui", "book.xlsx"}, "prompt mode"},
		{"missing target", []string{"--config", configPath, "book.xlsx", "Parts"}, "Missing argument <target path/file.txt>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(strings.NewReader(""), &bytes.Buffer{}, tt.args)
			require.Equal(t, app.ExitUsage, exitCode(t, err))
			require.Contains(t, err.Error(), tt.want)
			require.Contains(t, err.Error(), "Usage: xltotxt")
		})
	}
}

func TestRun_MissingConfig(t *testing.T) {
	dir, _ := setupWorkspace(t)

	err := run(strings.NewReader(""), &bytes.Buffer{}, []string{"--config", filepath.Join(dir, "nope.toml"), "book.xlsx"})
	require.Equal(t, app.ExitFailure, exitCode(t, err))
	require.Contains(t, err.Error(), "Error loading config")
}

func TestRun_DashPrefixedNames(t *testing.T) {
	dir, configPath := setupWorkspace(t)

	f, err := excelize.OpenFile(filepath.Join(dir, "book.xlsx"))
	require.NoError(t, err)
	_, err = f.NewSheet("-2024")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("-2024", "A1", &[]any{"Q1", 7}))
	require.NoError(t, f.Save())
	require.NoError(t, f.SaveAs(filepath.Join(dir, "-book.xlsx")))
	require.NoError(t, f.Close())

	tests := []struct {
		name   string
		args   []string
		target string
	}{
		{"sheet", []string{"--config", configPath, "book.xlsx", "-2024", "q"}, "q.txt"},
		{"source after --", []string{"--config", configPath, "--", "-book.xlsx", "-2024", "-q"}, "-q.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(strings.NewReader("n\n"), &bytes.Buffer{}, tt.args)
			require.NoError(t, err)

			data, err := os.ReadFile(filepath.Join(dir, tt.target))
			require.NoError(t, err)
			require.Equal(t, "Q1 7 \n", string(data))
		})
	}
}
