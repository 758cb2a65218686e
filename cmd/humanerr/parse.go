package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	burntsushi "github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	humanerrors "github.com/NSPC911/human-errors"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.json|file.toml|file.yaml|file.yml>",
	Short: "Parse a configuration file and render failures in context",
	Long:  `Parse detects the format from the file extension, decodes the document and renders any failure as a location-aware diagnostic frame`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Int("context", 2, "context lines shown around the error line")
}

// exitUsage is the status for unsupported extensions, distinct from the
// status 1 used by rendered diagnostics.
const exitUsage = 2

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	radius, err := cmd.Flags().GetInt("context")
	if err != nil {
		return fmt.Errorf("failed to get context flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	mode, err := parseColorMode(colorFlag)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	opts := []humanerrors.Option{
		humanerrors.WithContext(radius),
		humanerrors.WithColor(mode),
		humanerrors.WithExitNow(),
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJSON(path, opts)
	case ".toml":
		return parseTOML(path, opts)
	case ".yaml", ".yml":
		return parseYAML(path, opts)
	default:
		fmt.Fprintf(os.Stderr, "unsupported file extension %q: try .json, .toml, .yaml or .yml\n", filepath.Ext(path))
		os.Exit(exitUsage)
		return nil
	}
}

func parseColorMode(flag string) (humanerrors.ColorMode, error) {
	switch strings.ToLower(flag) {
	case "auto":
		return humanerrors.ColorAuto, nil
	case "on":
		return humanerrors.ColorOn, nil
	case "off":
		return humanerrors.ColorOff, nil
	default:
		return humanerrors.ColorAuto, fmt.Errorf("unsupported color mode %q (must be auto, on or off)", flag)
	}
}

func parseJSON(path string, opts []humanerrors.Option) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return humanerrors.JSONDump(err, path, opts...)
	}
	reportOK(path)
	return nil
}

func parseTOML(path string, opts []humanerrors.Option) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var v map[string]any
	if err := burntsushi.Unmarshal(data, &v); err != nil {
		return humanerrors.TOMLDump(err, path, opts...)
	}
	reportOK(path)
	return nil
}

func parseYAML(path string, opts []humanerrors.Option) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return humanerrors.YAMLDump(err, path, opts...)
	}
	reportOK(path)
	return nil
}

func reportOK(path string) {
	color.New(color.FgGreen).Printf("%s parsed without errors\n", path)
}
