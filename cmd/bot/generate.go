package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rxtech-lab/argo-crypto-trader/internal/strategy"
	"gopkg.in/yaml.v3"
)

const (
	schemaName       = "strategy-config.json"
	sampleConfigName = "strategy-config.yaml"
)

// generate writes the config schema into dir and a sample config next to it.
// An existing sample config is kept.
func generate(dir string, out io.Writer) error {
	schemaPath := filepath.Join(dir, schemaName)
	sampleConfigPath := filepath.Join(dir, sampleConfigName)

	if err := validatePaths(schemaPath, sampleConfigPath); err != nil {
		return err
	}

	if err := generateSchemaFile(schemaPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "Schema successfully generated at %s\n", schemaPath)

	written, err := generateSampleConfig(strategy.DefaultConfig(), sampleConfigPath, schemaName)
	if err != nil {
		return err
	}

	if written {
		fmt.Fprintf(out, "Sample config successfully generated at %s\n", sampleConfigPath)
	}

	return nil
}

func generateSchemaFile(schemaPath string) error {
	schema, err := strategy.ConfigSchema()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(schemaPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(schemaPath, []byte(schema), 0644); err != nil {
		return fmt.Errorf("failed to write schema to file: %w", err)
	}

	return nil
}

// generateSampleConfig writes config as YAML unless samplePath exists.
// It reports whether the file was written.
func generateSampleConfig(config strategy.Config, samplePath, schemaName string) (bool, error) {
	if _, err := os.Stat(samplePath); err == nil {
		return false, nil
	}

	yamlBytes, err := yaml.Marshal(config)
	if err != nil {
		return false, fmt.Errorf("failed to marshal sample config to yaml: %w", err)
	}

	yamlBytes = append([]byte(getSchemaReference(schemaName)), yamlBytes...)

	if err := os.MkdirAll(filepath.Dir(samplePath), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(samplePath, yamlBytes, 0644); err != nil {
		return false, fmt.Errorf("failed to write sample config to file: %w", err)
	}

	return true, nil
}

func validatePaths(schemaPath, sampleConfigPath string) error {
	if schemaPath == "" {
		return fmt.Errorf("schema path cannot be empty")
	}

	if sampleConfigPath == "" {
		return fmt.Errorf("sample config path cannot be empty")
	}

	if !strings.HasSuffix(schemaPath, ".json") {
		return fmt.Errorf("schema %s must have .json extension", schemaPath)
	}

	return nil
}

// getSchemaReference returns the yaml-language-server header pointing at the schema.
func getSchemaReference(schemaName string) string {
	return "# yaml-language-server: $schema=" + schemaName + "\n"
}
