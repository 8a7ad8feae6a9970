// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package output

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// YAML writes data as YAML to stdout.
//
// This is the format for --yaml output in divrun commands. Indentation
// is fixed at 2 spaces to match the JSON side.
func YAML(data any) error {
	return YAMLTo(os.Stdout, data)
}

// YAMLTo writes data as YAML to the specified writer.
//
// This is useful for testing or when output needs to go somewhere
// other than stdout.
func YAMLTo(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		_ = enc.Close()
		return fmt.Errorf("YAML encoding failed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("YAML encoding failed: %w", err)
	}
	return nil
}
