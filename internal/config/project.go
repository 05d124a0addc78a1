package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ProjectConfigName is the project-local overlay file looked up in the
// project directory.
const ProjectConfigName = ".headway.yaml"

// ApplyProjectOverlay shallow-merges dir/.headway.yaml onto cfg when it
// exists. It returns the overlay path, or "" when there is no overlay.
// On error cfg may be partially merged.
func ApplyProjectOverlay(cfg *Config, dir string) (string, error) {
	overlayPath := filepath.Join(dir, ProjectConfigName)
	if _, err := os.Stat(overlayPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("checking project config %s: %w", overlayPath, err)
	}

	if err := ShallowMergeYAML(cfg, overlayPath); err != nil {
		return "", err
	}
	return overlayPath, nil
}
