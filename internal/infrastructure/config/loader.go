package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Balance    *BalanceConfig
	Animations *AnimationsConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from a filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadBalance loads balance.yaml
func (l *Loader) LoadBalance() (*BalanceConfig, error) {
	data, err := fs.ReadFile(l.fsys, "balance.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read balance.yaml: %w", err)
	}

	var cfg BalanceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse balance.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadAnimations loads animations.yaml
func (l *Loader) LoadAnimations() (*AnimationsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "animations.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read animations.yaml: %w", err)
	}

	var cfg AnimationsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse animations.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadAll loads all configurations
func (l *Loader) LoadAll() (*GameConfig, error) {
	balance, err := l.LoadBalance()
	if err != nil {
		return nil, err
	}

	animations, err := l.LoadAnimations()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Balance:    balance,
		Animations: animations,
	}, nil
}
