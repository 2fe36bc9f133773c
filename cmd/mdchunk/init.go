package main

import (
	"fmt"
	"path/filepath"

	"github.com/wyvernzora/mdchunk/pkg/rconfig"
)

// InitCmd creates a new .mdchunkrc file.
type InitCmd struct {
	Options

	Files []string `arg:"" optional:"" help:"File globs to include in the config"`
	Force bool     `help:"Overwrite an existing .mdchunkrc" short:"f"`
}

// Run executes the init command.
func (i *InitCmd) Run() error {
	projectRoot, foundConfig, err := rconfig.FindProjectRoot()
	if err != nil {
		return err
	}

	if foundConfig && !i.Force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)",
			filepath.Join(projectRoot, rconfig.ConfigFileName))
	}
	if !foundConfig {
		projectRoot, err = filepath.Abs(".")
		if err != nil {
			return fmt.Errorf("failed to resolve current directory: %w", err)
		}
	}

	opts := i.Options.toFileOptions()
	opts.Files = i.Files
	if err := fromFileOptions(opts).validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	if err := rconfig.SaveConfig(projectRoot, opts); err != nil {
		return err
	}

	fmt.Printf("Created configuration file at %s\n", filepath.Join(projectRoot, rconfig.ConfigFileName))
	return nil
}
