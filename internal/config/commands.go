// Package config loads the command-set configuration for the ir tools.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/banshee-data/ir.report/internal/ircode"
)

// CommandSet maps remote command names to command bytes, plus the
// 16-bit device address the code words are built against. The zero
// value of either field falls back to the built-in amp table, so
// partial configs are safe.
type CommandSet struct {
	Address  *uint16         `json:"address,omitempty"`
	Commands map[string]byte `json:"commands,omitempty"`
}

func defaultCommands() map[string]byte {
	return map[string]byte{
		"power":     ircode.CmdTogglePower,
		"bluetooth": ircode.CmdInputBluetooth,
		"aux":       ircode.CmdInputAux,
		"optical":   ircode.CmdInputOptical,
		"rca":       ircode.CmdInputRCA,
	}
}

// DefaultCommandSet returns the built-in amp remote table.
func DefaultCommandSet() *CommandSet {
	return &CommandSet{Commands: defaultCommands()}
}

// LoadCommandSet loads a CommandSet from a JSON file and overlays it on
// the built-in table: configured commands are added to (or override)
// the defaults, and a configured address replaces the default one.
// The file must have a .json extension and stay under the max file
// size.
func LoadCommandSet(path string) (*CommandSet, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("command-set file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat command-set file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("command-set file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read command-set file: %w", err)
	}

	var loaded CommandSet
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse command-set file: %w", err)
	}

	cs := DefaultCommandSet()
	cs.Address = loaded.Address
	for name, cmd := range loaded.Commands {
		cs.Commands[name] = cmd
	}
	return cs, nil
}

// GetAddress returns the configured device address, falling back to the
// built-in amp address.
func (c *CommandSet) GetAddress() uint16 {
	if c.Address != nil {
		return *c.Address
	}
	return ircode.DefaultAddress
}

// Names returns the known command names, sorted, for error messages and
// usage text.
func (c *CommandSet) Names() []string {
	names := make([]string, 0, len(c.Commands))
	for name := range c.Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up a command byte by name.
func (c *CommandSet) Resolve(name string) (byte, error) {
	if cmd, ok := c.Commands[name]; ok {
		return cmd, nil
	}
	return 0, fmt.Errorf("unknown command %q (known: %s)", name, strings.Join(c.Names(), ", "))
}

// Word resolves a command name to its full 32-bit code word.
func (c *CommandSet) Word(name string) (uint32, error) {
	cmd, err := c.Resolve(name)
	if err != nil {
		return 0, err
	}
	return ircode.Word(c.GetAddress(), cmd), nil
}
