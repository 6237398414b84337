// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/slotstore"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "slotstore",
		Usage: "Inspect and edit typed storage slots",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML slots file",
				Value:   "slots.yaml",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory",
			},
			&cli.StringFlag{
				Name:  "redis",
				Usage: "Redis address (host:port); takes precedence over --db",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Print a slot's current value",
				ArgsUsage: "<slot>",
				Action:    getCommand,
			},
			{
				Name:      "set",
				Usage:     "Validate and store a slot value",
				ArgsUsage: "<slot> <value>",
				Action:    setCommand,
			},
			{
				Name:      "remove",
				Usage:     "Remove a slot's stored value",
				ArgsUsage: "<slot>",
				Action:    removeCommand,
			},
			{
				Name:   "list",
				Usage:  "List all declared slots and their values",
				Action: listCommand,
			},
			{
				Name:   "clear",
				Usage:  "Remove every stored value from the backend",
				Action: clearCommand,
			},
			{
				Name:      "export",
				Usage:     "Write all stored entries to a snapshot file",
				ArgsUsage: "<file>",
				Action:    exportCommand,
			},
			{
				Name:      "import",
				Usage:     "Restore stored entries from a snapshot file",
				ArgsUsage: "<file>",
				Action:    importCommand,
			},
		},
	}
}

func setupLogger(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level %q", c.String("log-level"))
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

// open loads the slots file and opens the configured backend.
func open(c *cli.Context) (map[string]slotstore.Definition, slotstore.Store, func() error, error) {
	defs, err := loadSlots(c.String("config"))
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := loadEnvConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	store, cleanup, err := openStore(c, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return defs, store, cleanup, nil
}

func getCommand(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("slot name is required")
	}

	defs, store, cleanup, err := open(c)
	if err != nil {
		return err
	}
	defer cleanup()

	def, ok := defs[name]
	if !ok {
		return fmt.Errorf("slot %q is not declared", name)
	}

	slots := slotstore.Build(store, defs)
	rendered, err := renderValue(def, slots[name].Get())
	if err != nil {
		return err
	}
	fmt.Println(rendered)
	return nil
}

func setCommand(c *cli.Context) error {
	name := c.Args().Get(0)
	text := c.Args().Get(1)
	if name == "" || c.Args().Len() < 2 {
		return fmt.Errorf("slot name and value are required")
	}

	defs, store, cleanup, err := open(c)
	if err != nil {
		return err
	}
	defer cleanup()

	def, ok := defs[name]
	if !ok {
		return fmt.Errorf("slot %q is not declared", name)
	}

	// Parse at the CLI boundary so a rejected value is a real error
	// here, not a silent accessor no-op.
	value, err := parseText(def, text)
	if err != nil {
		return fmt.Errorf("invalid value for slot %q: %w", name, err)
	}

	slotstore.Build(store, defs)[name].Set(value)
	return nil
}

func removeCommand(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("slot name is required")
	}

	defs, store, cleanup, err := open(c)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, ok := defs[name]; !ok {
		return fmt.Errorf("slot %q is not declared", name)
	}

	slotstore.Build(store, defs)[name].Remove()
	return nil
}

func listCommand(c *cli.Context) error {
	defs, store, cleanup, err := open(c)
	if err != nil {
		return err
	}
	defer cleanup()

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	slotName := color.New(color.FgCyan).SprintFunc()
	unset := color.New(color.Faint).SprintFunc()

	slots := slotstore.Build(store, defs)
	for _, name := range names {
		def := defs[name]
		rendered, err := renderValue(def, slots[name].Get())
		if err != nil {
			return err
		}

		key := def.Key
		if key == "" {
			key = name
		}
		_, stored, err := store.GetItem(key)
		if err != nil {
			return err
		}
		if stored {
			fmt.Printf("%s = %s\n", slotName(name), rendered)
		} else {
			fmt.Printf("%s = %s %s\n", slotName(name), rendered, unset("(default)"))
		}
	}
	return nil
}

func clearCommand(c *cli.Context) error {
	_, store, cleanup, err := open(c)
	if err != nil {
		return err
	}
	defer cleanup()

	return store.Clear()
}

func exportCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("snapshot file path is required")
	}

	_, store, cleanup, err := open(c)
	if err != nil {
		return err
	}
	defer cleanup()

	lister, ok := store.(slotstore.KeyLister)
	if !ok {
		return fmt.Errorf("backend does not support key listing")
	}
	keys, err := lister.Keys()
	if err != nil {
		return err
	}

	entries := make(map[string]string, len(keys))
	for _, key := range keys {
		value, found, err := store.GetItem(key)
		if err != nil {
			return err
		}
		if found {
			entries[key] = value
		}
	}

	if err := os.WriteFile(path, marshalSnapshot(entries), 0644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Exported %d entries to %s\n", len(entries), path)
	return nil
}

func importCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("snapshot file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	entries, err := unmarshalSnapshot(data)
	if err != nil {
		return err
	}

	_, store, cleanup, err := open(c)
	if err != nil {
		return err
	}
	defer cleanup()

	// Snapshots restore raw stored text as-is; validation applies on
	// the next read, per the fail-soft contract.
	for key, value := range entries {
		if err := store.SetItem(key, value); err != nil {
			return err
		}
	}
	fmt.Fprintf(os.Stderr, "Imported %d entries from %s\n", len(entries), path)
	return nil
}
