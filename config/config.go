// Package config loads the application configuration from defaults, an
// optional YAML file and COINTRACK_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "cointrack.yaml"

const envPrefix = "COINTRACK_"

// Application is the whole configuration.
type Application struct {
	Data Data `koanf:"data"`
	Log  Log  `koanf:"log"`
}

// Data locates the two backing files.
type Data struct {
	Dir          string `koanf:"dir"`
	Transactions string `koanf:"transactions"`
	Budgets      string `koanf:"budgets"`
}

// Log configures logrus.
type Log struct {
	Level string `koanf:"level"`
}

// Default returns the configuration used when nothing else is set.
func Default() Application {
	return Application{
		Data: Data{
			Dir:          "data",
			Transactions: "transactions.txt",
			Budgets:      "budgets.txt",
		},
		Log: Log{
			Level: "warn",
		},
	}
}

// Load reads the configuration. A missing file at path is not an error.
// A .env file in the working directory, if any, is loaded into the environment first.
func Load(path string) (Application, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Application{}, fmt.Errorf("error loading .env: %w", err)
	}

	var k = koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Application{}, fmt.Errorf("error loading config defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return Application{}, fmt.Errorf("error loading config from %q: %w", path, err)
			}
			log.Debugf("config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Debugf("loaded configuration from file: %s", path)
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// COINTRACK_DATA_DIR -> data.dir
			k = strings.Replace(strings.ToLower(strings.TrimPrefix(k, envPrefix)), "_", ".", 1)
			return k, v
		},
	}), nil)
	if err != nil {
		return Application{}, fmt.Errorf("error loading config from environment: %w", err)
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// Validate reports every invalid setting at once.
func (a Application) Validate() error {
	var errs []error
	if strings.TrimSpace(a.Data.Dir) == "" {
		errs = append(errs, errors.New("data.dir cannot be empty"))
	}
	for key, name := range map[string]string{"data.transactions": a.Data.Transactions, "data.budgets": a.Data.Budgets} {
		switch {
		case strings.TrimSpace(name) == "":
			errs = append(errs, fmt.Errorf("%s cannot be empty", key))
		case strings.ContainsAny(name, `/\`):
			errs = append(errs, fmt.Errorf("%s %q must be a file name, not a path", key, name))
		}
	}
	if a.Data.Transactions != "" && a.Data.Transactions == a.Data.Budgets {
		errs = append(errs, errors.New("data.transactions and data.budgets must be different files"))
	}
	if _, err := log.ParseLevel(a.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// TransactionsPath returns the path of the transactions file.
func (a Application) TransactionsPath() string {
	return filepath.Join(a.Data.Dir, a.Data.Transactions)
}

// BudgetsPath returns the path of the budgets file.
func (a Application) BudgetsPath() string {
	return filepath.Join(a.Data.Dir, a.Data.Budgets)
}
