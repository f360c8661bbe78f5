/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Backend names accepted in Config.Backend.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendDynamoDB = "dynamodb"
)

// Config selects and configures the storage backend of the registry.
type Config struct {
	// Backend is one of "memory", "sqlite" or "dynamodb".
	Backend  string         `yaml:"backend" toml:"backend" env:"ALIASSTORE_BACKEND"`
	SQLite   SQLiteConfig   `yaml:"sqlite" toml:"sqlite"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb" toml:"dynamodb"`
}

// SQLiteConfig configures the SQLite backend.
type SQLiteConfig struct {
	Path string `yaml:"path" toml:"path" env:"ALIASSTORE_SQLITE_PATH"`
}

// DynamoDBConfig configures the DynamoDB backend. Empty credentials fall back to
// the default AWS credential chain; Endpoint overrides the service endpoint
// (for example DynamoDB Local).
type DynamoDBConfig struct {
	Region    string `yaml:"region" toml:"region" env:"AWS_REGION"`
	Table     string `yaml:"table" toml:"table" env:"AWS_DDB_TABLE"`
	AccessKey string `yaml:"access_key" toml:"access_key" env:"AWS_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" toml:"secret_key" env:"AWS_SECRET_KEY"`
	Endpoint  string `yaml:"endpoint" toml:"endpoint" env:"AWS_DDB_ENDPOINT"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Backend: BackendSQLite,
		SQLite: SQLiteConfig{
			Path: "aliases.db",
		},
		DynamoDB: DynamoDBConfig{
			Region: "us-east-1",
		},
	}
}

// Load builds a Config from defaults, then the optional file at path, then the
// given .env files (".env" when none are named; missing files are ignored), then
// the process environment. Later sources override earlier ones.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := loadDotEnv(envFiles...); err != nil {
		return Config{}, err
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes a YAML (.yaml, .yml) or TOML (.toml) file into cfg.
// Keys that do not map to a Config field are rejected.
func LoadFile(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open config file: %w", err)
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("decode yaml config %s: %w", path, err)
		}
		return nil

	case ".toml":
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return fmt.Errorf("decode toml config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("decode toml config %s: unknown keys %v", path, undecoded)
		}
		return nil

	default:
		return fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}
}

func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", file, err)
		}
	}
	return nil
}

// ParseEnv overrides fields of target from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports missing or unknown settings for the selected backend.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendMemory:
		return nil
	case BackendSQLite:
		if strings.TrimSpace(c.SQLite.Path) == "" {
			return fmt.Errorf("sqlite path is required")
		}
		return nil
	case BackendDynamoDB:
		if c.DynamoDB.Region == "" {
			return fmt.Errorf("dynamodb region is required")
		}
		if c.DynamoDB.Table == "" {
			return fmt.Errorf("dynamodb table is required")
		}
		if (c.DynamoDB.AccessKey == "") != (c.DynamoDB.SecretKey == "") {
			return fmt.Errorf("dynamodb access key and secret key must be set together")
		}
		return nil
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
}
