// Package config resolves run settings from flags, environment, an optional
// config file and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codesnap/pkg/snapshot"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "CODESNAP"

// Keys understood by Load. Flags are bound to the same keys by the cmd package.
const (
	KeyDir        = "dir"
	KeyOutputDir  = "output_dir"
	KeyBaseName   = "base_name"
	KeyIdentifier = "identifier"
	KeySkip       = "skip"
	KeyDebug      = "debug"
)

// Config holds the resolved settings for one run.
type Config struct {
	Dir        string
	OutputDir  string
	BaseName   string
	Identifier string
	Skip       []string
	Debug      bool
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDir, "")
	v.SetDefault(KeyOutputDir, "")
	v.SetDefault(KeyBaseName, snapshot.DefaultBaseName)
	v.SetDefault(KeyIdentifier, snapshot.DefaultIdentifier)
	v.SetDefault(KeySkip, snapshot.DefaultSkipNames)
	v.SetDefault(KeyDebug, false)
}

// Load reads configuration into a Config. cfgFile, when set, must exist;
// otherwise .codesnap.{yaml,toml,json} is looked up in the working directory
// and in $HOME/.config/codesnap, and a missing file is not an error.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".codesnap")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "codesnap"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		Dir:        v.GetString(KeyDir),
		OutputDir:  v.GetString(KeyOutputDir),
		BaseName:   v.GetString(KeyBaseName),
		Identifier: v.GetString(KeyIdentifier),
		Skip:       splitNames(v.GetStringSlice(KeySkip)),
		Debug:      v.GetBool(KeyDebug),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings that would produce unusable output names.
func (c Config) Validate() error {
	if err := validateNamePart(KeyBaseName, c.BaseName); err != nil {
		return err
	}
	return validateNamePart(KeyIdentifier, c.Identifier)
}

func validateNamePart(key, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s must not be empty", key)
	}
	if strings.ContainsAny(value, `/\`) {
		return fmt.Errorf("%s must not contain a path separator: %q", key, value)
	}
	return nil
}

// Arguments converts the configuration into snapshot arguments.
func (c Config) Arguments() snapshot.Arguments {
	return snapshot.Arguments{
		Root:       c.Dir,
		OutputDir:  c.OutputDir,
		BaseName:   c.BaseName,
		Identifier: c.Identifier,
		SkipNames:  c.Skip,
	}
}

// splitNames flattens comma separated entries, so CODESNAP_SKIP=a,b and
// repeated --skip flags yield the same list.
func splitNames(values []string) []string {
	var names []string
	for _, value := range values {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}
