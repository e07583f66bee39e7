package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/dozm/omni/util"
)

// AliasesKey is the top-level key holding the alias table.
const AliasesKey = "aliases"

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional sources.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // yaml, json or toml file (optional)
	EnvFile    string // .env file (optional)
	EnvPrefix  string // environment variables are ignored without a prefix
	Logger     zerolog.Logger
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets the config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets the .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnvPrefix reads environment variables named PREFIX_KEY.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvPrefix = prefix }
}

// WithLogger sets the logger reporting ignored sources.
func WithLogger(logger zerolog.Logger) LoaderOption {
	return func(lc *LoaderConfig) { lc.Logger = logger }
}

// Values are loaded parameters and aliases.
type Values struct {
	Params  map[string]any
	Aliases map[string]string
}

// IDs returns the parameter identifiers in ascending order.
func (v Values) IDs() []string {
	return util.SortedKeys(v.Params)
}

// Load reads the configured sources. Later sources override earlier ones:
// config file, then .env file, then the environment.
// Missing files are not an error; unreadable ones are.
func Load(opts ...LoaderOption) (Values, error) {
	lc := LoaderConfig{Logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	v := viper.New()

	if lc.ConfigFile != "" && lc.FileSystem.Exists(lc.ConfigFile) {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Values{}, fmt.Errorf("failed to load config file %s: %w", lc.ConfigFile, err)
		}
	}

	if lc.EnvFile != "" && lc.FileSystem.Exists(lc.EnvFile) {
		if err := lc.FileSystem.LoadEnv(lc.EnvFile); err != nil {
			return Values{}, fmt.Errorf("failed to load .env file %s: %w", lc.EnvFile, err)
		}
		if lc.EnvPrefix == "" {
			lc.Logger.Warn().
				Str("file", lc.EnvFile).
				Msg(".env file loaded without an env prefix, its variables are ignored")
		}
	}

	if lc.EnvPrefix != "" {
		bindPrefixedEnv(v, lc.EnvPrefix)
	}

	values := Values{
		Params:  make(map[string]any),
		Aliases: v.GetStringMapString(AliasesKey),
	}
	for _, key := range v.AllKeys() {
		if key == AliasesKey || strings.HasPrefix(key, AliasesKey+".") {
			continue
		}
		values.Params[key] = v.Get(key)
	}

	return values, nil
}

// bindPrefixedEnv sets PREFIX_A_B as the key "a.b".
func bindPrefixedEnv(v *viper.Viper, prefix string) {
	prefix = strings.ToUpper(strings.TrimSuffix(prefix, "_")) + "_"
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], prefix) {
			continue
		}

		key := strings.ToLower(strings.TrimPrefix(pair[0], prefix))
		if key == "" {
			continue
		}
		v.Set(strings.ReplaceAll(key, "_", "."), pair[1])
	}
}
