// Package settings loads application settings from flags, ZOOMIES_* environment
// variables and an optional zoomies.yaml file, in that order of precedence.
package settings

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	zerrors "github.com/alexisbeaulieu97/zoomies/pkg/errors"
)

// EnvPrefix prefixes every environment variable, e.g. ZOOMIES_LOG_LEVEL.
const EnvPrefix = "ZOOMIES"

// Keys shared by flags, environment variables and the config file.
const (
	KeyConfig      = "config"
	KeyAppearance  = "appearance"
	KeyLogLevel    = "log-level"
	KeyHumanLogs   = "human-logs"
	KeyOverrides   = "overrides"
	KeyAddress     = "serve.address"
	KeyHostKey     = "serve.host-key"
	KeyIdleTimeout = "serve.idle-timeout"
)

// Settings holds the application settings.
type Settings struct {
	Appearance string `mapstructure:"appearance" validate:"oneof=light dark auto"`
	LogLevel   string `mapstructure:"log-level" validate:"oneof=trace debug info warn error"`
	HumanLogs  bool   `mapstructure:"human-logs"`
	Overrides  string `mapstructure:"overrides"`
	Serve      Serve  `mapstructure:"serve"`
}

// Serve holds the SSH server settings.
type Serve struct {
	Address     string        `mapstructure:"address" validate:"required,hostname_port"`
	HostKey     string        `mapstructure:"host-key" validate:"required"`
	IdleTimeout time.Duration `mapstructure:"idle-timeout" validate:"min=0"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Settings {
	return Settings{
		Appearance: "auto",
		LogLevel:   "info",
		HumanLogs:  true,
		Serve: Serve{
			Address:     "localhost:23234",
			HostKey:     ".ssh/zoomies_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
	}
}

// RegisterFlags defines the settings flags on fs. Serve flags are registered
// separately by the serve command.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.String(KeyConfig, "", "path to a zoomies.yaml settings file")
	fs.String(KeyAppearance, d.Appearance, "theme appearance: light, dark or auto")
	fs.String(KeyLogLevel, d.LogLevel, "log level: trace, debug, info, warn or error")
	fs.Bool(KeyHumanLogs, d.HumanLogs, "write human readable logs instead of JSON")
	fs.String(KeyOverrides, d.Overrides, "path to a token overrides document")
}

// RegisterServeFlags defines the SSH server flags on fs.
func RegisterServeFlags(fs *pflag.FlagSet) {
	d := Defaults().Serve
	fs.String("address", d.Address, "address to listen on")
	fs.String("host-key", d.HostKey, "path to the SSH host key, generated when missing")
	fs.Duration("idle-timeout", d.IdleTimeout, "disconnect idle sessions after this long")
}

// flagKeys maps flag names to the settings keys they override.
var flagKeys = map[string]string{
	KeyAppearance:  KeyAppearance,
	KeyLogLevel:    KeyLogLevel,
	KeyHumanLogs:   KeyHumanLogs,
	KeyOverrides:   KeyOverrides,
	"address":      KeyAddress,
	"host-key":     KeyHostKey,
	"idle-timeout": KeyIdleTimeout,
}

// Load resolves the settings. Flags that were registered on fs override the
// environment, which overrides the config file. A config file named by the
// --config flag must exist; the implicit ./zoomies.yaml is optional.
func Load(fs *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if flag := fs.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return Settings{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := readConfig(v, fs); err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, zerrors.NewValidationError("settings", err.Error(), err)
	}
	if err := Validate(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyAppearance, d.Appearance)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyHumanLogs, d.HumanLogs)
	v.SetDefault(KeyOverrides, d.Overrides)
	v.SetDefault(KeyAddress, d.Serve.Address)
	v.SetDefault(KeyHostKey, d.Serve.HostKey)
	v.SetDefault(KeyIdleTimeout, d.Serve.IdleTimeout)
}

func readConfig(v *viper.Viper, fs *pflag.FlagSet) error {
	path := ""
	if fs != nil {
		if flag := fs.Lookup(KeyConfig); flag != nil {
			path = flag.Value.String()
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("zoomies")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if path == "" && errors.As(err, &notFound) {
		return nil
	}
	return zerrors.NewParseError(configPath(v, path), 0, err)
}

func configPath(v *viper.Viper, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if used := v.ConfigFileUsed(); used != "" {
		return used
	}
	return "zoomies.yaml"
}

var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			return f.Tag.Get("mapstructure")
		})
	})
	return validate
}

// Validate checks the settings and reports the first failure as a
// ValidationError named after the settings key.
func Validate(s Settings) error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		fe := ves[0]
		field := settingsKey(fe.Namespace())
		return zerrors.NewValidationError(field, fmt.Sprintf("%q is not a valid %s", fmt.Sprint(fe.Value()), field), err)
	}
	return zerrors.NewValidationError("settings", err.Error(), err)
}

func settingsKey(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
