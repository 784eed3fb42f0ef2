package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/s0up4200/thoth/rest"
	"github.com/s0up4200/thoth/thoth"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("api_version", func(fl validator.FieldLevel) bool {
		return thoth.IsSupported(fl.Field().String())
	})
	return v
}

// Load loads the configuration from file and THOTH_* environment variables.
// A missing file is only an error when configPath names it explicitly.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("THOTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("credentials.email", "THOTH_EMAIL", "THOTH_CREDENTIALS_EMAIL")
	v.BindEnv("credentials.password", "THOTH_PASSWORD", "THOTH_CREDENTIALS_PASSWORD")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".thoth"))
		}
		v.AddConfigPath("/etc/thoth/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case configPath != "":
			return nil, fmt.Errorf("error reading config: %w", err)
		case !errors.As(err, &notFound):
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("thoth.endpoint", thoth.DefaultEndpoint)
	v.SetDefault("thoth.version", thoth.DefaultVersion)
	v.SetDefault("thoth.timeout", 0)
	v.SetDefault("thoth.rate_limit", 0)

	v.SetDefault("export.endpoint", rest.DefaultEndpoint)
	v.SetDefault("export.version", rest.DefaultVersion)

	// AutomaticEnv only sees keys viper already knows about
	v.SetDefault("credentials.email", "")
	v.SetDefault("credentials.password", "")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "thoth.db")

	v.SetDefault("sync.concurrency", 1)
	v.SetDefault("sync.limit", 9999)

	v.SetDefault("output.format", "object")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validateConfig checks struct tags, then the enumerations
func validateConfig(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldError(verrs[0])
		}
		return err
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	validOutputs := map[string]bool{
		"object": true,
		"json":   true,
		"yaml":   true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s (must be object, json or yaml)", cfg.Output.Format)
	}

	return nil
}

func fieldError(fe validator.FieldError) error {
	field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Config."))
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "api_version":
		return fmt.Errorf("%s: unsupported API version %q (supported: %s)",
			field, fe.Value(), strings.Join(thoth.SupportedVersions(), ", "))
	case "oneof":
		return fmt.Errorf("%s must be one of %s", field, fe.Param())
	case "uuid":
		return fmt.Errorf("%s must be a UUID, got %q", field, fe.Value())
	case "url":
		return fmt.Errorf("%s must be a URL, got %q", field, fe.Value())
	case "email":
		return fmt.Errorf("%s must be an email address", field)
	default:
		return fmt.Errorf("%s is invalid (%s)", field, fe.Tag())
	}
}
