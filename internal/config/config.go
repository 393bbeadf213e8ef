package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gozar/internal/domain"
	"gozar/internal/policy"
)

const (
	DefaultWorkerCount = 4
	defaultConfigPath  = "config.json"
)

var validate *validator.Validate

// Path is the location of the configuration file.
type Path string

type Config struct {
	AllowedDomain string           `json:"allowed_domain" yaml:"allowed_domain" validate:"required,fqdn"`
	Links         []domain.RawLink `json:"links" yaml:"links" validate:"required,min=1,dive"`
	Subscriptions []string         `json:"subscriptions" yaml:"subscriptions" validate:"dive,subscription"`
	SelectedID    int64            `json:"selected_id" yaml:"selected_id" validate:"gte=0"`
	Output        Output           `json:"output" yaml:"output"`
	Workers       Workers          `json:"workers" yaml:"workers"`
	Metrics       Metrics          `json:"metrics" yaml:"metrics"`
}

type Output struct {
	Path string `json:"path" yaml:"path" validate:"required"`
}

type Workers struct {
	Count int `json:"count" yaml:"count" validate:"min=1,max=64"`
}

type Metrics struct {
	Addr string `json:"addr" yaml:"addr" validate:"omitempty,hostname_port"`
}

// PathFromEnv returns CONFIG_PATH, or config.json when it is unset.
func PathFromEnv() Path {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return Path(p)
	}
	return defaultConfigPath
}

// NewConfig loads, defaults and validates the configuration file at path.
func NewConfig(path Path) (*Config, error) {
	if path == "" {
		path = PathFromEnv()
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	cfg, err := Parse(data, filepath.Ext(string(path)))
	if err != nil {
		return nil, err
	}

	if err := ensureDirectories(cfg); err != nil {
		return nil, fmt.Errorf("failed to create required directories: %w", err)
	}

	return cfg, nil
}

// Parse decodes a YAML document when ext is .yaml or .yml and JSON otherwise,
// then applies defaults and validates the result.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing config: %w", err)
		}
	}

	applyDefaults(&cfg)

	for _, link := range cfg.Links {
		if link.Name == "" {
			return nil, fmt.Errorf("link name is required in configuration")
		}
		if link.URL == "" {
			return nil, fmt.Errorf("URL is required for link %s", link.Name)
		}
	}

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return nil, formatValidationErrors(validationErrors)
		}
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.AllowedDomain == "" {
		cfg.AllowedDomain = policy.DefaultRootDomain
	}
	if cfg.Workers.Count == 0 {
		cfg.Workers.Count = DefaultWorkerCount
	}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *Config) error {
	dirs := []struct {
		path string
		name string
	}{
		{filepath.Dir(cfg.Output.Path), "output"},
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir.path, 0755); err != nil {
			return fmt.Errorf("failed to create %s directory at %s: %w",
				dir.name, dir.path, err)
		}
	}

	return nil
}

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("subscription", validateSubscription); err != nil {
		panic(fmt.Sprintf("failed to register subscription validator: %v", err))
	}
}

// validateSubscription checks a subscription URL against the allowed domain
// of the config being validated.
func validateSubscription(fl validator.FieldLevel) bool {
	root := policy.DefaultRootDomain
	top := fl.Top()
	if top.Kind() == reflect.Ptr {
		top = top.Elem()
	}
	if cfg, ok := top.Interface().(Config); ok && cfg.AllowedDomain != "" {
		root = cfg.AllowedDomain
	}
	return policy.New(root).IsValidSubscriptionURL(fl.Field().String())
}

// formatValidationErrors formats validation errors into a user-friendly error message
func formatValidationErrors(errors validator.ValidationErrors) error {
	var errMsgs []string
	for _, err := range errors {
		errMsgs = append(errMsgs, fmt.Sprintf(
			"field '%s' failed validation: %s",
			err.Namespace(),
			err.Tag(),
		))
	}
	return fmt.Errorf("validation errors: %v", errMsgs)
}
