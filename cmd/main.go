package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.yaml.in/yaml/v3"

	"github.com/angeloszaimis/osrm-client/config"
	"github.com/angeloszaimis/osrm-client/pkg/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run resolves the configuration from files, environment and --set flags and
// prints it as YAML.
func run(args []string, stdout, stderr io.Writer) error {
	flags := pflag.NewFlagSet("osrm-config", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	path := flags.String("config", "config.yaml", "main configuration file")
	dropIn := flags.String("drop-in", "config.d", "directory of drop-in configuration files")
	envPrefix := flags.String("env-prefix", config.DefaultEnvPrefix, "prefix of configuration environment variables")
	sets := flags.StringArray("set", nil, "override an option as key=value, repeatable")
	demo := flags.Bool("demo", false, "use the public demo server")
	logLevel := flags.String("log-level", "info", "debug, info, warn or error")
	logFormat := flags.String("log-format", logger.FormatText, "text or json")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	log := logger.New(stderr, *logLevel, false, *logFormat)

	cfg, err := config.Load(config.Source{
		Path:      *path,
		DropInDir: *dropIn,
		EnvPrefix: *envPrefix,
		Logger:    log,
	})
	if err != nil {
		log.Error("failed to load config", slog.Any("err", err))
		return err
	}

	overrides, err := parseOverrides(*sets)
	if err != nil {
		log.Error("invalid override", slog.Any("err", err))
		return err
	}
	if *demo {
		overrides[config.KeyServer] = config.Demo
	}
	for key := range overrides {
		if !config.IsKnown(key) {
			log.Warn("ignoring unknown option", slog.String("key", key))
		}
	}

	if _, err := cfg.Merge(overrides); err != nil {
		log.Error("failed to apply overrides", slog.Any("err", err))
		return err
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", slog.Any("err", err))
		return err
	}

	return printConfig(stdout, cfg)
}

// parseOverrides turns key=value pairs into options. Values of numeric and
// boolean keys are decoded as YAML scalars so that "false" means false; an
// empty value clears the field.
func parseOverrides(sets []string) (config.Options, error) {
	opts := config.Options{}
	for _, set := range sets {
		key, raw, ok := strings.Cut(set, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q: expected key=value", set)
		}

		switch {
		case raw == "":
			opts[key] = nil
		case key == config.KeyServer || key == config.KeyUserAgent || key == config.KeyCacheKey:
			opts[key] = raw
		default:
			var value any
			if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
				value = raw
			}
			opts[key] = value
		}
	}
	return opts, nil
}

type configView struct {
	Server     string `yaml:"server,omitempty"`
	Port       *int   `yaml:"port,omitempty"`
	UseSSL     bool   `yaml:"use_ssl"`
	Timeout    int    `yaml:"timeout"`
	UserAgent  string `yaml:"user_agent"`
	CacheKey   string `yaml:"cache_key"`
	DemoServer bool   `yaml:"demo_server"`
	BaseURL    string `yaml:"base_url,omitempty"`
}

func printConfig(w io.Writer, cfg *config.Configuration) error {
	view := configView{
		UseSSL:     cfg.UseSSL(),
		Timeout:    cfg.Timeout(),
		UserAgent:  cfg.UserAgent(),
		CacheKey:   cfg.CacheKey(),
		DemoServer: cfg.UseDemoServer(),
	}
	if server, ok := cfg.Server(); ok {
		view.Server = server
	}
	if port, ok := cfg.Port(); ok {
		view.Port = &port
	}
	if u, err := cfg.BaseURL(); err == nil {
		view.BaseURL = u.String()
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return enc.Close()
}
