package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultEnvPrefix = "OSRM"

	// KeyDemoServer is a file and environment key only. When true it stands
	// for the Demo sentinel, which text formats cannot spell.
	KeyDemoServer = "demo_server"
)

// Keys a file or environment variable can set. Hooks and caches are
// runtime values and never come from text.
var loadableKeys = []string{
	KeyServer,
	KeyPort,
	KeyUseSSL,
	KeyTimeout,
	KeyUserAgent,
	KeyCacheKey,
	KeyDemoServer,
}

var dropInExts = []string{".yaml", ".yml", ".toml", ".json"}

// Source describes where options are read from. Layers apply in order:
//
//  1. Path, a YAML, TOML or JSON file; a missing file is skipped
//  2. DropInDir, every supported file in lexicographic order
//  3. environment variables named <EnvPrefix>_<KEY>, e.g. OSRM_USE_SSL
type Source struct {
	Path      string
	DropInDir string
	EnvPrefix string
	Logger    *slog.Logger
}

// Load reads src and merges the result into a fresh Configuration.
func Load(src Source) (*Configuration, error) {
	log := src.logger()

	opts, err := src.Options()
	if err != nil {
		return nil, err
	}

	cfg, err := New().Merge(opts)
	if err != nil {
		log.Error("failed to apply options", slog.String("error", err.Error()))
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", slog.String("error", err.Error()))
		return nil, err
	}

	return cfg, nil
}

// Options reads every layer of s and returns the combined options. Keys that
// name no configuration field are passed through untouched; Merge drops them.
func (s Source) Options() (Options, error) {
	log := s.logger()
	v := viper.New()

	if s.Path != "" {
		if _, err := os.Stat(s.Path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to stat %s: %w", s.Path, err)
			}
			log.Debug("config file not found, skipping", slog.String("file", s.Path))
		} else {
			v.SetConfigFile(s.Path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
			}
			log.Info("loaded config file", slog.String("file", s.Path))
		}
	}

	dropIns, err := s.findDropInFiles()
	if err != nil {
		return nil, err
	}
	for _, path := range dropIns {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", path, err)
		}
		log.Info("merged drop-in file", slog.String("file", path))
	}

	v.SetEnvPrefix(s.envPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range loadableKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	opts := Options{}
	for _, key := range v.AllKeys() {
		switch {
		case slices.Contains(loadableKeys, key):
			if v.IsSet(key) {
				opts[key] = typedValue(v, key)
			}
		case IsKnown(key):
			log.Warn("option cannot be set from a file, ignoring", slog.String("key", key))
		default:
			log.Debug("unrecognized option", slog.String("key", key))
			opts[key] = v.Get(key)
		}
	}

	if demo, ok := opts[KeyDemoServer]; ok {
		delete(opts, KeyDemoServer)
		if demo == true {
			opts[KeyServer] = Demo
		}
	}

	return opts, nil
}

// typedValue reads text-friendly keys with the getter matching their field,
// so "false" from the environment stays false.
func typedValue(v *viper.Viper, key string) any {
	switch key {
	case KeyUseSSL, KeyDemoServer:
		return v.GetBool(key)
	case KeyServer, KeyUserAgent, KeyCacheKey:
		return v.GetString(key)
	default:
		return v.Get(key)
	}
}

// findDropInFiles returns the supported files of DropInDir sorted by name.
// A missing directory yields no files.
func (s Source) findDropInFiles() ([]string, error) {
	if s.DropInDir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(s.DropInDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read drop-in directory %s: %w", s.DropInDir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if slices.Contains(dropInExts, strings.ToLower(filepath.Ext(entry.Name()))) {
			paths = append(paths, filepath.Join(s.DropInDir, entry.Name()))
		}
	}
	slices.Sort(paths)

	return paths, nil
}

func (s Source) envPrefix() string {
	if s.EnvPrefix == "" {
		return DefaultEnvPrefix
	}
	return s.EnvPrefix
}

func (s Source) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
