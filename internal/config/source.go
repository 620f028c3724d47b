package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/joho/godotenv"

	"github.com/oshokin/aoc-admin/internal/logger"
)

const (
	// EnvFileSuffix marks files that are loaded as dotenv files.
	EnvFileSuffix = ".env"

	// MaxEnvDepth is how many directory levels below the walk root are searched.
	MaxEnvDepth = 4
)

// Source resolves configuration values by key.
type Source interface {
	Get(key string) (string, bool)
}

// MapSource is a fixed set of values.
type MapSource map[string]string

// Get implements Source.
func (m MapSource) Get(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}

// Chain asks each source in turn and returns the first value found.
type Chain []Source

// Get implements Source.
func (c Chain) Get(key string) (string, bool) {
	for _, src := range c {
		if src == nil {
			continue
		}

		if value, ok := src.Get(key); ok {
			return value, true
		}
	}

	return "", false
}

// ProcessEnv reads the process environment.
type ProcessEnv struct{}

// Get implements Source.
func (ProcessEnv) Get(key string) (string, bool) {
	return os.LookupEnv(key)
}

// EnvSource layers the process environment over values read from dotenv files.
type EnvSource struct {
	// env is consulted before any file.
	env Source
	// files holds parsed dotenv files in discovery order.
	files []envFile
}

type envFile struct {
	path   string
	values map[string]string
}

// LoadEnvSource walks fsys for dotenv files and returns a source reading env
// first and then the files in walk order.
// Hidden directories, cargo "target" directories and anything deeper than
// MaxEnvDepth are not entered. Files that cannot be read or parsed are skipped.
func LoadEnvSource(ctx context.Context, fsys billy.Filesystem, env Source) (*EnvSource, error) {
	src := &EnvSource{
		env: env,
	}

	if fsys == nil {
		return src, nil
	}

	err := util.Walk(fsys, "/", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Unreadable entries are skipped; the walk goes on.
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		name := info.Name()

		if info.IsDir() {
			if path == "/" {
				return nil
			}

			if strings.HasPrefix(name, ".") || name == "target" || depth(path) > MaxEnvDepth {
				return filepath.SkipDir
			}

			return nil
		}

		if !strings.HasSuffix(name, EnvFileSuffix) {
			return nil
		}

		values, err := parseEnvFile(fsys, path)
		if err != nil {
			logger.DebugKV(ctx, "Skipping env file", "path", path, "error", err)
			return nil
		}

		src.files = append(src.files, envFile{path: path, values: values})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load env files: %w", err)
	}

	return src, nil
}

// Get implements Source.
func (s *EnvSource) Get(key string) (string, bool) {
	if s.env != nil {
		if value, ok := s.env.Get(key); ok {
			return value, true
		}
	}

	for _, file := range s.files {
		if value, ok := file.values[key]; ok {
			return value, true
		}
	}

	return "", false
}

// Files returns the dotenv files that were loaded, in lookup order.
func (s *EnvSource) Files() []string {
	paths := make([]string, 0, len(s.files))
	for _, file := range s.files {
		paths = append(paths, file.path)
	}

	return paths
}

func parseEnvFile(fsys billy.Filesystem, path string) (map[string]string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	defer func() {
		_ = file.Close()
	}()

	values, err := godotenv.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return values, nil
}

func depth(path string) int {
	return strings.Count(strings.Trim(filepath.ToSlash(path), "/"), "/") + 1
}
