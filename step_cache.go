package gadk

import (
	"fmt"
	"strings"
)

// DefaultCacheVersion is the actions/cache version used when
// CacheConfig.Version is empty.
const DefaultCacheVersion = "v4"

// CacheConfig configures NewCacheStep.
type CacheConfig struct {
	// Name is the step's display name.
	Name string
	// Paths are the directories or files to cache. They are joined with
	// newlines into the action's path argument.
	Paths []string
	// Key is the cache key.
	Key string
	// RestoreKeys are fallback key prefixes, joined with newlines. Omitted
	// from the arguments when empty.
	RestoreKeys []string
	// Version overrides DefaultCacheVersion.
	Version string
}

// NewCacheStep returns a step using the actions/cache action. Argument
// order is path, key, restore-keys.
func NewCacheStep(cfg CacheConfig) *UsesStep {
	version := cfg.Version
	if version == "" {
		version = DefaultCacheVersion
	}

	with := With(
		"path", strings.Join(cfg.Paths, "\n"),
		"key", cfg.Key,
	)
	if len(cfg.RestoreKeys) > 0 {
		with.Set("restore-keys", strings.Join(cfg.RestoreKeys, "\n"))
	}

	return &UsesStep{
		StepMeta: StepMeta{Name: cfg.Name},
		Action:   "actions/cache@" + version,
		With:     with,
	}
}

// NewSimpleCacheStep caches a single path with a key derived from a slug
// and a hashFiles expression over files, e.g. slug "pip" and files
// ["requirements.txt"] give the key
//
//	pip-${{ hashFiles('requirements.txt') }}
//
// and the restore key "pip-". Filenames are assumed not to contain quote
// characters; they are not escaped.
func NewSimpleCacheStep(name, path, slug string, files []string) *UsesStep {
	quoted := make([]string, 0, len(files))
	for _, f := range files {
		quoted = append(quoted, "'"+f+"'")
	}
	hash := Expression(fmt.Sprintf("hashFiles(%s)", strings.Join(quoted, ", ")))

	return NewCacheStep(CacheConfig{
		Name:        name,
		Paths:       []string{path},
		Key:         fmt.Sprintf("%s-%s", slug, hash),
		RestoreKeys: []string{slug + "-"},
	})
}
