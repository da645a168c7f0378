package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileEnv names the env var that points at an optional YAML overlay
const FileEnv = "LAYOFFS_CONFIG_FILE"

// LoadFile reads a YAML document and exports its leaves as env vars.
// Nested keys are joined with "_" and upper cased, so
//
//	layoffs:
//	  api:
//	    port: ":8080"
//
// becomes LAYOFFS_API_PORT. Variables already present in the environment win.
// It returns the keys it set, sorted.
func LoadFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	flat := map[string]string{}
	flatten("", doc, flat)

	set := make([]string, 0, len(flat))
	for k, v := range flat {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return set, fmt.Errorf("config file: set %s: %w", k, err)
		}
		set = append(set, k)
	}
	sort.Strings(set)
	return set, nil
}

// LoadFileFromEnv calls LoadFile when FileEnv is set; an unset var is not an error
func LoadFileFromEnv() ([]string, error) {
	p := strings.TrimSpace(os.Getenv(FileEnv))
	if p == "" {
		return nil, nil
	}
	return LoadFile(p)
}

func flatten(prefix string, v any, out map[string]string) {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			flatten(join(prefix, k), child, out)
		}
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, scalar(e))
		}
		out[prefix] = strings.Join(parts, ",")
	case nil:
	default:
		out[prefix] = scalar(t)
	}
}

func join(prefix, k string) string {
	k = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(k), "-", "_"))
	if prefix == "" {
		return k
	}
	return prefix + "_" + k
}

func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
