package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var current Config

func Get() Config { return current }

// LoadFromFiles merges every YAML manifest into one Config. Files are
// loaded in sorted order; a package name declared twice, within one file
// or across files, is an error naming the files involved.
func LoadFromFiles(files []string) (Config, error) {
	combined := Config{}
	seen := map[string]string{}
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Config{}, err
		}
		var part Config
		if err := yaml.Unmarshal(b, &part); err != nil {
			return Config{}, fmt.Errorf("%s: %w", f, err)
		}
		if err := checkDuplicatesWithFiles(seen, part, f); err != nil {
			return Config{}, err
		}
		combined.Packages = append(combined.Packages, part.Packages...)
	}
	if err := ValidateNoDuplicates(combined); err != nil {
		return Config{}, err
	}
	current = combined
	return combined, nil
}

func ValidateNoDuplicates(cfg Config) error {
	p := map[string]struct{}{}
	for _, v := range cfg.Packages {
		if _, ok := p[v.Name]; ok {
			return fmt.Errorf("duplicate package name: %s", v.Name)
		}
		p[v.Name] = struct{}{}
	}
	return nil
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func checkDuplicatesWithFiles(seen map[string]string, part Config, file string) error {
	local := map[string]struct{}{}
	for _, p := range part.Packages {
		if _, ok := local[p.Name]; ok {
			return fmt.Errorf("duplicate package '%s' found in %s", p.Name, file)
		}
		local[p.Name] = struct{}{}
	}
	for _, p := range part.Packages {
		if prev, ok := seen[p.Name]; ok {
			return fmt.Errorf("duplicate package '%s' found in %s and %s", p.Name, prev, file)
		}
	}
	for _, p := range part.Packages {
		seen[p.Name] = file
	}
	return nil
}
