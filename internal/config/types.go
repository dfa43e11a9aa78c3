package config

// Package is one dependency declaration from a manifest. DependsOn lists
// the package's direct dependencies by name, in declared order.
type Package struct {
	Name      string   `yaml:"name" json:"name"`
	DependsOn []string `yaml:"depends_on" json:"depends_on,omitempty"`
}

type Config struct {
	Packages []Package `yaml:"packages" json:"packages,omitempty"`
}
