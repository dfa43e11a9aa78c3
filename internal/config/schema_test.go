package config

import "testing"

func TestValidateAgainstSchema_Valid(t *testing.T) {
	cfg := Config{
		Packages: []Package{
			{Name: "curl", DependsOn: []string{"libssl", "zlib"}},
			{Name: "libssl", DependsOn: []string{"zlib"}},
			{Name: "zlib"},
		},
	}
	if err := ValidateAgainstSchema(cfg); err != nil {
		t.Fatalf("expected valid schema, got error: %v", err)
	}
}

func TestValidateAgainstSchema_EmptyName(t *testing.T) {
	cfg := Config{Packages: []Package{{Name: ""}}}
	if err := ValidateAgainstSchema(cfg); err == nil {
		t.Fatalf("expected schema error for empty name")
	}
}

func TestValidateAgainstSchema_EmptyConfig(t *testing.T) {
	if err := ValidateAgainstSchema(Config{}); err != nil {
		t.Fatalf("empty config should be valid: %v", err)
	}
}
