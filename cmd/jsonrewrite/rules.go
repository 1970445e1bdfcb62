package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dryproject/librfc/str"
)

// Rules describes how object keys are rewritten while the token
// stream is copied. Keys listed in drop-keys are removed together
// with their values; rename-keys replaces matching keys everywhere in
// the document.
type Rules struct {
	RenameKeys map[string]string `yaml:"rename-keys"`
	DropKeys   []string          `yaml:"drop-keys"`

	drop map[string]struct{}
}

func RulesFromString(cfg string) (*Rules, error) {
	var rules Rules
	dec := yaml.NewDecoder(bytes.NewBufferString(cfg))
	dec.KnownFields(true)
	err := dec.Decode(&rules)
	if err != nil {
		return nil, fmt.Errorf("could not parse yaml: %w", err)
	}

	err = rules.Parse()
	if err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	return &rules, nil
}

func LoadRules(path string) (*Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules: %w", err)
	}
	defer f.Close()

	var rules Rules
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(&rules)
	if err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}

	err = rules.Parse()
	if err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	return &rules, nil
}

// Parse validates the rule set and builds the drop-key index.
// Replacement keys must be non-empty printable ASCII so the rewritten
// document stays unambiguous in logs and diffs.
func (r *Rules) Parse() error {
	for key, replacement := range r.RenameKeys {
		if replacement == "" {
			return fmt.Errorf("rename-keys[%q]: replacement must not be empty", key)
		}
		if !str.New([]byte(replacement)).IsPrint() {
			return fmt.Errorf("rename-keys[%q]: replacement %q is not printable ASCII", key, replacement)
		}
	}

	r.drop = make(map[string]struct{}, len(r.DropKeys))
	for _, key := range r.DropKeys {
		r.drop[key] = struct{}{}
	}

	return nil
}
