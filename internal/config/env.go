package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// envFiles are tried in order; the first one present is loaded.
var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads environment variables from .env/.env.local files.
// Existing process environment variables are not overwritten.
func loadEnvFile() error {
	for _, envPath := range envFiles {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("load %s: %w", envPath, err)
		}
		return nil
	}
	return fmt.Errorf("no .env file found")
}

// EnvString is a YAML string that also accepts the MkDocs !ENV tag:
//
//	site_dir: !ENV SITE_DIR
//	site_dir: !ENV [SITE_DIR, BUILD_DIR, "public"]
//
// In the sequence form every item but the last names a variable; the last is
// the fallback literal. A scalar form with the variable unset decodes to "".
type EnvString string

func (s *EnvString) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag != "!ENV" {
		var v string
		if err := node.Decode(&v); err != nil {
			return err
		}
		*s = EnvString(v)
		return nil
	}

	switch node.Kind {
	case yaml.ScalarNode:
		*s = EnvString(os.Getenv(node.Value))
		return nil
	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return fmt.Errorf("line %d: !ENV needs at least one variable name", node.Line)
		}
		names := node.Content[:len(node.Content)-1]
		for _, n := range names {
			if v, ok := os.LookupEnv(n.Value); ok && v != "" {
				*s = EnvString(v)
				return nil
			}
		}
		last := node.Content[len(node.Content)-1]
		if len(node.Content) == 1 {
			// single-item list: the item is a variable name, not a fallback
			*s = EnvString(os.Getenv(last.Value))
			return nil
		}
		*s = EnvString(last.Value)
		return nil
	default:
		return fmt.Errorf("line %d: !ENV expects a scalar or a sequence", node.Line)
	}
}
