package override

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Founder is one manually researched entry. The overrides file maps company
// name -> Founder; entries are added by hand between runs as YC profile pages
// get visited.
type Founder struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	LinkedIn  string `yaml:"linkedin"`
	Website   string `yaml:"website"`
}

type Table map[string]Founder

func Load(path string) (Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Table
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, err
	}
	if t == nil {
		t = Table{}
	}
	return t, nil
}
