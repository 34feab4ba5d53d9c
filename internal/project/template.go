package project

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templatesYAML []byte

// Folder is one directory a template creates, with the empty files and
// empty subdirectories it contains. A path of "." targets the project
// root itself.
type Folder struct {
	Path  string   `yaml:"path"`
	Files []string `yaml:"files"`
	Dirs  []string `yaml:"dirs"`
}

// Template describes the directory tree a project starts from.
// Templates are immutable configuration data embedded at build time,
// not user data.
type Template struct {
	Description string   `yaml:"description"`
	Folders     []Folder `yaml:"folders"`
}

type templateFile struct {
	Templates map[string]Template `yaml:"templates"`
}

var builtins = mustParseTemplates(templatesYAML)

func mustParseTemplates(data []byte) map[string]Template {
	var parsed templateFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		panic(fmt.Sprintf("malformed embedded template data: %v", err))
	}
	if len(parsed.Templates) == 0 {
		panic("embedded template data defines no templates")
	}
	return parsed.Templates
}

// Lookup returns the template registered under name.
func Lookup(name string) (Template, bool) {
	tmpl, ok := builtins[name]
	return tmpl, ok
}

// Names returns the sorted names of all built-in templates.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
