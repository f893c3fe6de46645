// Package prompts holds the static assistant personas. The registry is
// loaded once from the embedded YAML and is read-only afterwards.
package prompts

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

const (
	SubmissionAgent = "SUBMISSION_AGENT"
	GuidanceAgent   = "GUIDANCE_AGENT"
)

//go:embed prompts.yaml
var rawPersonas []byte

var registry map[string]string

func init() {
	var parsed struct {
		Personas map[string]string `yaml:"personas"`
	}
	if err := yaml.Unmarshal(rawPersonas, &parsed); err != nil {
		panic("prompts: bad embedded personas file: " + err.Error())
	}
	registry = parsed.Personas
}

// Get returns the system prompt for the named persona.
func Get(name string) (string, bool) {
	body, ok := registry[name]
	return body, ok
}
