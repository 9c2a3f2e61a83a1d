package campaign

import (
	"bytes"
	"fmt"
	"os"
	"text/template"
)

// TemplateData holds the placeholder values substituted into one message.
// Field names mirror the template file's placeholders.
type TemplateData struct {
	Nome         string
	Profissional string
	Data         string
	Hora         string
}

// Template renders the externally supplied reminder message.
type Template struct {
	t *template.Template
}

// LoadTemplate reads the message template from disk. A missing template file
// is a fatal configuration error for the campaign.
func LoadTemplate(path string) (*Template, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("campaign: load message template %q: %w", path, err)
	}
	return ParseTemplate(string(text))
}

// ParseTemplate compiles template text with strict missing-key semantics.
func ParseTemplate(text string) (*Template, error) {
	if text == "" {
		return nil, fmt.Errorf("campaign: message template is empty")
	}
	t, err := template.New("message").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("campaign: parse message template: %w", err)
	}
	return &Template{t: t}, nil
}

// Render produces one personalized message.
func (t *Template) Render(data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := t.t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("campaign: render message template: %w", err)
	}
	return buf.String(), nil
}
