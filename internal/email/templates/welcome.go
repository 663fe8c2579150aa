package templates

import (
	_ "embed"
	"html/template"
	"strings"
	"time"
)

//go:embed welcome.html
var welcomeHTML string

var welcomeTmpl = template.Must(template.New("welcome").Parse(welcomeHTML))

// WelcomeData holds the fields for the first-profile welcome email.
// Optional fields are auto-filled when empty.
type WelcomeData struct {
	FirstName string
	Year      int // Auto-set if 0
}

func RenderWelcomeEmail(data WelcomeData) (string, error) {
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}
	if data.FirstName == "" {
		data.FirstName = "there"
	}

	var sb strings.Builder
	if err := welcomeTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
