package export

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var guideTemplate *template.Template

func init() {
	funcMap := template.FuncMap{
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
		"dollars":  formatInt,
		"rate":     formatRate,
		"deref": func(v any) any {
			switch p := v.(type) {
			case *int:
				if p != nil {
					return *p
				}
				return 0
			case *string:
				if p != nil {
					return *p
				}
				return ""
			default:
				return v
			}
		},
	}

	contents, err := templateFS.ReadFile("templates/guide.html")
	if err != nil {
		guideTemplate = template.Must(template.New("guide").Funcs(funcMap).Parse(fallbackTemplate))
		return
	}
	guideTemplate = template.Must(template.New("guide").Funcs(funcMap).Parse(string(contents)))
}

// RenderGuideHTML renders the full guide as a standalone HTML document, the
// input for both the PDF and DOCX paths.
func RenderGuideHTML(data GuideData) (string, error) {
	var buf bytes.Buffer
	if err := guideTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// fallbackTemplate keeps exports working if the embedded file is missing.
const fallbackTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>2025 Tax Planning Guide</title>
  <style>body { font-family: Georgia, serif; line-height: 1.5; max-width: 800px; margin: 2rem auto; }</style>
</head>
<body>
  <h1>2025 Tax Planning Guide</h1>
  <p><strong>Generated:</strong> {{.GeneratedAt}}</p>
  {{range .Sections}}
  <h2>{{.Title}}</h2>
  <div>{{.Content | safeHTML}}</div>
  {{range .Subsections}}
  <h3>{{.Title}}</h3>
  <div>{{.Content | safeHTML}}</div>
  {{end}}
  {{end}}
</body>
</html>`
