package csscat

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}</body>
</html>
`))

// WriteHTMLFragment writes the three-paragraph summary a host page embeds.
// An unavailable run writes only the not-available message.
func WriteHTMLFragment(w io.Writer, report *Report) error {
	_, err := io.WriteString(w, renderFragment(report))
	return err
}

// WriteHTMLDocument wraps the fragment in a standalone page
func WriteHTMLDocument(w io.Writer, report *Report) error {
	return documentTemplate.Execute(w, struct {
		Title string
		Body  template.HTML
	}{
		Title: report.Target.FileName(),
		Body:  template.HTML(renderFragment(report)),
	})
}

func renderFragment(report *Report) string {
	if !report.Available() {
		return MessageNotAvailable
	}

	files, size := report.CountLines()
	var b strings.Builder
	fmt.Fprintf(&b, "<p>%s</p>\n", files)
	fmt.Fprintf(&b, "<p>%s</p>\n", size)
	fmt.Fprintf(&b, "<p>%s</p>\n", template.HTMLEscapeString(report.Outcome.Message()))
	return b.String()
}
