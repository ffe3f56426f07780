package render

import (
	"fmt"
	"html/template"
	"strings"
)

// The report templates mirror the original program's two HTML outputs:
// a standalone page and an inline fragment for embedding.
const standaloneHTML = `<!DOCTYPE html>
<html>
	<head>
		<title>GTREE: {{.TreeName}}</title>
		<meta charset="utf-8">
		<style>
			.gtree-chart {
				font-family:	monospace;
				font-size:		10pt;
				line-height:	1.20;
				white-space:	pre-wrap;
				word-wrap:		break-word;
				padding:		0;
				margin:			0;
			}
			.gtree-header {
				font-family:	'Times New Roman', Times, serif;
				font-style:		italic;
			}
		</style>
	</head>
	<body>
		<h3 class="gtree-header">{{.Title}}</h3>
		<p>
			<div class="gtree-chart">{{.Data}}</div>
		</p>
		<p>Generated by gtree</p>
	</body>
</html>
`

const inlineHTML = `<style>
	.gtree-chart {
		font-family:	monospace;
		font-size:		10pt;
		line-height:	1.20;
		white-space:	pre-wrap;
		word-wrap:		break-word;
		padding:		0;
		margin:			0;
	}
	.gtree-header {
		font-family:	'Times New Roman', Times, serif;
		font-style:		italic;
	}
</style>
<h3 class="gtree-header">{{.Title}}</h3>
<p>
	<div class="gtree-chart">{{.Data}}</div>
</p>
`

var (
	standaloneTmpl = template.Must(template.New("standalone").Parse(standaloneHTML))
	inlineTmpl     = template.Must(template.New("inline").Parse(inlineHTML))
)

// HTMLReport renders a chart (or any terminal output) as an HTML
// report. standalone selects a complete page rather than an embeddable
// fragment. ANSI styling is stripped; the chart's line drawing is kept
// as-is inside a monospace block.
func HTMLReport(title, treeName, data string, standalone bool) (string, error) {
	payload := struct {
		Title    string
		TreeName string
		Data     string
	}{
		Title:    title,
		TreeName: treeName,
		Data:     StripANSI(data),
	}

	tmpl := inlineTmpl
	if standalone {
		tmpl = standaloneTmpl
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, payload); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return b.String(), nil
}

// StripANSI removes ANSI escape sequences, leaving printable text.
func StripANSI(s string) string {
	var b strings.Builder
	skipping := false
	for _, r := range s {
		if skipping {
			// CSI sequences end with a letter.
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				skipping = false
			}
			continue
		}
		if r == '\x1b' {
			skipping = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
