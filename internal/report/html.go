package report

import (
	"fmt"
	"html/template"
	"os"
	"strings"
)

// htmlReportTemplate renders a batch report as a standalone HTML page with a
// summary table followed by per-document sections.
var htmlReportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"lower":       strings.ToLower,
	"statusClass": statusClass,
	"statusText":  statusText,
	"count": func(r FileReport) int {
		return len(r.Outline)
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
    <title>PDF Outline Extraction Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; }
        .summary { background-color: #f0f0f0; padding: 20px; border-radius: 5px; margin-bottom: 30px; }
        .pdf-result { border: 1px solid #ddd; margin: 20px 0; padding: 20px; border-radius: 5px; }
        .success { border-left: 5px solid #4CAF50; }
        .error { border-left: 5px solid #f44336; }
        .outline { margin-left: 20px; }
        .heading { margin: 5px 0; }
        .h1 { font-weight: bold; color: #333; }
        .h2 { font-weight: bold; color: #666; margin-left: 20px; }
        .h3 { color: #999; margin-left: 40px; }
        table { border-collapse: collapse; width: 100%; margin: 10px 0; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        th { background-color: #f2f2f2; }
        .no-data { color: #888; font-style: italic; }
    </style>
</head>
<body>
    <h1>PDF Outline Extraction Report</h1>

    <div class="summary">
        <h2>Summary</h2>
        <table>
            <tr><th>Metric</th><th>Value</th></tr>
            <tr><td>Total Files Processed</td><td>{{.Summary.TotalFiles}}</td></tr>
            <tr><td>Successful Extractions</td><td>{{.Summary.Successful}}</td></tr>
            <tr><td>Failed Extractions</td><td>{{.Summary.Failed}}</td></tr>
            <tr><td>Total Headings Found</td><td>{{.Summary.TotalHeadingsFound}}</td></tr>
            <tr><td>Average Headings per Document</td><td>{{printf "%.1f" .Summary.AverageHeadings}}</td></tr>
            <tr><td>Processing Date</td><td>{{.Summary.ProcessingDate}}</td></tr>
        </table>
    </div>

    <h2>Individual Results</h2>
{{if not .Results}}    <p class="no-data">No PDF files were processed.</p>
{{end}}{{range .Results}}    <div class="pdf-result {{statusClass .}}">
        <h3>{{.Metadata.Filename}}</h3>
        <p><strong>Title:</strong> {{.Title}}</p>
        <p><strong>Status:</strong> {{statusText .}}</p>
        <p><strong>File Size:</strong> {{.Metadata.FileSize}} bytes</p>
        <p><strong>Processing Time:</strong> {{.Metadata.ProcessingTime}}s</p>
        <p><strong>Headings Found:</strong> {{count .}}</p>
{{if .Error}}        <p><strong>Error:</strong> {{.Error}}</p>
{{end}}{{if .Outline}}        <div class="outline"><h4>Outline:</h4>
{{range .Outline}}            <div class="heading {{lower (printf "%s" .Level)}}">{{.Level}} - Page {{.Page}}: {{.Text}}</div>
{{end}}        </div>
{{end}}    </div>
{{end}}</body>
</html>
`))

func statusClass(r FileReport) string {
	if r.Metadata.Success {
		return "success"
	}
	return "error"
}

func statusText(r FileReport) string {
	if r.Metadata.Success {
		return "Success"
	}
	return "Failed"
}

// WriteHTML renders the batch report to an HTML file at path
func WriteHTML(path string, batch *BatchReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML report: %w", err)
	}
	defer f.Close()

	if err := htmlReportTemplate.Execute(f, batch); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}

	return nil
}
