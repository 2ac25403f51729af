// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
)

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.ReportName}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 40px; color: #212121; }
h1 { color: #1565C0; }
h2 { border-bottom: 2px solid #1565C0; padding-bottom: 4px; margin-top: 36px; }
table { border-collapse: collapse; width: 100%; margin: 12px 0; }
th, td { border: 1px solid #BDBDBD; padding: 6px 10px; text-align: left; vertical-align: top; }
th { background: #ECEFF1; }
.cover { text-align: center; padding: 80px 0 60px 0; }
.badge { display: inline-block; padding: 2px 10px; border-radius: 4px; color: #fff; font-weight: bold; }
.testcase { border: 1px solid #BDBDBD; padding: 14px; margin: 18px 0; page-break-inside: avoid; }
.evidence img { max-width: 100%; margin: 8px 0; border: 1px solid #BDBDBD; }
.signatures td { height: 70px; }
.chart { margin: 16px 0; }
</style>
</head>
<body>

<div class="cover">
<h1>{{.ReportName}}</h1>
<p><strong>Client:</strong> {{.ClientName}}</p>
<p><strong>Application:</strong> {{.ApplicationName}}</p>
<p><strong>Overall Risk:</strong> <span class="badge" style="background:#C62828">{{.OverallRisk}}</span></p>
<p>Generated {{.GeneratedAt.Format "02 Jan 2006 15:04"}}</p>
</div>

<h2>Document Attributes</h2>
<table>
{{range .Attributes}}<tr><th>{{.Key}}</th><td>{{.Value}}</td></tr>
{{end}}</table>

<h2>Executive Summary</h2>
<p>{{.ExecutiveSummary}}</p>
{{if .KeyHighlights}}<p>{{.KeyHighlights}}</p>{{end}}

<h2>Objective</h2>
<p>{{.Objective}}</p>

<h2>Scope</h2>
<p>{{.Scope}}</p>

<h2>Assessment Timeframe</h2>
<table>
<tr><th>Start Date</th><th>End Date</th><th>Total Days</th></tr>
<tr><td>{{.AssessmentStart}}</td><td>{{.AssessmentEnd}}</td><td>{{.TotalDays}}</td></tr>
</table>

<h2>Approach &amp; Methodology</h2>
<p>{{.Approach}}</p>
{{if .Methodology}}<p>{{.Methodology}}</p>{{end}}

<h2>Risk Rating Legend</h2>
<table>
<tr><th>Severity</th><th>Impact</th></tr>
{{range .RiskLegend}}<tr><td><span class="badge" style="background:{{.Color}}">{{.Severity}}</span></td><td>{{.Impact}}</td></tr>
{{end}}</table>

<h2>Vulnerability Summary</h2>
<table>
<tr><th>Severity</th><th>Open Findings</th></tr>
{{range .SeverityCounts}}<tr><td><span class="badge" style="background:{{.Color}}">{{.Label}}</span></td><td>{{.Count}}</td></tr>
{{end}}</table>
{{if .Charts.SeverityPie}}<div class="chart"><img src="{{.Charts.SeverityPie}}" alt="Severity distribution"></div>{{end}}

<h2>Test Case Summary</h2>
<table>
<tr><th>Code</th><th>Vulnerability</th><th>Severity</th><th>Status</th></tr>
{{range .TestCases}}<tr>
<td>{{.Code}}</td>
<td>{{.VulnerabilityName}}</td>
<td><span class="badge" style="background:{{.SeverityColor}}">{{.Severity}}</span></td>
<td>{{.Status}}</td>
</tr>
{{end}}</table>
{{if .Charts.StatusBar}}<div class="chart"><img src="{{.Charts.StatusBar}}" alt="Test case status"></div>{{end}}
{{if .Charts.TopApplications}}<div class="chart"><img src="{{.Charts.TopApplications}}" alt="Top applications by passed test cases"></div>{{end}}

<h2>Detailed Observations</h2>
{{range .TestCases}}
<div class="testcase">
<h3>{{.Code}} — {{.VulnerabilityName}}</h3>
<p><strong>Severity:</strong> <span class="badge" style="background:{{.SeverityColor}}">{{.Severity}}</span>
&nbsp; <strong>Status:</strong> {{.Status}}</p>
<p><strong>Description:</strong> {{.Description}}</p>
<p><strong>Test Procedure:</strong> {{.TestProcedure}}</p>
{{if .FindingDetails}}<p><strong>Findings:</strong> {{.FindingDetails}}</p>{{end}}
{{if .Remediation}}<p><strong>Remediation:</strong> {{.Remediation}}</p>{{end}}
{{if .Reference}}<p><strong>Reference:</strong> {{.Reference}}</p>{{end}}
{{if .TesterComments}}<p><strong>Tester Comments:</strong> {{.TesterComments}}</p>{{end}}
{{if .Evidence}}<div class="evidence"><strong>Evidence:</strong>
{{range .Evidence}}
<p>{{.Name}}{{if .Description}} — {{.Description}}{{end}}</p>
{{if .DataURI}}<img src="{{.DataURI}}" alt="{{.Name}}">{{end}}
{{end}}</div>{{end}}
</div>
{{end}}

{{if .ToolsUsed}}<h2>Tools Used</h2>
<p>{{.ToolsUsed}}</p>{{end}}

<h2>Conclusion</h2>
<p>{{.Conclusion}}</p>
{{if .Recommendations}}<p><strong>Recommendations:</strong> {{.Recommendations}}</p>{{end}}
{{if .NextSteps}}<p><strong>Next Steps:</strong> {{.NextSteps}}</p>{{end}}

<h2>Signatures</h2>
<table class="signatures">
<tr><th>Prepared By</th><th>Reviewed By</th><th>Approved By</th></tr>
<tr><td>{{.PreparedBy}}</td><td>{{.ReviewedBy}}</td><td>{{.ApprovedBy}}</td></tr>
</table>

</body>
</html>
`))

// RenderHTML produces the self-contained HTML artifact. Given a structurally
// valid document it either succeeds completely or fails with an error, never
// with a partial document.
func RenderHTML(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, doc); err != nil {
		return nil, errors.Wrap(err, "could not render html report")
	}
	return buf.Bytes(), nil
}
