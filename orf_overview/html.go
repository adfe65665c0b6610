package orf_overview

import (
	"fmt"
	"os"
)

// WriteHTMLReport assembles the statistics table and the SVG plots into
// <filename>.html.
func WriteHTMLReport(filename string, stats OverviewStats, svgLength string, svgGC string) error {
	f, err := os.Create(filename + ".html")
	if err != nil {
		return err
	}
	defer f.Close()

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<title>ORF Overview Report</title>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; padding: 20px; background-color: #f9f9f9; }
		h1 { color: #333; }
		table { border-collapse: collapse; margin-top: 20px; }
		th, td { padding: 8px 12px; border: 1px solid #ccc; text-align: left; }
		th { background-color: #eee; }
	</style>
</head>
<body>
	<h1>ORF Overview Report</h1>
	<table>
		<tr><th>Metric</th><th>Value</th></tr>
		<tr><td>Total ORFs</td><td>%d</td></tr>
		<tr><td>Total ORF Length</td><td>%d bp</td></tr>
		<tr><td>Min ORF Length</td><td>%d bp</td></tr>
		<tr><td>Max ORF Length</td><td>%d bp</td></tr>
		<tr><td>Mean ORF Length</td><td>%.2f bp</td></tr>
		<tr><td>ORF Length StdDev</td><td>%.2f</td></tr>
		<tr><td>Mean GC Content</td><td>%.2f%%</td></tr>
		<tr><td>GC Content StdDev</td><td>%.2f</td></tr>
	</table>
	<h2>ORF Length Distribution</h2>
	<div>%s</div>
	<h2>GC Content Distribution</h2>
	<div>%s</div>
</body>
</html>`,
		stats.TotalORFs,
		stats.TotalLength,
		stats.MinLength,
		stats.MaxLength,
		stats.MeanLength,
		stats.LengthStdDev,
		stats.MeanGC,
		stats.GCStdDev,
		svgLength,
		svgGC,
	)

	_, err = f.WriteString(html)
	return err
}
