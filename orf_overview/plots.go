package orf_overview

import (
	"bytes"
	"image/color"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// GenerateLengthPlotSVG renders the ORF length distribution as a binned
// line plot and returns it as an SVG string.
func GenerateLengthPlotSVG(lengths []float64) (string, error) {
	p := plot.New()
	p.Title.Text = "ORF Length Distribution"
	p.X.Label.Text = "ORF Length (bp)"
	p.Y.Label.Text = "ORF Count"

	binCount := 100
	minLen := lengths[0]
	maxLen := lengths[0]
	for _, l := range lengths {
		if l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
	}

	binWidth := (maxLen - minLen + 1) / float64(binCount)
	counts := make([]float64, binCount)
	for _, val := range lengths {
		bin := int((val - minLen) / binWidth)
		if bin >= binCount {
			bin = binCount - 1
		}
		counts[bin]++
	}

	points := make(plotter.XYs, binCount)
	for i := 0; i < binCount; i++ {
		points[i].X = minLen + binWidth*float64(i) + binWidth/2
		points[i].Y = counts[i]
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return "", err
	}
	line.LineStyle.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("ORF Count", line)
	p.Legend.Top = true

	return renderSVG(p)
}

// GenerateGCPlotSVG renders the per-ORF GC content distribution with the
// normal curve implied by the sample mean and stddev overlaid, so students
// can see how far the predicted ORFs drift from a random-sequence model.
func GenerateGCPlotSVG(gcValues []float64) (string, error) {
	p := plot.New()
	p.Title.Text = "Per ORF GC Content"
	p.X.Label.Text = "GC Content (%)"
	p.Y.Label.Text = "ORF Count"

	binCount := 100
	binWidth := 100.0 / float64(binCount)
	observed := make([]float64, binCount)
	for _, val := range gcValues {
		bin := int(val / binWidth)
		if bin >= binCount {
			bin = binCount - 1
		}
		observed[bin]++
	}

	mean := stat.Mean(gcValues, nil)
	stddev := stat.StdDev(gcValues, nil)

	normDist := distuv.Normal{Mu: mean, Sigma: stddev}
	scaleFactor := float64(len(gcValues)) * binWidth
	expected := make([]float64, binCount)
	for i := 0; i < binCount; i++ {
		x := binWidth*float64(i) + binWidth/2
		expected[i] = normDist.Prob(x) * scaleFactor
	}

	observedXY := make(plotter.XYs, binCount)
	expectedXY := make(plotter.XYs, binCount)
	for i := 0; i < binCount; i++ {
		x := binWidth*float64(i) + binWidth/2
		observedXY[i].X = x
		observedXY[i].Y = observed[i]
		expectedXY[i].X = x
		expectedXY[i].Y = expected[i]
	}

	obsLine, err := plotter.NewLine(observedXY)
	if err != nil {
		return "", err
	}
	obsLine.Color = color.RGBA{B: 255, A: 255}
	obsLine.Width = vg.Points(2)

	expLine, err := plotter.NewLine(expectedXY)
	if err != nil {
		return "", err
	}
	expLine.Color = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	expLine.Width = vg.Points(2)
	expLine.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}

	p.Add(obsLine, expLine)
	p.Legend.Add("Observed", obsLine)
	p.Legend.Add("Modelled Normal", expLine)
	p.Legend.Top = true

	return renderSVG(p)
}

func renderSVG(p *plot.Plot) (string, error) {
	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
