// Package gene_eval scores predicted ORFs against a reference annotation.
package gene_eval

import "fmt"

// Interval is a 0-based half-open genomic span.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// MatchClass labels one predicted interval after comparison with the truth
// set. Priority per candidate is full > start-only > end-only.
type MatchClass string

const (
	ClassFull          MatchClass = "full"
	ClassStartOnly     MatchClass = "start-only"
	ClassEndOnly       MatchClass = "end-only"
	ClassFalsePositive MatchClass = "false-positive"
)

// Match compares predicted intervals against truth intervals with a greedy
// first-fit scan: each predicted interval, in input order, takes the first
// not-yet-matched truth interval whose start and end both lie within
// tolerance. Unmatched predictions count as false positives, leftover truth
// intervals as false negatives.
//
// The scan is deliberately order-dependent rather than an optimal bipartite
// matching; permuting either list can change which pairs match, so callers
// comparing runs must keep input order fixed.
func Match(predicted, truth []Interval, tolerance int) (tp, fp, fn int) {
	matched := make([]bool, len(truth))
	for _, p := range predicted {
		hit := false
		for i, tr := range truth {
			if matched[i] {
				continue
			}
			if within(p.Start, tr.Start, tolerance) && within(p.End, tr.End, tolerance) {
				matched[i] = true
				tp++
				hit = true
				break
			}
		}
		if !hit {
			fp++
		}
	}
	fn = len(truth) - tp
	return tp, fp, fn
}

// Classify labels every predicted interval with the same greedy first-fit
// scan as Match. For each prediction the truth list is checked in order and
// the first interval that matches at all wins, preferring a full endpoint
// match, then start-only, then end-only.
func Classify(predicted, truth []Interval, tolerance int) []MatchClass {
	matched := make([]bool, len(truth))
	classes := make([]MatchClass, len(predicted))
	for pi, p := range predicted {
		classes[pi] = ClassFalsePositive
		for i, tr := range truth {
			if matched[i] {
				continue
			}
			startOK := within(p.Start, tr.Start, tolerance)
			endOK := within(p.End, tr.End, tolerance)
			switch {
			case startOK && endOK:
				classes[pi] = ClassFull
			case startOK:
				classes[pi] = ClassStartOnly
			case endOK:
				classes[pi] = ClassEndOnly
			default:
				continue
			}
			matched[i] = true
			break
		}
	}
	return classes
}

func within(a, b, tolerance int) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

// Metrics holds the match counts and the derived prediction-quality scores.
type Metrics struct {
	TP        int     `json:"tp"`
	FP        int     `json:"fp"`
	FN        int     `json:"fn"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Accuracy  float64 `json:"accuracy"`
}

// ComputeMetrics derives precision, recall, F1 and accuracy from the raw
// counts. Every ratio with a zero denominator is 0, not NaN.
func ComputeMetrics(tp, fp, fn int) Metrics {
	m := Metrics{TP: tp, FP: fp, FN: fn}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	if tp+fp+fn > 0 {
		m.Accuracy = float64(tp) / float64(tp+fp+fn)
	}
	return m
}

// Evaluate is the one-call form: Match then ComputeMetrics.
func Evaluate(predicted, truth []Interval, tolerance int) Metrics {
	tp, fp, fn := Match(predicted, truth, tolerance)
	return ComputeMetrics(tp, fp, fn)
}

// String renders the metrics report rounded to 4 decimal places.
func (m Metrics) String() string {
	return fmt.Sprintf(
		"TP: %d\nFP: %d\nFN: %d\nPrecision: %.4f\nRecall: %.4f\nF1: %.4f\nAccuracy: %.4f",
		m.TP, m.FP, m.FN, m.Precision, m.Recall, m.F1, m.Accuracy)
}
