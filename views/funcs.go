// File: loanguard/views/funcs.go
package views

import (
	"encoding/json"
	"fmt"
	"html/template"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"loanguard/models"
)

// Colour bands shared by the score gauge and the interest slider.
const (
	BandSuccess = "success"
	BandWarning = "warning"
	BandDanger  = "danger"
)

const (
	sliderMaxRate = 30.0
	chartMinScale = 15.0
)

var firstNumber = regexp.MustCompile(`(\d+(\.\d+)?)`)

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"scoreBand":      ScoreBand,
		"parseRate":      ParseRate,
		"rateBand":       RateBand,
		"sliderPosition": SliderPosition,
		"chartBars":      ChartBars,
		"verdict":        VerdictStyle,
		"severityClass":  SeverityClass,
		"fixed1":         func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) },
		"gaugeOffset":    GaugeOffset,
		"hasConfidence":  HasConfidence,
		"showSavings":    ShowGovernmentSavings,
		"amount":         func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
		"add":            func(a, b int) int { return a + b },
		"selectField":    NewSelectField,
		"fillData":       FillData,
	}
}

// SelectField feeds the "select" template.
type SelectField struct {
	Name    string
	Label   string
	Options []string
	Current string
}

// NewSelectField accepts any slice of string-like enumeration values.
func NewSelectField(name, label string, options any, current any) SelectField {
	f := SelectField{Name: name, Label: label, Current: fmt.Sprint(current)}
	v := reflect.ValueOf(options)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			f.Options = append(f.Options, fmt.Sprint(v.Index(i).Interface()))
		}
	}
	return f
}

// FillData encodes element-id to value pairs for the "Use This Example"
// buttons. Arguments alternate id, value.
func FillData(pairs ...string) (string, error) {
	if len(pairs)%2 != 0 {
		return "", fmt.Errorf("fillData: odd number of arguments")
	}
	m := make(map[string]string, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	b, err := json.Marshal(m)
	return string(b), err
}

// ScoreBand colours the loan fit score: 75 and above is good, 50 and above
// is a warning.
func ScoreBand(score models.Number) string {
	switch {
	case score >= 75:
		return BandSuccess
	case score >= 50:
		return BandWarning
	default:
		return BandDanger
	}
}

// ParseRate returns the first number found in an extracted term. Text that
// says "not mentioned" (any case) or holds no number is 0.
func ParseRate(text models.Text) float64 {
	s := string(text)
	if s == "" || strings.Contains(strings.ToLower(s), "not mentioned") {
		return 0
	}
	m := firstNumber.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

func RateBand(rate float64) string {
	switch {
	case rate <= 12:
		return BandSuccess
	case rate <= 18:
		return BandWarning
	default:
		return BandDanger
	}
}

// SliderPosition places a rate on a 0 to 30% track, as a percentage of the
// track width.
func SliderPosition(rate float64) float64 {
	return math.Min(rate/sliderMaxRate*100, 100)
}

// GaugeOffset is the stroke-dashoffset of the score circle (r=45).
func GaugeOffset(score models.Number) float64 {
	circumference := 2 * math.Pi * 45
	return circumference - float64(score)/100*circumference
}

type ChartBar struct {
	Label string
	Value float64
	Text  models.Text
	Color string
	Width float64
}

// ChartBars visualises the headline number of three key terms. The scale is
// the largest value but never less than 15 so small values stay readable.
func ChartBars(terms models.ExtractedTerms) []ChartBar {
	bars := []ChartBar{
		{Label: "Interest Rate (%)", Value: ParseRate(terms.InterestRate), Text: terms.InterestRate, Color: "primary"},
		{Label: "Processing Fee (%)", Value: ParseRate(terms.ProcessingFee), Text: terms.ProcessingFee, Color: "secondary"},
		{Label: "Prepayment Penalty (%)", Value: ParseRate(terms.PrepaymentPenalty), Text: terms.PrepaymentPenalty, Color: "accent"},
	}
	scale := chartMinScale
	for _, b := range bars {
		scale = math.Max(scale, b.Value)
	}
	for i := range bars {
		if bars[i].Value > 0 {
			bars[i].Width = math.Min(bars[i].Value/scale*100, 100)
		}
	}
	return bars
}

type Verdict struct {
	Icon  string
	Title string
	Band  string
}

// VerdictStyle maps the final verdict to its banner. An unexpected verdict
// gets a neutral banner that repeats the model's wording.
func VerdictStyle(v models.Text) Verdict {
	switch string(v) {
	case models.VerdictDoNotSign:
		return Verdict{Icon: "🛑", Title: "Final Verdict: Do Not Sign", Band: BandDanger}
	case models.VerdictCaution:
		return Verdict{Icon: "⚠️", Title: "Final Verdict: Proceed with Caution", Band: BandWarning}
	case models.VerdictLooksGood:
		return Verdict{Icon: "✅", Title: "Final Verdict: Looks Good", Band: BandSuccess}
	default:
		return Verdict{Icon: "ℹ️", Title: "Final Verdict: " + string(v), Band: "neutral"}
	}
}

func SeverityClass(s models.Text) string {
	switch string(s) {
	case models.SeverityHigh:
		return "severity-high"
	case models.SeverityMedium:
		return "severity-medium"
	case models.SeverityLow:
		return "severity-low"
	default:
		return "severity-unknown"
	}
}

// HasConfidence reports whether a confidence score should be drawn; a
// missing or zero score is hidden.
func HasConfidence(n *models.Number) bool {
	return n != nil && *n != 0
}

// ShowGovernmentSavings hides the savings box when the model reports "₹0".
func ShowGovernmentSavings(savings models.Text) bool {
	return string(savings) != "₹0"
}
