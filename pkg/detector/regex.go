package detector

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/anonydoc/anonydoc/pkg/entity"
)

// Labels emitted by the RegexDetector.
const (
	LabelEmail      = "EMAIL"
	LabelPhone      = "PHONE"
	LabelSSN        = "SSN"
	LabelCreditCard = "CREDIT_CARD"
	LabelIPAddress  = "IP_ADDRESS"
	LabelAPIKey     = "API_KEY"
)

// pattern pairs a compiled regex with the label it detects and an optional
// extra validation over the matched text.
type pattern struct {
	re       *regexp.Regexp
	label    string
	validate func(string) bool
}

var patterns = []pattern{
	{re: regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`), label: LabelEmail},
	{re: regexp.MustCompile(`(\+?1?[\-.\s]?)?\(?([0-9]{3})\)?[\-.\s]?([0-9]{3})[\-.\s]?([0-9]{4})`), label: LabelPhone},
	{re: regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`), label: LabelSSN},
	{re: regexp.MustCompile(`\b(?:\d{4}[\-\s]?){3}\d{4}\b`), label: LabelCreditCard, validate: luhnValid},
	{re: regexp.MustCompile(`\b(?:[0-9]{1,3}\.){3}[0-9]{1,3}\b`), label: LabelIPAddress},
	{re: regexp.MustCompile(`(?i)(?:api[_\-]?key|token|secret|bearer)[\s"':=]+[a-zA-Z0-9_\-.]{20,}`), label: LabelAPIKey},
}

// RegexDetector finds structured PII locally, without a model. Every match
// is emitted with score 1.0 and exact byte offsets. It is meant to run
// alongside the model client in a Multi, covering patterns an NER model is
// unreliable on.
type RegexDetector struct{}

// NewRegexDetector creates a RegexDetector.
func NewRegexDetector() *RegexDetector {
	return &RegexDetector{}
}

// Detect implements Detector. The labels argument restricts output: only
// candidates whose label is listed are returned. An empty label list
// returns nothing, matching the model detectors' contract.
func (d *RegexDetector) Detect(_ context.Context, text string, labels []string) ([]entity.Candidate, error) {
	if text == "" || len(labels) == 0 {
		return nil, nil
	}
	wanted := make(map[string]bool, len(labels))
	for _, l := range labels {
		wanted[l] = true
	}

	var out []entity.Candidate
	for _, p := range patterns {
		if !wanted[p.label] {
			continue
		}
		for _, m := range p.re.FindAllStringIndex(text, -1) {
			match := text[m[0]:m[1]]
			if p.validate != nil && !p.validate(match) {
				continue
			}
			out = append(out, entity.Candidate{
				Start: m[0],
				End:   m[1],
				Label: p.label,
				Text:  match,
				Score: 1.0,
			})
		}
	}
	return out, nil
}

// luhnValid checks the Luhn checksum over the digits of s, rejecting
// number-shaped strings that cannot be card numbers.
func luhnValid(s string) bool {
	var digits strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) < 12 || len(d) > 19 {
		return false
	}
	sum := 0
	parity := len(d) % 2
	for i, r := range d {
		n := int(r - '0')
		if i%2 == parity {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
	}
	return sum%10 == 0
}
