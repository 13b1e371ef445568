package intent

import (
	"regexp"
	"strings"
)

// rule is one row of the ordered matching table. The first rule whose pattern
// matches wins; table order is the priority order, so role-gated commands sit
// above entertainment and open-ended knowledge.
type rule struct {
	intent   Type
	patterns []*regexp.Regexp
	// extract pulls slot values out of the matched text. Returning ok=false
	// keeps the intent but downgrades its confidence.
	extract func(text string) (map[string]string, bool)
}

func (r rule) match(text string) bool {
	for _, p := range r.patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// Recognizer classifies utterances with per-language rule tables. It is
// stateless after construction and safe for concurrent use.
type Recognizer struct {
	tables map[Language][]rule
}

func NewRecognizer() *Recognizer {
	return &Recognizer{
		tables: map[Language][]rule{
			LangEnglish: englishRules(),
			LangBangla:  banglaRules(),
		},
	}
}

// Confidence levels produced by the rule matcher. A deterministic pattern
// match is 1.0; a match whose slot extraction failed drops to 0.5 so the
// router can still dispatch it to the right handler.
const (
	ConfidenceExact     = 1.0
	ConfidenceDowngrade = 0.5
	ConfidenceNone      = 0.0
)

// Recognize classifies an utterance. It never blocks on I/O: matching is pure
// pattern evaluation against the language's rule table.
func (r *Recognizer) Recognize(u Utterance) Intent {
	text := strings.ToLower(strings.TrimSpace(u.Text))

	out := Intent{
		Type:       Unknown,
		Confidence: ConfidenceNone,
		Text:       text,
		Language:   u.Language,
	}
	if text == "" {
		return out
	}

	rules, ok := r.tables[u.Language]
	if !ok {
		// The speech collaborator owns language detection; an unexpected tag
		// classifies as unknown rather than re-detecting here.
		return out
	}

	for _, rl := range rules {
		if !rl.match(text) {
			continue
		}
		out.Type = rl.intent
		out.Confidence = ConfidenceExact
		if rl.extract != nil {
			slots, ok := rl.extract(text)
			out.Slots = slots
			if !ok {
				out.Confidence = ConfidenceDowngrade
			}
		}
		return out
	}
	return out
}

// firstSubmatch runs patterns in order and returns the first capture group of
// the first one that matches.
func firstSubmatch(text string, patterns ...*regexp.Regexp) (string, bool) {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); len(m) > 1 {
			v := strings.TrimSpace(m[1])
			if v != "" {
				return v, true
			}
		}
	}
	return "", false
}
