package intent

import (
	"regexp"
	"strings"
)

var trailingPunct = regexp.MustCompile(`[?!.।\s]+$`)

func clean(s string) string {
	return strings.TrimSpace(trailingPunct.ReplaceAllString(s, ""))
}

func englishRules() []rule {
	return []rule{
		{
			intent: StartPatrol,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`\bstart(?:ing)? (?:the )?patrol\b`),
				regexp.MustCompile(`\bbegin (?:the )?patrol\b`),
			},
		},
		{
			intent: EndPatrol,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`\b(?:end|stop|finish) (?:the )?patrol\b`),
			},
		},
		{
			intent: RecordAttendance,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`\b(?:record|take) (?:the )?attendance\b`),
			},
			extract: func(text string) (map[string]string, bool) {
				name, ok := firstSubmatch(text,
					regexp.MustCompile(`attendance (?:for|of) (.+)$`),
				)
				if !ok {
					return nil, false
				}
				return map[string]string{SlotName: clean(name)}, true
			},
		},
		{
			intent: Move,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`\bmove (?:forward|ahead)\b`),
				regexp.MustCompile(`\bmove back(?:ward)?\b`),
				regexp.MustCompile(`\bgo back\b`),
				regexp.MustCompile(`\bturn (?:left|right)\b`),
				regexp.MustCompile(`\bwave\b`),
				regexp.MustCompile(`\bnod\b`),
			},
			extract: extractEnglishDirection,
		},
		{
			intent: RegisterFace,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`\bregister my face\b`),
				regexp.MustCompile(`\bremember (?:me|my face)\b`),
			},
			extract: func(text string) (map[string]string, bool) {
				name, ok := firstSubmatch(text,
					regexp.MustCompile(`\bas (.+)$`),
				)
				if !ok {
					return nil, false
				}
				return map[string]string{SlotName: clean(name)}, true
			},
		},
		{
			intent: CapturePhoto,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`\btake (?:a |another |my )?(?:picture|photo|snapshot)\b`),
				regexp.MustCompile(`\bphotograph\b`),
				regexp.MustCompile(`\bsnapshot\b`),
			},
			extract: func(text string) (map[string]string, bool) {
				if strings.Contains(text, "my") || strings.Contains(text, " me") || strings.Contains(text, "selfie") {
					return map[string]string{SlotTarget: "self"}, true
				}
				return map[string]string{SlotTarget: "general"}, true
			},
		},
		{
			intent: WebSearch,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`\bsearch (?:the internet )?for\b`),
				regexp.MustCompile(`\blook up\b`),
				regexp.MustCompile(`\bgoogle\b`),
				regexp.MustCompile(`\bsearch online\b`),
			},
			extract: func(text string) (map[string]string, bool) {
				query, ok := firstSubmatch(text,
					regexp.MustCompile(`search (?:the internet )?for (.+)$`),
					regexp.MustCompile(`look up (.+)$`),
					regexp.MustCompile(`google (.+)$`),
				)
				if !ok {
					return nil, false
				}
				return map[string]string{SlotQuery: clean(query)}, true
			},
		},
		{
			intent: TellJoke,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`\bjoke\b`),
				regexp.MustCompile(`\bsomething funny\b`),
			},
		},
		{
			intent: TellStory,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`\bstory\b`),
			},
		},
		{
			intent: TellRiddle,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`\briddle\b`),
			},
		},
		{
			intent: Greet,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`\bhello\b`),
				regexp.MustCompile(`\bhi\b`),
				regexp.MustCompile(`\bhey\b`),
				regexp.MustCompile(`\bgood (?:morning|afternoon|evening)\b`),
				regexp.MustCompile(`\bhow are you\b`),
				regexp.MustCompile(`\bnice to meet you\b`),
			},
		},
		{
			intent: AskKnowledge,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`^(?:what|why|when|where|how|who|which)\b`),
				regexp.MustCompile(`\bcan you tell me\b`),
				regexp.MustCompile(`\bdo you know\b`),
				regexp.MustCompile(`^(?:explain|describe)\b`),
			},
			extract: extractEnglishTopic,
		},
	}
}

var englishQuestionLead = regexp.MustCompile(
	`^(?:what|why|when|where|how|who|which|explain|describe|can you tell me|do you know)\b(?:\s+(?:is|are|was|were|do|does|did|about))?\s*`)

func extractEnglishTopic(text string) (map[string]string, bool) {
	topic := clean(englishQuestionLead.ReplaceAllString(text, ""))
	if topic == "" {
		return nil, false
	}
	return map[string]string{SlotTopic: topic}, true
}

func extractEnglishDirection(text string) (map[string]string, bool) {
	var dir string
	switch {
	case strings.Contains(text, "forward") || strings.Contains(text, "ahead"):
		dir = "forward"
	case strings.Contains(text, "back"):
		dir = "backward"
	case strings.Contains(text, "left"):
		dir = "left"
	case strings.Contains(text, "right"):
		dir = "right"
	case strings.Contains(text, "wave"):
		dir = "wave"
	case strings.Contains(text, "nod"):
		dir = "nod"
	default:
		return nil, false
	}
	return map[string]string{SlotDirection: dir}, true
}
