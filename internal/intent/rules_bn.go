package intent

import (
	"regexp"
	"strings"
)

// Bangla rules avoid \b: RE2 word boundaries are ASCII-only, so the patterns
// match plain substrings the way the utterances are actually spoken.
func banglaRules() []rule {
	return []rule{
		{
			intent: StartPatrol,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`টহল শুরু`),
				regexp.MustCompile(`পাহারা শুরু`),
			},
		},
		{
			intent: EndPatrol,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`টহল (?:শেষ|বন্ধ)`),
				regexp.MustCompile(`পাহারা (?:শেষ|বন্ধ)`),
			},
		},
		{
			intent: RecordAttendance,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`হাজিরা`),
				regexp.MustCompile(`উপস্থিতি`),
			},
			extract: func(text string) (map[string]string, bool) {
				name, ok := firstSubmatch(text,
					regexp.MustCompile(`^(.+?) ?এর (?:হাজিরা|উপস্থিতি)`),
					regexp.MustCompile(`(?:হাজিরা|উপস্থিতি) নাও (.+)$`),
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
				regexp.MustCompile(`(?:এগিয়ে|সামনে) যাও`),
				regexp.MustCompile(`পিছনে যাও`),
				regexp.MustCompile(`(?:ডানে|বামে) (?:যাও|ঘুরো)`),
				regexp.MustCompile(`হাত নাড়াও`),
				regexp.MustCompile(`মাথা নাড়াও`),
			},
			extract: extractBanglaDirection,
		},
		{
			intent: RegisterFace,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`আমার (?:মুখ|চেহারা) মনে রাখো`),
				regexp.MustCompile(`আমাকে মনে রাখো`),
				regexp.MustCompile(`মুখ নিবন্ধন`),
			},
			extract: func(text string) (map[string]string, bool) {
				name, ok := firstSubmatch(text,
					regexp.MustCompile(`আমাকে (.+?) নামে`),
					regexp.MustCompile(`আমার নাম (.+)$`),
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
				regexp.MustCompile(`ছবি (?:তুলো|তোলো)`),
				regexp.MustCompile(`ফটো নাও`),
				regexp.MustCompile(`সেলফি`),
			},
			extract: func(text string) (map[string]string, bool) {
				if strings.Contains(text, "আমার") || strings.Contains(text, "আমাকে") || strings.Contains(text, "সেলফি") {
					return map[string]string{SlotTarget: "self"}, true
				}
				return map[string]string{SlotTarget: "general"}, true
			},
		},
		{
			intent: WebSearch,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`খুঁজে বের করো`),
				regexp.MustCompile(`(?:ইন্টারনেটে|গুগলে|অনলাইনে) .*দেখো`),
			},
			extract: func(text string) (map[string]string, bool) {
				query, ok := firstSubmatch(text,
					regexp.MustCompile(`^(.+?) ?(?:সম্পর্কে)? ?খুঁজে বের করো`),
					regexp.MustCompile(`(?:ইন্টারনেটে|গুগলে|অনলাইনে) (.+?) দেখো`),
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
				regexp.MustCompile(`কৌতুক`),
				regexp.MustCompile(`জোক`),
				regexp.MustCompile(`মজার`),
				regexp.MustCompile(`হাসির`),
			},
		},
		{
			intent: TellStory,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`গল্প`),
			},
		},
		{
			intent: TellRiddle,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`ধাঁধা`),
			},
		},
		{
			intent: Greet,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`আসসালামু আলাইকুম`),
				regexp.MustCompile(`সালাম`),
				regexp.MustCompile(`নমস্কার`),
				regexp.MustCompile(`হ্যালো`),
				regexp.MustCompile(`কেমন আছ(?:েন|ো)`),
				regexp.MustCompile(`ভালো আছ(?:েন|ো)`),
			},
		},
		{
			intent: AskKnowledge,
			patterns: []*regexp.Regexp{
				// Interrogatives must be followed by whitespace: a bare
				// sentence-final "কি?" is not a deterministic match.
				regexp.MustCompile(`(?:^|\s)(?:কি|কী|কেন|কখন|কোথায়|কিভাবে|কে)\s`),
				regexp.MustCompile(`জানতে চাই`),
				regexp.MustCompile(`বল(?:ুন|ো) তো`),
			},
			extract: extractBanglaTopic,
		},
	}
}

var banglaQuestionWords = []string{
	"কি", "কী", "কেন", "কখন", "কোথায়", "কিভাবে", "কে",
	"জানতে চাই", "বলুন তো", "বলো তো",
}

func extractBanglaTopic(text string) (map[string]string, bool) {
	topic := text
	for _, w := range banglaQuestionWords {
		topic = strings.ReplaceAll(topic, w, " ")
	}
	topic = clean(strings.Join(strings.Fields(topic), " "))
	if topic == "" {
		return nil, false
	}
	return map[string]string{SlotTopic: topic}, true
}

func extractBanglaDirection(text string) (map[string]string, bool) {
	var dir string
	switch {
	case strings.Contains(text, "এগিয়ে") || strings.Contains(text, "সামনে"):
		dir = "forward"
	case strings.Contains(text, "পিছনে"):
		dir = "backward"
	case strings.Contains(text, "বামে"):
		dir = "left"
	case strings.Contains(text, "ডানে"):
		dir = "right"
	case strings.Contains(text, "হাত"):
		dir = "wave"
	case strings.Contains(text, "মাথা"):
		dir = "nod"
	default:
		return nil, false
	}
	return map[string]string{SlotDirection: dir}, true
}
