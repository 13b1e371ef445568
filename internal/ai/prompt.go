package ai

import (
	"strings"

	"github.com/bondhu-robotics/bondhu/internal/intent"
)

const (
	banglaGeneralPrompt = "আপনি একটি বন্ধুত্বপূর্ণ রোবট সহকারী। আপনি বাংলা ভাষায় কথা বলুন এবং সহায়তা প্রদান করুন। আপনার উত্তর সংক্ষিপ্ত, স্পষ্ট এবং বন্ধুত্বপূর্ণ হওয়া উচিত।"

	banglaSchoolPrompt = "আপনি একটি স্কুলের রোবট সহকারী। আপনি শিক্ষক, ছাত্র এবং প্রিন্সিপালের সাথে কথা বলুন। আপনি শিক্ষামূলক বিষয়ে সাহায্য করতে পারেন এবং স্কুলের নিয়ম-কানুন সম্পর্কে জানাতে পারেন।"

	englishGeneralPrompt = "You are a friendly robot assistant. Provide helpful, concise, and clear responses. Be polite and professional in your interactions."

	englishSchoolPrompt = "You are a school robot assistant. Help teachers, students, and the principal. You can assist with educational topics and provide information about school policies."
)

func systemPrompt(lang intent.Language, school bool) string {
	if lang == intent.LangBangla {
		if school {
			return banglaSchoolPrompt
		}
		return banglaGeneralPrompt
	}
	if school {
		return englishSchoolPrompt
	}
	return englishGeneralPrompt
}

// Prefixes models sometimes prepend to completions despite the system prompt.
var assistantPrefixes = []string{
	"Assistant:", "Robot:", "AI:", "রোবট:", "সহকারী:",
}

// PostProcess cleans a raw completion: strips assistant prefixes and makes
// sure the response ends as a sentence in the target language.
func PostProcess(response string, lang intent.Language) string {
	response = strings.TrimSpace(response)
	for _, prefix := range assistantPrefixes {
		if strings.HasPrefix(response, prefix) {
			response = strings.TrimSpace(strings.TrimPrefix(response, prefix))
			break
		}
	}
	if response == "" {
		return ""
	}

	if lang == intent.LangBangla {
		if !strings.HasSuffix(response, ".") && !strings.HasSuffix(response, "!") &&
			!strings.HasSuffix(response, "?") && !strings.HasSuffix(response, "।") {
			response += "।"
		}
	} else {
		if !strings.HasSuffix(response, ".") && !strings.HasSuffix(response, "!") &&
			!strings.HasSuffix(response, "?") {
			response += "."
		}
	}
	return response
}
