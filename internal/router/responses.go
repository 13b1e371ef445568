package router

import "github.com/bondhu-robotics/bondhu/internal/intent"

// Denial is the fixed refusal spoken when the role gate blocks a command.
func Denial(lang intent.Language) string {
	if lang == intent.LangBangla {
		return "দুঃখিত, এই কাজটি করার অনুমতি আমার নেই। শুধুমাত্র শিক্ষক বা প্রিন্সিপাল এই নির্দেশ দিতে পারেন।"
	}
	return "Sorry, I'm not allowed to do that. Only a teacher or the principal can give this command."
}

// Apology is the terminal fallback when both the model backend and web search
// fail. It is always available and never errors.
func Apology(lang intent.Language) string {
	if lang == intent.LangBangla {
		return "দুঃখিত, আমি এখন এই প্রশ্নের উত্তর দিতে পারছি না। একটু পরে আবার চেষ্টা করুন।"
	}
	return "Sorry, I can't answer that right now. Please try again in a little while."
}
