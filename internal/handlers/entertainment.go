package handlers

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/bondhu-robotics/bondhu/internal/intent"
	"github.com/bondhu-robotics/bondhu/internal/store"
)

// EntertainmentHandler serves canned jokes, stories and riddles. Content is
// picked per language, with a milder selection for the principal.
type EntertainmentHandler struct {
	rng *rand.Rand
}

func NewEntertainmentHandler(seed int64) *EntertainmentHandler {
	return &EntertainmentHandler{rng: rand.New(rand.NewSource(seed))}
}

func (h *EntertainmentHandler) ID() ID { return Entertainment }

func (h *EntertainmentHandler) Handle(_ context.Context, req *Request) (*Result, error) {
	lang := req.Language()

	var response string
	switch req.Intent.Type {
	case intent.TellStory:
		response = h.pick(stories[lang])
	case intent.TellRiddle:
		response = h.riddle(lang)
	default:
		// Jokes for everyone except the principal, who gets a story.
		if req.Person != nil && req.Person.Role == store.RolePrincipal {
			response = h.pick(stories[lang])
		} else {
			response = h.pick(jokes[lang])
		}
	}
	return &Result{Response: response}, nil
}

func (h *EntertainmentHandler) pick(items []string) string {
	return items[h.rng.Intn(len(items))]
}

func (h *EntertainmentHandler) riddle(lang intent.Language) string {
	r := riddles[h.rng.Intn(len(riddles))]
	if lang == intent.LangBangla {
		return fmt.Sprintf("%s উত্তর: %s।", r.questionBN, r.answerBN)
	}
	return fmt.Sprintf("%s The answer is: %s.", r.questionEN, r.answerEN)
}

var jokes = map[intent.Language][]string{
	intent.LangBangla: {
		"একজন লোক ডাক্তারের কাছে গিয়ে বলল, 'ডাক্তার, আমি ভুলে যাই সব কিছু।' ডাক্তার বললেন, 'কখন থেকে?' লোকটি বলল, 'কখন থেকে কি?'",
		"একজন শিক্ষক ছাত্রকে জিজ্ঞেস করলেন, 'পৃথিবীতে কতগুলো মহাদেশ আছে?' ছাত্র বলল, 'সাতটি।' শিক্ষক বললেন, 'ভুল।' ছাত্র বলল, 'তাহলে কতগুলো?' শিক্ষক বললেন, 'আমি জানি না, কিন্তু সাতটি নয়।'",
		"একজন লোক বাসে উঠে কন্ডাক্টরকে বলল, 'একটা টিকিট দিন।' কন্ডাক্টর বলল, 'কোথায় যাবেন?' লোকটি বলল, 'আমি জানি না।' কন্ডাক্টর বলল, 'তাহলে টিকিট দেবো কী করে?'",
		"একজন লোক রেস্তোরাঁয় গিয়ে বলল, 'একটা স্যান্ডউইচ দিন।' ওয়েটার বলল, 'কী ধরনের?' লোকটি বলল, 'খাবার ধরনের।'",
	},
	intent.LangEnglish: {
		"Why don't scientists trust atoms? Because they make up everything!",
		"Why did the scarecrow win an award? Because he was outstanding in his field!",
		"What do you call a fake noodle? An impasta!",
		"Why did the math book look so sad? Because it had too many problems!",
		"What do you call a bear with no teeth? A gummy bear!",
	},
}

var stories = map[intent.Language][]string{
	intent.LangBangla: {
		"বুদ্ধিমান কাক: একদিন একটি কাক খুব তৃষ্ণার্ত ছিল। সে একটি কলসিতে পানি দেখতে পেল কিন্তু পানি এত নিচে ছিল যে তার ঠোঁট পৌঁছাতে পারছিল না। তখন সে চারপাশে ছোট ছোট পাথর খুঁজে বের করল এবং কলসিতে ফেলতে লাগল। পাথর ফেলতে ফেলতে পানি উপরে উঠে এল এবং কাক তৃষ্ণা মেটাতে পারল।",
		"সৎ কাঠুরে: একজন গরিব কাঠুরে বনে গিয়ে কাঠ কাটছিল। হঠাৎ তার কুড়াল নদীতে পড়ে গেল। তখন একজন দেবতা এসে তাকে সোনার কুড়াল দিলেন। কাঠুরে বললেন, 'এটা আমার নয়।' শেষে দেবতা তার আসল কুড়াল দিলেন এবং সততার জন্য তাকে তিনটি কুড়ালই দান করলেন।",
	},
	intent.LangEnglish: {
		"The Wise Crow: A thirsty crow found a pitcher with water, but the water was too low for his beak to reach. He found small stones and dropped them into the pitcher one by one. As he dropped more stones, the water level rose until he could drink and quench his thirst.",
		"The Honest Woodcutter: A poor woodcutter's axe fell into a river. A god appeared and offered him a golden axe. The woodcutter said, 'That's not mine.' Finally, the god gave him his original axe and, pleased with his honesty, gave him all three axes.",
	},
}

var riddles = []struct {
	questionBN, answerBN string
	questionEN, answerEN string
}{
	{
		questionBN: "এমন কি জিনিস যা খেলে বাড়ে, না খেলে কমে?",
		answerBN:   "আগুন",
		questionEN: "What grows when you feed it but dies when you give it water?",
		answerEN:   "Fire",
	},
	{
		questionBN: "এমন কি জিনিস যা সবসময় আসে কিন্তু কখনো যায় না?",
		answerBN:   "আগামীকাল",
		questionEN: "What always comes but never arrives?",
		answerEN:   "Tomorrow",
	},
	{
		questionBN: "এমন কি জিনিস যা ভাঙলে বেশি কাজ করে?",
		answerBN:   "রেকর্ড",
		questionEN: "What works better when it's broken?",
		answerEN:   "A record",
	},
}
