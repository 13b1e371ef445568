package handlers

import (
	"context"
	"fmt"

	"github.com/bondhu-robotics/bondhu/internal/intent"
	"github.com/bondhu-robotics/bondhu/internal/store"
)

// GreetingHandler produces role- and language-aware greetings.
type GreetingHandler struct{}

func NewGreetingHandler() *GreetingHandler { return &GreetingHandler{} }

func (h *GreetingHandler) ID() ID { return Greeting }

func (h *GreetingHandler) Handle(_ context.Context, req *Request) (*Result, error) {
	return &Result{Response: greeting(req.Person, req.Language())}, nil
}

func greeting(p *store.Person, lang intent.Language) string {
	if p == nil {
		if lang == intent.LangBangla {
			return "আসসালামু আলাইকুম! আমি আপনার রোবট সহকারী। আমি আপনার সাথে কথা বলতে প্রস্তুত।"
		}
		return "Hello! I'm your robot assistant. I'm ready to help you."
	}

	if lang == intent.LangBangla {
		switch p.Role {
		case store.RolePrincipal:
			return "আসসালামু আলাইকুম, প্রিন্সিপাল স্যার! আপনার সাথে দেখা করে খুবই ভালো লাগছে।"
		case store.RoleTeacher:
			return "আসসালামু আলাইকুম, স্যার! কেমন আছেন?"
		case store.RoleStudent:
			return "হ্যালো! কেমন আছো? আজকে ক্লাস কেমন গেছে?"
		default:
			return fmt.Sprintf("আসসালামু আলাইকুম, %s! কেমন আছেন?", p.Name)
		}
	}

	switch p.Role {
	case store.RolePrincipal:
		return "Good day, Principal! It's wonderful to see you."
	case store.RoleTeacher:
		return "Hello, Sir! How are you today?"
	case store.RoleStudent:
		return "Hi there! How was your class today?"
	default:
		return fmt.Sprintf("Hello, %s! Great to see you.", p.Name)
	}
}
