package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bondhu-robotics/bondhu/internal/intent"
)

func TestPostProcess(t *testing.T) {
	tests := []struct {
		name string
		in   string
		lang intent.Language
		want string
	}{
		{
			name: "strips assistant prefix",
			in:   "Assistant: The sky is blue.",
			lang: intent.LangEnglish,
			want: "The sky is blue.",
		},
		{
			name: "strips bangla robot prefix and adds dari",
			in:   "রোবট: আমি ভালো আছি",
			lang: intent.LangBangla,
			want: "আমি ভালো আছি।",
		},
		{
			name: "adds period in english",
			in:   "Gravity pulls objects together",
			lang: intent.LangEnglish,
			want: "Gravity pulls objects together.",
		},
		{
			name: "keeps existing question mark",
			in:   "Shall we begin?",
			lang: intent.LangEnglish,
			want: "Shall we begin?",
		},
		{
			name: "keeps existing dari",
			in:   "ধন্যবাদ।",
			lang: intent.LangBangla,
			want: "ধন্যবাদ।",
		},
		{
			name: "trims whitespace",
			in:   "  Hello there!  ",
			lang: intent.LangEnglish,
			want: "Hello there!",
		},
		{
			name: "empty stays empty",
			in:   "   ",
			lang: intent.LangEnglish,
			want: "",
		},
		{
			name: "prefix only becomes empty",
			in:   "Assistant:",
			lang: intent.LangEnglish,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PostProcess(tt.in, tt.lang))
		})
	}
}

func TestSystemPrompt(t *testing.T) {
	assert.Equal(t, banglaSchoolPrompt, systemPrompt(intent.LangBangla, true))
	assert.Equal(t, banglaGeneralPrompt, systemPrompt(intent.LangBangla, false))
	assert.Equal(t, englishSchoolPrompt, systemPrompt(intent.LangEnglish, true))
	assert.Equal(t, englishGeneralPrompt, systemPrompt(intent.LangEnglish, false))
}
