package prompt

import (
	"strings"
	"testing"
)

func TestGetScriptPrompt(t *testing.T) {
	got := GetScriptPrompt("morning routine")
	want := `Write a viral video script about: "morning routine"`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestGetScriptPrompt_Verbatim(t *testing.T) {
	topic := `5 "quick" tips <b>now</b>`
	if !strings.Contains(GetScriptPrompt(topic), topic) {
		t.Error("Expected topic to be embedded unmodified")
	}
}

func TestGetSystemPrompt_Sections(t *testing.T) {
	p := GetSystemPrompt("")
	for _, section := range []string{"HOOK (0-3s)", "BODY (3-45s)", "CTA (45-60s)", "Do not use hashtags", "under 150 words"} {
		if !strings.Contains(p, section) {
			t.Errorf("Expected system prompt to contain %q", section)
		}
	}
}

func TestGetSystemPrompt_Language(t *testing.T) {
	if strings.Contains(GetSystemPrompt("en-US"), "Write the script in") {
		t.Error("Expected no language line for en-US")
	}

	p := GetSystemPrompt("es-ES")
	if !strings.HasSuffix(p, "- Write the script in es-ES.") {
		t.Errorf("Expected language line at the end, got %q", p)
	}
}
