package chat

import (
	"strings"
	"testing"
)

func TestBuildSystemPrompt_Deterministic(t *testing.T) {
	for level := 0; level <= 2; level++ {
		for _, hint := range []bool{false, true} {
			a := BuildSystemPrompt(level, hint, "variables in Python", "what is x?")
			b := BuildSystemPrompt(level, hint, "variables in Python", "what is x?")
			if a != b {
				t.Fatalf("prompt not deterministic at level=%d hint=%v", level, hint)
			}
		}
	}
}

func TestBuildSystemPrompt_ContainsUserMessage(t *testing.T) {
	msg := "why does my loop never stop?"
	p := BuildSystemPrompt(1, false, "loops", msg)
	if !strings.Contains(p, msg) {
		t.Fatal("prompt must echo the literal user message")
	}
}

func TestBuildSystemPrompt_ExactlyOneToneFragment(t *testing.T) {
	tones := []string{toneFoundational, toneModerate, toneOpenEnded}

	for level := 0; level <= 2; level++ {
		p := BuildSystemPrompt(level, false, "lists", "hi")
		count := 0
		for _, tone := range tones {
			if strings.Contains(p, tone) {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("level %d: expected exactly one tone fragment, found %d", level, count)
		}
		if !strings.Contains(p, tones[level]) {
			t.Fatalf("level %d: wrong tone fragment selected", level)
		}
	}
}

func TestBuildSystemPrompt_OutOfRangeFallsBack(t *testing.T) {
	for _, level := range []int{-1, 3, 42} {
		p := BuildSystemPrompt(level, false, "lists", "hi")
		if !strings.Contains(p, toneFallback) {
			t.Fatalf("level %d: expected generic fallback fragment", level)
		}
		if strings.Contains(p, toneFoundational) || strings.Contains(p, toneOpenEnded) {
			t.Fatalf("level %d: unexpected tone fragment present", level)
		}
	}
}

func TestBuildSystemPrompt_HintFragment(t *testing.T) {
	without := BuildSystemPrompt(0, false, "lists", "hi")
	with := BuildSystemPrompt(0, true, "lists", "hi")

	if strings.Contains(without, hintFragment) {
		t.Fatal("hint fragment must not appear when no hint requested")
	}
	if !strings.Contains(with, hintFragment) {
		t.Fatal("hint fragment missing when hint requested")
	}
}

func TestBuildSystemPrompt_PersonaAlwaysPresent(t *testing.T) {
	for _, level := range []int{-1, 0, 1, 2, 7} {
		p := BuildSystemPrompt(level, false, "lists", "hi")
		if !strings.Contains(p, "Socratic Python programming tutor") {
			t.Fatalf("level %d: persona preamble missing", level)
		}
	}
}
