package onboarding

import (
	"errors"
	"testing"
)

func TestFlowFullConversation(t *testing.T) {
	answers := []string{"fitness", "women 20-35", "instagram", "grow audience"}
	wantReplies := []string{
		"Who is your target audience?",
		"What platforms do you mainly use?",
		"What's your main goal with your content?",
		"Great! Let me analyze your profile now.",
	}

	flow := NewFlow()
	for i, answer := range answers {
		if flow.Complete() {
			t.Fatalf("complete before submission %d", i+1)
		}
		reply, done, err := flow.Submit(answer)
		if err != nil {
			t.Fatalf("Submit(%q): %v", answer, err)
		}
		if reply != wantReplies[i] {
			t.Errorf("reply %d = %q, want %q", i+1, reply, wantReplies[i])
		}
		if done != (i == len(answers)-1) {
			t.Errorf("done after submission %d = %v", i+1, done)
		}
	}

	profile, ok := flow.Profile()
	if !ok {
		t.Fatal("profile not available after completion")
	}
	want := Profile{Niche: "fitness", Audience: "women 20-35", Platform: "instagram", Goal: "grow audience"}
	if profile != want {
		t.Errorf("profile = %+v, want %+v", profile, want)
	}

	transcript := flow.Transcript()
	if len(transcript) != 8 {
		t.Fatalf("transcript length = %d, want 8", len(transcript))
	}
	if !transcript[0].FromUser || transcript[0].Text != "fitness" {
		t.Errorf("transcript[0] = %+v", transcript[0])
	}
	if transcript[1].FromUser || transcript[1].Text != "Who is your target audience?" {
		t.Errorf("transcript[1] = %+v", transcript[1])
	}
}

func TestFlowProfileUnavailableMidway(t *testing.T) {
	flow := NewFlow()
	flow.Submit("fitness")
	flow.Submit("women 20-35")

	if _, ok := flow.Profile(); ok {
		t.Error("profile available before completion")
	}
	if flow.Complete() {
		t.Error("flow complete after 2 of 4 answers")
	}
}

func TestFlowRejectsExtraSubmissions(t *testing.T) {
	flow := NewFlow()
	for _, answer := range []string{"a", "b", "c", "d"} {
		flow.Submit(answer)
	}

	if _, _, err := flow.Submit("extra"); !errors.Is(err, ErrComplete) {
		t.Errorf("err = %v, want ErrComplete", err)
	}
	if len(flow.Transcript()) != 8 {
		t.Error("rejected submission mutated the transcript")
	}
}

func TestFlowReset(t *testing.T) {
	flow := NewFlow()
	for _, answer := range []string{"a", "b", "c", "d"} {
		flow.Submit(answer)
	}

	flow.Reset()
	if flow.Complete() {
		t.Error("flow still complete after reset")
	}
	if len(flow.Transcript()) != 0 {
		t.Error("transcript survived reset")
	}
	if reply, _, err := flow.Submit("travel"); err != nil || reply != "Who is your target audience?" {
		t.Errorf("first submission after reset = %q, %v", reply, err)
	}
}
