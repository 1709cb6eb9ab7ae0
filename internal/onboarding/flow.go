// Package onboarding implements the scripted four-question chat that builds
// a creator profile.
package onboarding

import "errors"

// Greeting opens the chat before any submission.
const Greeting = "Hi! I'm your AI research assistant. What content niche do you primarily focus on? (e.g., tech, lifestyle, business, fitness, etc.)"

// completionMessage closes the chat after the final answer.
const completionMessage = "Great! Let me analyze your profile now."

// questions are asked in order, one per user submission.
var questions = []string{
	"What content niche do you primarily focus on?",
	"Who is your target audience?",
	"What platforms do you mainly use?",
	"What's your main goal with your content?",
}

// ErrComplete is returned for submissions after the flow has finished.
var ErrComplete = errors.New("onboarding already complete")

// Profile is the creator profile collected by the flow. Immutable once the
// flow completes.
type Profile struct {
	Niche    string
	Audience string
	Platform string
	Goal     string
}

// Message is one transcript entry.
type Message struct {
	FromUser bool
	Text     string
}

// Flow is the linear onboarding state machine. Each submission advances
// exactly one state; no editing or replay of earlier answers. Not safe for
// concurrent use; callers serialize access per session.
type Flow struct {
	answers    []string
	transcript []Message
}

// NewFlow starts a fresh onboarding conversation.
func NewFlow() *Flow {
	return &Flow{}
}

// Submit records one user answer and returns the canned reply. done is true
// when this submission was the final one.
func (f *Flow) Submit(text string) (reply string, done bool, err error) {
	if f.Complete() {
		return "", false, ErrComplete
	}

	f.answers = append(f.answers, text)
	f.transcript = append(f.transcript, Message{FromUser: true, Text: text})

	if len(f.answers) < len(questions) {
		reply = questions[len(f.answers)]
	} else {
		reply = completionMessage
	}
	f.transcript = append(f.transcript, Message{FromUser: false, Text: reply})

	return reply, f.Complete(), nil
}

// Complete reports whether all questions have been answered.
func (f *Flow) Complete() bool {
	return len(f.answers) == len(questions)
}

// Profile returns the collected profile. ok is false until the flow
// completes.
func (f *Flow) Profile() (Profile, bool) {
	if !f.Complete() {
		return Profile{}, false
	}
	return Profile{
		Niche:    f.answers[0],
		Audience: f.answers[1],
		Platform: f.answers[2],
		Goal:     f.answers[3],
	}, true
}

// Transcript returns a copy of the conversation log.
func (f *Flow) Transcript() []Message {
	out := make([]Message, len(f.transcript))
	copy(out, f.transcript)
	return out
}

// Reset discards all answers and the transcript, returning to the first
// question.
func (f *Flow) Reset() {
	f.answers = nil
	f.transcript = nil
}
