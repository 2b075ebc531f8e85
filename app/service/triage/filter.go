package triage

import (
	"strings"

	"github.com/elliotchance/pie/v2"
)

// EscalationResponse is the fixed safety message emitted when Scan triggers.
// The session is over after this, no further input is processed.
const EscalationResponse = "**This sounds potentially serious.** Based on your description, " +
	"it is highly recommended that you **contact a medical professional or emergency services immediately.** " +
	"This chat will now end to ensure your safety."

// criticalKeywords are matched as substrings of the lower-cased message.
// Substring matching over the whole message is deliberate: a critical phrase
// anywhere in the text triggers escalation, even mid-sentence.
var criticalKeywords = []string{
	"chest pain",
	"difficulty breathing",
	"trouble breathing",
	"can't breathe",
	"severe pain",
	"slurred speech",
	"numbness",
	"face drooping",
	"unconscious",
	"loss of consciousness",
	"severe bleeding",
	"uncontrolled bleeding",
}

// Scan reports whether text contains any critical keyword. Case-insensitive,
// pure, never fails. Callers must run this before any other processing of an
// inbound message.
func Scan(text string) bool {
	lower := strings.ToLower(text)

	return pie.Any(criticalKeywords, func(keyword string) bool {
		return strings.Contains(lower, keyword)
	})
}
