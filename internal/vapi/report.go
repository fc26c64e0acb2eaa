// ABOUTME: Human-readable verification report for the PATCH response, so the
// ABOUTME: operator can eyeball that the update really landed.

package vapi

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport prints the fields worth double-checking after an update:
// voice tuning, speech timing, and the two prompt edits this revision made
// (corrected store hours, don't-ask-for-number contact flow).
func WriteReport(w io.Writer, a *AssistantConfig) {
	fmt.Fprintln(w, "--- Verification ---")
	fmt.Fprintf(w, "firstMessage starts with: %s...\n", prefix(a.FirstMessage, 90))
	fmt.Fprintf(w, "voice.stability: %v\n", a.Voice.Stability)
	fmt.Fprintf(w, "voice.similarityBoost: %v\n", a.Voice.SimilarityBoost)
	fmt.Fprintf(w, "voice.useSpeakerBoost: %v\n", a.Voice.UseSpeakerBoost)
	fmt.Fprintf(w, "voice.style: %v\n", a.Voice.Style)
	fmt.Fprintf(w, "stopSpeaking.backoffSeconds: %v\n", a.StopSpeakingPlan.BackoffSeconds)
	fmt.Fprintf(w, "stopSpeaking.voiceSeconds: %v\n", a.StopSpeakingPlan.VoiceSeconds)
	fmt.Fprintf(w, "startSpeaking.onNumberSeconds: %v\n", a.StartSpeakingPlan.TranscriptionEndpointingPlan.OnNumberSeconds)
	fmt.Fprintf(w, "endCallMessage: %s\n", a.EndCallMessage)

	var prompt string
	if len(a.Model.Messages) > 0 {
		prompt = a.Model.Messages[0].Content
	}
	fmt.Fprintf(w, "System prompt length: %d chars\n", len([]rune(prompt)))
	firstLine, _, _ := strings.Cut(prompt, "\n")
	fmt.Fprintf(w, "System prompt first line: %s\n", firstLine)

	if strings.Contains(prompt, "08:30") && strings.Contains(prompt, "19:15") && strings.Contains(prompt, "14:00") {
		fmt.Fprintln(w, "Store hours: CORRECT")
	} else {
		fmt.Fprintln(w, "Store hours: CHECK MANUALLY")
	}
	if strings.Contains(prompt, "NÃO peças número") {
		fmt.Fprintln(w, "Contact flow: UPDATED (don't ask for number)")
	} else {
		fmt.Fprintln(w, "Contact flow: CHECK MANUALLY")
	}
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
