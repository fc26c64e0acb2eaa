// ABOUTME: Vapi assistant configuration payload: model, voice tuning, and
// ABOUTME: speech-timing plans, mirroring the PATCH /assistant schema.

package vapi

// AssistantConfig is the subset of the Vapi assistant schema this tool
// updates. The same shape decodes the PATCH response for verification.
type AssistantConfig struct {
	FirstMessage      string            `json:"firstMessage"`
	EndCallMessage    string            `json:"endCallMessage"`
	Model             ModelConfig       `json:"model"`
	Voice             VoiceConfig       `json:"voice"`
	StartSpeakingPlan StartSpeakingPlan `json:"startSpeakingPlan"`
	StopSpeakingPlan  StopSpeakingPlan  `json:"stopSpeakingPlan"`
}

// ModelMessage is one chat message in the model configuration.
type ModelMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ModelConfig selects the LLM behind the assistant.
type ModelConfig struct {
	Model                     string         `json:"model"`
	Messages                  []ModelMessage `json:"messages"`
	Provider                  string         `json:"provider"`
	MaxTokens                 int            `json:"maxTokens"`
	Temperature               float64        `json:"temperature"`
	EmotionRecognitionEnabled bool           `json:"emotionRecognitionEnabled"`
}

// VoiceConfig tunes the TTS voice.
type VoiceConfig struct {
	Model                      string   `json:"model"`
	Speed                      float64  `json:"speed"`
	Style                      float64  `json:"style"`
	VoiceID                    string   `json:"voiceId"`
	Language                   string   `json:"language"`
	Provider                   string   `json:"provider"`
	Stability                  float64  `json:"stability"`
	SimilarityBoost            float64  `json:"similarityBoost"`
	UseSpeakerBoost            bool     `json:"useSpeakerBoost"`
	InputPunctuationBoundaries []string `json:"inputPunctuationBoundaries"`
}

// TranscriptionEndpointingPlan controls how long the assistant waits after
// different kinds of caller speech before answering.
type TranscriptionEndpointingPlan struct {
	OnPunctuationSeconds   float64 `json:"onPunctuationSeconds"`
	OnNoPunctuationSeconds float64 `json:"onNoPunctuationSeconds"`
	OnNumberSeconds        float64 `json:"onNumberSeconds"`
}

// SmartEndpointingPlan selects the endpointing provider.
type SmartEndpointingPlan struct {
	Provider string `json:"provider"`
}

// StartSpeakingPlan controls when the assistant starts talking.
type StartSpeakingPlan struct {
	WaitSeconds                  float64                      `json:"waitSeconds"`
	TranscriptionEndpointingPlan TranscriptionEndpointingPlan `json:"transcriptionEndpointingPlan"`
	SmartEndpointingEnabled      bool                         `json:"smartEndpointingEnabled"`
	SmartEndpointingPlan         SmartEndpointingPlan         `json:"smartEndpointingPlan"`
}

// StopSpeakingPlan controls how the assistant yields when interrupted.
type StopSpeakingPlan struct {
	NumWords       int     `json:"numWords"`
	VoiceSeconds   float64 `json:"voiceSeconds"`
	BackoffSeconds float64 `json:"backoffSeconds"`
}

// FranciscoConfig is the tuned configuration for the Mega Loja assistant:
// dynamic greeting, rewritten system prompt, slower and steadier voice, and
// longer number-dictation pauses.
func FranciscoConfig() *AssistantConfig {
	return &AssistantConfig{
		FirstMessage:   FirstMessage,
		EndCallMessage: EndCallMessage,
		Model: ModelConfig{
			Model: "chatgpt-4o-latest",
			Messages: []ModelMessage{
				{Role: "system", Content: SystemPrompt},
			},
			Provider:                  "openai",
			MaxTokens:                 300,
			Temperature:               0.5,
			EmotionRecognitionEnabled: true,
		},
		Voice: VoiceConfig{
			Model:           "eleven_turbo_v2_5",
			Speed:           0.9,
			Style:           0.35,
			VoiceID:         "aLFUti4k8YKvtQGXv0UO",
			Language:        "pt",
			Provider:        "11labs",
			Stability:       0.50,
			SimilarityBoost: 0.50,
			UseSpeakerBoost: true,
			InputPunctuationBoundaries: []string{
				".", "，", "!", "?", ";", "۔", ":", ",",
			},
		},
		StartSpeakingPlan: StartSpeakingPlan{
			WaitSeconds: 0.5,
			TranscriptionEndpointingPlan: TranscriptionEndpointingPlan{
				OnPunctuationSeconds:   0.2,
				OnNoPunctuationSeconds: 1.2,
				OnNumberSeconds:        0.8,
			},
			SmartEndpointingEnabled: true,
			SmartEndpointingPlan:    SmartEndpointingPlan{Provider: "vapi"},
		},
		StopSpeakingPlan: StopSpeakingPlan{
			NumWords:       2,
			VoiceSeconds:   0.2,
			BackoffSeconds: 1.5,
		},
	}
}
