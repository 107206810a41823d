package config

import (
	"os"
	"strings"
)

const (
	// TrackViewURL is the local candidate tracking endpoint the track probe hits.
	TrackViewURL = "http://localhost:3001/api/candidate-auth/track-view/9999"

	// CompletionPrompt is sent verbatim to the provider.
	CompletionPrompt = "Hello, are you working?"

	DefaultModel = "gemini-2.0-flash"
)

// CredentialEnvVars are checked in order; the first non-empty one wins.
var CredentialEnvVars = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}

// TrackView is the body POSTed to the tracking endpoint.
type TrackView struct {
	CandidateID     int    `json:"candidateId"`
	InteractionType string `json:"interactionType"`
}

// ManualTrackView is the literal payload used by the manual tracking check.
var ManualTrackView = TrackView{CandidateID: 1, InteractionType: "TEST_MANUAL_SCRIPT"}

type Config struct {
	APIKey      string    // provider credential; empty means none was found
	EndpointURL string    // tracking probe target
	Payload     TrackView // tracking probe body
	Model       string    // provider model, e.g. "gemini-2.0-flash"
	Prompt      string    // completion prompt
	ProviderURL string    // optional provider base URL override
	LogDir      string    // logs directory
	LogLevel    string    // debug | info | warn | error
	StubAddr    string    // bind address for the local tracking stub
}

func FromEnv() Config {
	// Model
	model := strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
	if model == "" {
		model = DefaultModel
	}

	// Logs
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}
	logLevel := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if logLevel == "" {
		logLevel = "info"
	}

	// Stub binds to the same port the tracking URL points at.
	stubAddr := os.Getenv("STUB_ADDR")
	if stubAddr == "" {
		stubAddr = "127.0.0.1:3001"
	}

	// Endpoint, payload and prompt are fixed; the environment never changes them.
	return Config{
		APIKey:      LookupCredential(os.Getenv),
		EndpointURL: TrackViewURL,
		Payload:     ManualTrackView,
		Model:       model,
		Prompt:      CompletionPrompt,
		ProviderURL: strings.TrimSpace(os.Getenv("GEMINI_BASE_URL")),
		LogDir:      logDir,
		LogLevel:    logLevel,
		StubAddr:    stubAddr,
	}
}

// LookupCredential returns the first non-blank value among CredentialEnvVars.
func LookupCredential(getenv func(string) string) string {
	for _, name := range CredentialEnvVars {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			return v
		}
	}
	return ""
}
