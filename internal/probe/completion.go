package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// CompletionProbe sends one prompt to the Gemini API and expects text back.
type CompletionProbe struct {
	APIKey  string
	Model   string
	Prompt  string
	BaseURL string // empty uses the SDK default endpoint

	HTTPClient *http.Client
}

func NewCompletionProbe(apiKey, model, prompt, baseURL string) *CompletionProbe {
	return &CompletionProbe{APIKey: apiKey, Model: model, Prompt: prompt, BaseURL: baseURL}
}

func (c *CompletionProbe) Name() string { return "completion" }

func (c *CompletionProbe) Probe(ctx context.Context) Result {
	res := c.probe(ctx)
	res.Probe = c.Name()
	return res
}

func (c *CompletionProbe) probe(ctx context.Context) Result {
	if strings.TrimSpace(c.APIKey) == "" {
		return MissingCredential()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      c.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  c.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: c.BaseURL},
	})
	if err != nil {
		return NetworkError("create client: " + err.Error())
	}

	start := time.Now()
	resp, err := client.Models.GenerateContent(ctx, c.Model, genai.Text(c.Prompt), nil)
	latency := time.Since(start).Seconds() * 1000
	if err != nil {
		out := classifyGenAIError(err)
		out.LatencyMS = latency
		return out
	}

	text := ""
	if resp != nil {
		text = resp.Text()
	}
	if text == "" {
		out := noTextResult(resp)
		out.LatencyMS = latency
		return out
	}
	out := Success(0, text)
	out.LatencyMS = latency
	return out
}

// noTextResult reports a 2xx reply that carries no text, e.g. a blocked prompt.
func noTextResult(resp *genai.GenerateContentResponse) Result {
	msg := "provider returned no text"
	if resp == nil {
		return RemoteError(http.StatusOK, msg, "")
	}
	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" {
		msg = fmt.Sprintf("prompt blocked: %s", fb.BlockReason)
	}
	body := ""
	if b, err := json.Marshal(resp); err == nil {
		body = string(b)
	}
	return RemoteError(http.StatusOK, msg, body)
}

// classifyGenAIError maps an HTTP-level provider error to RemoteError and
// everything else to NetworkError.
func classifyGenAIError(err error) Result {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		var p *genai.APIError
		if !errors.As(err, &p) || p == nil {
			return NetworkError(err.Error())
		}
		apiErr = *p
	}
	body := ""
	if b, mErr := json.Marshal(apiErr); mErr == nil {
		body = string(b)
	}
	msg := apiErr.Message
	if msg == "" {
		msg = err.Error()
	}
	return RemoteError(apiErr.Code, msg, body)
}
