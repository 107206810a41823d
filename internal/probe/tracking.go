package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// TrackingProbe POSTs a fixed JSON payload to a tracking endpoint.
type TrackingProbe struct {
	Client   *http.Client
	Endpoint string
	Payload  any
}

// NewTrackingProbe uses a client without a timeout, like http.DefaultClient.
func NewTrackingProbe(endpoint string, payload any) *TrackingProbe {
	return &TrackingProbe{
		Client:   &http.Client{},
		Endpoint: endpoint,
		Payload:  payload,
	}
}

func (t *TrackingProbe) Name() string { return "track" }

func (t *TrackingProbe) Probe(ctx context.Context) Result {
	res := t.probe(ctx)
	res.Probe = t.Name()
	return res
}

func (t *TrackingProbe) probe(ctx context.Context) Result {
	body, err := json.Marshal(t.Payload)
	if err != nil {
		return NetworkError("encode payload: " + err.Error())
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Endpoint, bytes.NewReader(body))
	if err != nil {
		return NetworkError(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		out := NetworkError(err.Error())
		out.LatencyMS = time.Since(start).Seconds() * 1000
		return out
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	latency := time.Since(start).Seconds() * 1000 // ms
	if err != nil {
		out := NetworkError("read response: " + err.Error())
		out.StatusCode = resp.StatusCode
		out.LatencyMS = latency
		return out
	}

	text := string(data)
	var out Result
	if resp.StatusCode/100 == 2 {
		out = Success(resp.StatusCode, text)
	} else {
		out = RemoteError(resp.StatusCode, "", text)
	}
	out.LatencyMS = latency
	return out
}
