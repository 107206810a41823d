package probe

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	cases := []struct {
		name string
		in   Result
		want string
	}{
		{
			name: "tracking success prints data and status",
			in:   Success(200, `{"ok":true}`),
			want: "{\"ok\":true}\nstatus: 200\n",
		},
		{
			name: "trailing newline in payload is printed once",
			in:   Success(200, "{\"ok\":true}\r\n"),
			want: "{\"ok\":true}\nstatus: 200\n",
		},
		{
			name: "trailing newline in body is printed once",
			in:   RemoteError(400, "", "{\"error\":\"bad\"}\n"),
			want: "error: request failed with status code 400\nresponse body: {\"error\":\"bad\"}\n",
		},
		{
			name: "completion success prints provider text only",
			in:   Success(0, "Yes, I am working."),
			want: "Yes, I am working.\n",
		},
		{
			name: "missing credential",
			in:   MissingCredential(),
			want: "no credential found (set GEMINI_API_KEY or GOOGLE_API_KEY)\n",
		},
		{
			name: "remote error prints message and body",
			in:   RemoteError(400, "", `{"error":"bad"}`),
			want: "error: request failed with status code 400\nresponse body: {\"error\":\"bad\"}\n",
		},
		{
			name: "remote error without body",
			in:   RemoteError(502, "", ""),
			want: "error: request failed with status code 502\n",
		},
		{
			name: "network error",
			in:   NetworkError("dial tcp 127.0.0.1:3001: connect: connection refused"),
			want: "error: dial tcp 127.0.0.1:3001: connect: connection refused\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			Report(&buf, c.in)
			assert.Equal(t, c.want, buf.String())
		})
	}
}

func TestResult_Err(t *testing.T) {
	ok := Success(200, "x")
	assert.True(t, ok.OK())
	assert.NoError(t, ok.Err())

	remote := RemoteError(400, "", "{}")
	remote.Probe = "track"
	assert.EqualError(t, remote.Err(), "track: request failed with status code 400 (status 400)")

	netErr := NetworkError("refused")
	netErr.Probe = "completion"
	assert.EqualError(t, netErr.Err(), "completion: refused")
}
