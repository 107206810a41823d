package probe

import (
	"fmt"
	"io"
	"strings"

	"github.com/hamed0406/smokeprobe/internal/config"
)

// Report prints r for a human. Payload and body are written as received,
// minus trailing line breaks so each ends on exactly one newline.
func Report(w io.Writer, r Result) {
	switch r.Kind {
	case KindSuccess:
		fmt.Fprintln(w, trimEOL(r.Payload))
		if r.StatusCode != 0 {
			fmt.Fprintf(w, "status: %d\n", r.StatusCode)
		}
	case KindMissingCredential:
		fmt.Fprintf(w, "%s (set %s)\n", ErrMissingCredential, strings.Join(config.CredentialEnvVars, " or "))
	case KindRemoteError:
		fmt.Fprintf(w, "error: %s\n", r.Message)
		if r.Body != "" {
			fmt.Fprintf(w, "response body: %s\n", trimEOL(r.Body))
		}
	default:
		fmt.Fprintf(w, "error: %s\n", r.Message)
	}
}

func trimEOL(s string) string { return strings.TrimRight(s, "\r\n") }
