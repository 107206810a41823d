package probe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// fake prober you can control
type fakeProber struct {
	name  string
	out   Result
	calls int
}

func (f *fakeProber) Name() string { return f.name }

func (f *fakeProber) Probe(ctx context.Context) Result {
	f.calls++
	r := f.out
	r.Probe = f.name
	return r
}

func TestRunner_RunsEachOnceInOrder(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	a := &fakeProber{name: "a", out: Success(200, "ok")}
	b := &fakeProber{name: "b", out: NetworkError("refused")}

	results := NewRunner(zap.New(core), a, b).Run(context.Background())

	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Probe)
	assert.Equal(t, "b", results[1].Probe)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)

	assert.Equal(t, 2, logs.FilterMessage("probe_start").Len())
	assert.Equal(t, 1, logs.FilterMessage("probe_done").Len())
	failed := logs.FilterMessage("probe_failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "refused", failed[0].ContextMap()["message"])
}

func TestCombined(t *testing.T) {
	assert.NoError(t, Combined([]Result{Success(200, "")}))

	a := MissingCredential()
	a.Probe = "completion"
	b := RemoteError(400, "", `{"error":"bad"}`)
	b.Probe = "track"

	err := Combined([]Result{a, Success(200, ""), b})
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.ErrorIs(t, err, ErrMissingCredential)
}
