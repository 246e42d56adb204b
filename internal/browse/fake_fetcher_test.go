package browse

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ytget/rm-browser/internal/model"
)

const waitTimeout = 2 * time.Second

type reply struct {
	result model.PageResult
	err    error
}

// pendingCall is a fetch held open until the test releases it
type pendingCall struct {
	query model.Query
	ctx   context.Context
	reply chan reply
}

func (p *pendingCall) succeed(result model.PageResult) { p.reply <- reply{result: result} }
func (p *pendingCall) fail(err error)                  { p.reply <- reply{err: err} }

// scriptedFetcher hands every call to the test and blocks until released.
// With honorCancel set, a cancelled context also releases the call.
type scriptedFetcher struct {
	calls       chan *pendingCall
	honorCancel bool
}

func newScriptedFetcher() *scriptedFetcher {
	return &scriptedFetcher{calls: make(chan *pendingCall, 16)}
}

func (f *scriptedFetcher) FetchPage(ctx context.Context, query model.Query) (model.PageResult, error) {
	call := &pendingCall{query: query, ctx: ctx, reply: make(chan reply, 1)}
	f.calls <- call

	if f.honorCancel {
		select {
		case r := <-call.reply:
			return r.result, r.err
		case <-ctx.Done():
			return model.PageResult{}, ctx.Err()
		}
	}
	r := <-call.reply
	return r.result, r.err
}

// next returns the next issued fetch or fails the test
func (f *scriptedFetcher) next(t *testing.T) *pendingCall {
	t.Helper()
	select {
	case call := <-f.calls:
		return call
	case <-time.After(waitTimeout):
		t.Fatal("expected a fetch to be issued")
		return nil
	}
}

// assertNoCall fails if a fetch is issued within a short window
func (f *scriptedFetcher) assertNoCall(t *testing.T) {
	t.Helper()
	select {
	case call := <-f.calls:
		t.Fatalf("unexpected fetch issued: %+v", call.query)
	case <-time.After(50 * time.Millisecond):
	}
}

// viewRecorder collects published views
type viewRecorder struct {
	mu    sync.Mutex
	views []View
}

func (r *viewRecorder) record(v View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, v)
}

func (r *viewRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// latest returns the view with the highest revision
func (r *viewRecorder) latest() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	var best View
	for _, v := range r.views {
		if v.Revision > best.Revision {
			best = v
		}
	}
	return best
}

// waitFor blocks until the latest view satisfies cond
func (r *viewRecorder) waitFor(t *testing.T, cond func(View) bool) View {
	t.Helper()
	require.Eventually(t, func() bool { return cond(r.latest()) }, waitTimeout, 5*time.Millisecond)
	return r.latest()
}

func page(info model.PageInfo, ids ...model.CharacterID) model.PageResult {
	chars := make([]model.Character, 0, len(ids))
	for _, id := range ids {
		chars = append(chars, model.Character{ID: id, Name: "Character", Status: "Alive", Species: "Human"})
	}
	return model.PageResult{Characters: chars, Info: info}
}

func ids(chars []model.Character) []model.CharacterID {
	out := make([]model.CharacterID, 0, len(chars))
	for _, c := range chars {
		out = append(out, c.ID)
	}
	return out
}
