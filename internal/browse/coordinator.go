package browse

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/rm-browser/internal/directory"
	"github.com/ytget/rm-browser/internal/model"
)

// ErrClosed is returned by Dispatch after Close
var ErrClosed = errors.New("coordinator closed")

// Favorites is the part of the favorites store the coordinator needs
type Favorites interface {
	IsFavorite(id model.CharacterID) bool
	Toggle(id model.CharacterID) bool
}

// View is an immutable snapshot of what should be on screen
type View struct {
	// Revision increases with every published view; consumers drop older ones
	Revision uint64

	// Query is the most recently issued query
	Query model.Query
	State model.LoadState

	// Characters is the display list: the last loaded page, projected through
	// the favorites filter when FavoritesOnly is set
	Characters    []model.Character
	FavoritesOnly bool

	// Result is the last successfully loaded page and ResultQuery its query
	Result      model.PageResult
	ResultQuery model.Query
	HasResult   bool

	// Err is the failure of the latest fetch, nil otherwise
	Err       error
	Indicator Indicator
}

type effect int

const (
	effectNone effect = iota
	effectRender
	effectFetch
)

// fetchRequest is one issued fetch, tagged with its sequence number
type fetchRequest struct {
	seq    uint64
	query  model.Query
	ctx    context.Context
	cancel context.CancelFunc
}

// Coordinator owns QueryState and the last PageResult
type Coordinator struct {
	log       *zap.Logger
	fetcher   directory.Fetcher
	favorites Favorites

	ctx    context.Context
	cancel context.CancelFunc

	mu            sync.Mutex
	query         model.Query
	state         model.LoadState
	result        model.PageResult
	resultQuery   model.Query
	hasResult     bool
	favoritesOnly bool
	lastErr       error
	seq           uint64
	revision      uint64
	cancelFetch   context.CancelFunc
	closed        bool
	onUpdate      func(View) // callback for UI updates

	wg sync.WaitGroup
}

// NewCoordinator creates an idle coordinator on page 1 with no filters
func NewCoordinator(log *zap.Logger, fetcher directory.Fetcher, favorites Favorites) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		log:       log.Named("browse"),
		fetcher:   fetcher,
		favorites: favorites,
		ctx:       ctx,
		cancel:    cancel,
		query:     model.NewQuery(),
		state:     model.LoadStateIdle,
	}
}

// SetUpdateCallback sets the function that receives every published view.
// It is called outside the coordinator lock, possibly from fetch goroutines.
func (c *Coordinator) SetUpdateCallback(callback func(View)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdate = callback
}

// Dispatch applies cmd. Query changes take effect before Dispatch returns;
// the fetch they trigger resolves later on its own goroutine.
func (c *Coordinator) Dispatch(cmd Command) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}

	eff, err := c.applyLocked(cmd)
	if err != nil || eff == effectNone {
		c.mu.Unlock()
		return err
	}

	var req *fetchRequest
	if eff == effectFetch {
		req = c.beginFetchLocked()
	}
	view := c.viewLocked()
	callback := c.onUpdate
	c.mu.Unlock()

	// Publish the loading view before the fetch can publish its result.
	if callback != nil {
		callback(view)
	}
	if req != nil {
		go c.runFetch(req)
	}
	return nil
}

// applyLocked is the state-transition function; callers hold c.mu
func (c *Coordinator) applyLocked(cmd Command) (effect, error) {
	switch cmd := cmd.(type) {
	case SetSearch:
		c.query = c.query.WithName(cmd.Text)
	case ClearSearch:
		c.query = c.query.WithName("")
	case SetStatusFilter:
		status, err := model.ParseStatusFilter(cmd.Status)
		if err != nil {
			return effectNone, fmt.Errorf("%w: %q", err, cmd.Status)
		}
		c.query = c.query.WithStatus(status)
	case GoToPage:
		if cmd.Page < 1 {
			return effectNone, fmt.Errorf("%w: %d", model.ErrInvalidPage, cmd.Page)
		}
		c.query.Page = cmd.Page
	case SetQuery:
		status, err := model.ParseStatusFilter(cmd.Status)
		if err != nil {
			return effectNone, fmt.Errorf("%w: %q", err, cmd.Status)
		}
		if cmd.Page < 1 {
			return effectNone, fmt.Errorf("%w: %d", model.ErrInvalidPage, cmd.Page)
		}
		query := model.NewQuery().WithStatus(status).WithName(cmd.Name)
		query.Page = cmd.Page
		c.query = query
	case NextPage:
		c.query.Page++
	case PrevPage:
		if c.query.Page <= 1 {
			return effectNone, nil
		}
		c.query.Page--
	case Reload:
	case SetFavoritesOnly:
		c.favoritesOnly = cmd.Enabled
		return effectRender, nil
	case ToggleFavorite:
		now := c.favorites.Toggle(cmd.ID)
		c.log.Debug("favorite toggled", zap.Int("id", int(cmd.ID)), zap.Bool("favorite", now))
		return effectRender, nil
	default:
		return effectNone, fmt.Errorf("unknown command %T", cmd)
	}

	// Every fetching command returns to the full view.
	c.favoritesOnly = false
	return effectFetch, nil
}

// beginFetchLocked supersedes any in-flight fetch and registers a new one
func (c *Coordinator) beginFetchLocked() *fetchRequest {
	if c.cancelFetch != nil {
		c.cancelFetch()
	}
	c.seq++
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelFetch = cancel
	c.state = model.LoadStateLoading
	c.wg.Add(1)

	c.log.Debug("fetching page",
		zap.Uint64("seq", c.seq),
		zap.Int("page", c.query.Page),
		zap.String("name", c.query.Name),
		zap.String("status", string(c.query.Status)))

	return &fetchRequest{seq: c.seq, query: c.query, ctx: ctx, cancel: cancel}
}

// runFetch performs req and applies its outcome unless it went stale
func (c *Coordinator) runFetch(req *fetchRequest) {
	defer c.wg.Done()
	defer req.cancel()

	result, err := c.fetcher.FetchPage(req.ctx, req.query)

	c.mu.Lock()
	if req.seq != c.seq {
		latest := c.seq
		c.mu.Unlock()
		c.log.Debug("discarding stale response",
			zap.Uint64("seq", req.seq),
			zap.Uint64("latest", latest),
			zap.Error(err))
		return
	}

	c.cancelFetch = nil
	if err != nil {
		c.state = model.LoadStateFailed
		c.lastErr = err
		c.log.Error("failed to load page, keeping previous view",
			zap.Int("page", req.query.Page),
			zap.String("name", req.query.Name),
			zap.String("status", string(req.query.Status)),
			zap.Error(err))
	} else {
		c.state = model.LoadStateLoaded
		c.result = result
		c.resultQuery = req.query
		c.hasResult = true
		c.lastErr = nil
	}
	view := c.viewLocked()
	callback := c.onUpdate
	c.mu.Unlock()

	if callback != nil {
		callback(view)
	}
}

// viewLocked builds a snapshot and bumps the revision; callers hold c.mu
func (c *Coordinator) viewLocked() View {
	c.revision++
	return c.snapshotLocked()
}

func (c *Coordinator) snapshotLocked() View {
	view := View{
		Revision:      c.revision,
		Query:         c.query,
		State:         c.state,
		FavoritesOnly: c.favoritesOnly,
		HasResult:     c.hasResult,
		ResultQuery:   c.resultQuery,
		Err:           c.lastErr,
		Characters:    []model.Character{},
	}

	if !c.hasResult {
		view.Indicator = pendingIndicator(c.query.Page)
		return view
	}

	view.Result = model.PageResult{
		Characters: append([]model.Character(nil), c.result.Characters...),
		Info:       c.result.Info,
	}
	if c.favoritesOnly {
		view.Characters = c.result.Filter(c.favorites.IsFavorite)
	} else {
		view.Characters = append(view.Characters, c.result.Characters...)
	}
	view.Indicator = Indicate(c.result, c.resultQuery.Status, c.resultQuery.Page)
	return view
}

// Snapshot returns the current view without publishing it
func (c *Coordinator) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Query returns the current query
func (c *Coordinator) Query() model.Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// IsFavorite reports favorite membership; used as the renderer predicate
func (c *Coordinator) IsFavorite(id model.CharacterID) bool {
	return c.favorites.IsFavorite(id)
}

// Wait blocks until all issued fetches have returned
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// Close cancels in-flight fetches, discards their results, and waits for them
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.seq++
	c.cancelFetch = nil
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

// dispatchLogged runs cmd for callers that have no use for the error
func (c *Coordinator) dispatchLogged(cmd Command) {
	if err := c.Dispatch(cmd); err != nil {
		c.log.Warn("command rejected", zap.String("command", fmt.Sprintf("%T", cmd)), zap.Error(err))
	}
}

// Start issues the initial fetch
func (c *Coordinator) Start() { c.dispatchLogged(Reload{}) }

// Reload fetches the current query again
func (c *Coordinator) Reload() { c.dispatchLogged(Reload{}) }

// SetSearch replaces the name filter, resets the page, and fetches
func (c *Coordinator) SetSearch(text string) { c.dispatchLogged(SetSearch{Text: text}) }

// ClearSearch removes the name filter, resets the page, and fetches
func (c *Coordinator) ClearSearch() { c.dispatchLogged(ClearSearch{}) }

// SetStatusFilter replaces the status filter, resets the page, and fetches
func (c *Coordinator) SetStatusFilter(status string) error {
	return c.Dispatch(SetStatusFilter{Status: status})
}

// GoToPage jumps to page and fetches
func (c *Coordinator) GoToPage(page int) error {
	return c.Dispatch(GoToPage{Page: page})
}

// SetQuery replaces name, status and page together and fetches once
func (c *Coordinator) SetQuery(name, status string, page int) error {
	return c.Dispatch(SetQuery{Name: name, Status: status, Page: page})
}

// NextPage advances one page and fetches
func (c *Coordinator) NextPage() { c.dispatchLogged(NextPage{}) }

// PrevPage goes back one page and fetches; no-op on page 1
func (c *Coordinator) PrevPage() { c.dispatchLogged(PrevPage{}) }

// SetFavoritesOnly switches the favorites-only projection without fetching
func (c *Coordinator) SetFavoritesOnly(enabled bool) {
	c.dispatchLogged(SetFavoritesOnly{Enabled: enabled})
}

// ToggleFavorite flips favorite membership and re-renders without fetching
func (c *Coordinator) ToggleFavorite(id model.CharacterID) {
	c.dispatchLogged(ToggleFavorite{ID: id})
}
