package ui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ytget/rm-browser/internal/browse"
	"github.com/ytget/rm-browser/internal/favorites"
	"github.com/ytget/rm-browser/internal/model"
	"github.com/ytget/rm-browser/internal/storage"
)

// blockingFetcher records queries and never answers until its context ends.
// Cancelled fetches are discarded by the coordinator, so no view is ever
// published from a fetch goroutine while a test pokes at widgets.
type blockingFetcher struct {
	mu      sync.Mutex
	queries []model.Query
}

func (f *blockingFetcher) FetchPage(ctx context.Context, q model.Query) (model.PageResult, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()

	<-ctx.Done()
	return model.PageResult{}, ctx.Err()
}

func (f *blockingFetcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func newTestRootUI(t *testing.T) (*RootUI, *browse.Coordinator) {
	ui, coord, _ := newTestRootUIWithFetcher(t)
	return ui, coord
}

func newTestRootUIWithFetcher(t *testing.T) (*RootUI, *browse.Coordinator, *blockingFetcher) {
	t.Helper()
	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	favs := favorites.NewStore(zap.NewNop(), storage.NewMemoryStore(), "")
	fetcher := &blockingFetcher{}
	coord := browse.NewCoordinator(zap.NewNop(), fetcher, favs)
	t.Cleanup(coord.Close)

	ui := NewRootUI(window, app, coord, zap.NewNop())
	t.Cleanup(ui.Close)
	return ui, coord, fetcher
}

func loadedView(revision uint64, status model.StatusFilter, info model.PageInfo, chars ...model.Character) browse.View {
	result := model.PageResult{Characters: chars, Info: info}
	query := model.Query{Page: 1, Status: status}
	return browse.View{
		Revision:    revision,
		Query:       query,
		State:       model.LoadStateLoaded,
		Characters:  chars,
		Result:      result,
		ResultQuery: query,
		HasResult:   true,
		Indicator:   browse.Indicate(result, status, 1),
	}
}

func TestRootUI_InitialState(t *testing.T) {
	ui, _ := newTestRootUI(t)

	assert.True(t, ui.prevBtn.Disabled())
	assert.True(t, ui.nextBtn.Disabled())
	assert.Empty(t, ui.grid.Objects)
	assert.Equal(t, DashPlaceholder, ui.pageLabel.Text)
	assert.Len(t, ui.chips, 4)
	assert.Equal(t, widget.HighImportance, ui.chips[0].button.Importance)
}

func TestRootUI_ApplyView(t *testing.T) {
	ui, _ := newTestRootUI(t)

	view := loadedView(1, model.StatusDead, model.PageInfo{HasNext: true, TotalPages: 3, TotalCount: 55}, sampleCharacters()...)
	ui.applyView(view)

	assert.Len(t, ui.grid.Objects, 3)
	assert.True(t, ui.prevBtn.Disabled())
	assert.False(t, ui.nextBtn.Disabled())
	assert.Equal(t, "Page 1 of 3", ui.pageLabel.Text)
	assert.Equal(t, "Dead characters (55):", ui.resultsLabel.Text)
	assert.False(t, ui.notificationContainer.Visible())

	for _, chip := range ui.chips {
		want := widget.MediumImportance
		if chip.filter == model.StatusDead {
			want = widget.HighImportance
		}
		assert.Equal(t, want, chip.button.Importance, "chip %s", chip.filter)
	}
}

func TestRootUI_IgnoresOlderRevisions(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.applyView(loadedView(5, model.StatusAny, model.PageInfo{}, sampleCharacters()[:1]...))
	ui.applyView(loadedView(4, model.StatusAny, model.PageInfo{}, sampleCharacters()...))

	assert.Len(t, ui.grid.Objects, 1)
}

func TestRootUI_NoResultsMessage(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.applyView(loadedView(1, model.StatusDead, model.PageInfo{}))

	assert.Equal(t, "No results for your search/filter.", ui.resultsLabel.Text)
	assert.True(t, ui.prevBtn.Disabled())
	assert.True(t, ui.nextBtn.Disabled())
}

func TestRootUI_FailureKeepsGridAndShowsBanner(t *testing.T) {
	ui, _ := newTestRootUI(t)

	view := loadedView(1, model.StatusAny, model.PageInfo{HasNext: true}, sampleCharacters()...)
	ui.applyView(view)

	view.Revision = 2
	view.State = model.LoadStateFailed
	view.Err = errors.New("service unavailable")
	ui.applyView(view)

	assert.Len(t, ui.grid.Objects, 3)
	assert.True(t, ui.notificationContainer.Visible())
	assert.Contains(t, ui.notificationLabel.Text, "service unavailable")
}

func TestRootUI_FavoritesCheckSyncDoesNotDispatch(t *testing.T) {
	ui, coord := newTestRootUI(t)

	view := loadedView(1, model.StatusAny, model.PageInfo{}, sampleCharacters()...)
	view.FavoritesOnly = true
	ui.applyView(view)

	assert.True(t, ui.favoritesCheck.Checked)
	assert.False(t, coord.Snapshot().FavoritesOnly)
}

func TestRootUI_StatusChipDispatches(t *testing.T) {
	ui, coord, fetcher := newTestRootUIWithFetcher(t)

	for _, chip := range ui.chips {
		if chip.filter == model.StatusAlive {
			test.Tap(chip.button)
		}
	}
	assert.Equal(t, model.StatusAlive, coord.Query().Status)
	assert.Equal(t, 1, coord.Query().Page)
	assert.Equal(t, model.LoadStateLoading, coord.Snapshot().State)
	assert.Eventually(t, func() bool { return fetcher.calls() == 1 }, time.Second, 5*time.Millisecond)
}

func TestRootUI_FavoritesOnlyWithEmptyPage(t *testing.T) {
	ui, _ := newTestRootUI(t)

	view := loadedView(1, model.StatusAlive, model.PageInfo{TotalCount: 20}, sampleCharacters()...)
	view.FavoritesOnly = true
	view.Characters = nil
	ui.applyView(view)

	assert.Equal(t, "No favorites on this page.", ui.resultsLabel.Text)
}

func TestRootUI_ClearSearch(t *testing.T) {
	ui, coord, fetcher := newTestRootUIWithFetcher(t)

	ui.onSearchSubmitted("rick")
	require.Equal(t, "rick", coord.Query().Name)

	test.Type(ui.searchEntry, "morty")
	require.True(t, ui.debouncer.Pending())

	test.Tap(ui.clearBtn)
	assert.Empty(t, ui.searchEntry.Text)
	assert.False(t, ui.debouncer.Pending())
	assert.Empty(t, coord.Query().Name)
	assert.Eventually(t, func() bool { return fetcher.calls() == 2 }, time.Second, 5*time.Millisecond)
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.onLanguageChange("es")

	assert.Equal(t, "es", ui.settings.GetLanguage())
	assert.Equal(t, "Buscar por nombre...", ui.searchEntry.PlaceHolder)
	assert.Equal(t, "Todos", ui.chips[0].button.Text)
}
