package ui

import (
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/rm-browser/internal/browse"
	"github.com/ytget/rm-browser/internal/config"
	"github.com/ytget/rm-browser/internal/model"
)

// statusChip is one exclusive status filter button
type statusChip struct {
	filter model.StatusFilter
	button *widget.Button
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	log          *zap.Logger
	coord        *browse.Coordinator
	settings     *config.Settings
	localization *Localization
	debouncer    *Debouncer

	// Controls
	searchEntry    *widget.Entry
	clearBtn       *widget.Button
	chips          []statusChip
	favoritesCheck *widget.Check
	prevBtn        *widget.Button
	nextBtn        *widget.Button
	pageLabel      *widget.Label
	resultsLabel   *widget.Label
	grid           *fyne.Container

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	// Render state; only touched on the Fyne thread
	rendered browse.View
	syncing  bool
}

// NewRootUI creates and initializes the main UI and subscribes it to coord
func NewRootUI(window fyne.Window, app fyne.App, coord *browse.Coordinator, log *zap.Logger) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		log:          log.Named("ui"),
		coord:        coord,
		settings:     settings,
		localization: localization,
		debouncer:    NewDebouncer(settings.GetSearchDebounce()),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	coord.SetUpdateCallback(ui.onViewUpdate)

	ui.log.Debug("root UI initialized",
		zap.String("language", localization.GetCurrentLanguage()),
		zap.Duration("search_debounce", ui.debouncer.Delay()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()
	loc := ui.localization

	// Search row
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(loc.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnChanged = ui.onSearchChanged
	ui.searchEntry.OnSubmitted = ui.onSearchSubmitted

	ui.clearBtn = widget.NewButtonWithIcon(loc.GetText(KeyClearSearch), theme.ContentClearIcon(), ui.onClearSearch)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	var leading fyne.CanvasObject = settingsBtn
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		leading = container.NewHBox(logoImage, settingsBtn)
	}
	searchRow := container.NewBorder(nil, nil, leading, ui.clearBtn, ui.searchEntry)

	// Filter row: exclusive status chips plus the favorites-only view toggle
	chipRow := container.NewHBox()
	for _, filter := range model.StatusFilterOptions() {
		filter := filter
		button := widget.NewButton(loc.StatusFilterText(filter), func() { ui.onStatusChip(filter) })
		ui.chips = append(ui.chips, statusChip{filter: filter, button: button})
		chipRow.Add(button)
	}
	ui.favoritesCheck = widget.NewCheck(loc.GetText(KeyFavoritesOnly), ui.onFavoritesOnlyChanged)
	filterRow := container.NewBorder(nil, nil, chipRow, ui.favoritesCheck)

	// Notification panel under the controls (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationSpinner, nil, ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.resultsLabel = widget.NewLabel("")
	ui.resultsLabel.TextStyle = fyne.TextStyle{Bold: true}

	top := container.NewVBox(searchRow, filterRow, ui.notificationContainer, ui.resultsLabel)

	// Pagination footer
	ui.prevBtn = widget.NewButton(IconPrev+" "+loc.GetText(KeyPrevPage), ui.coord.PrevPage)
	ui.nextBtn = widget.NewButton(loc.GetText(KeyNextPage)+" "+IconNext, ui.coord.NextPage)
	ui.prevBtn.Disable()
	ui.nextBtn.Disable()
	ui.pageLabel = widget.NewLabel("")
	ui.pageLabel.Alignment = fyne.TextAlignCenter
	footer := container.NewHBox(layout.NewSpacer(), ui.prevBtn, ui.pageLabel, ui.nextBtn, layout.NewSpacer())

	ui.grid = container.NewGridWrap(fyne.NewSize(CardWidth, CardHeight))

	content := container.NewBorder(
		container.NewPadded(top),    // top
		container.NewPadded(footer), // bottom
		nil,                         // left
		nil,                         // right
		container.NewVScroll(ui.grid),
	)
	ui.window.SetContent(content)

	ui.applyView(ui.coord.Snapshot())
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	loc := ui.localization

	settingsItem := fyne.NewMenuItem(loc.GetText(KeySettings), ui.onShowSettings)
	reloadItem := fyne.NewMenuItem(loc.GetText(KeyReload), ui.coord.Reload)

	// Language submenu, in a stable order
	languageMenu := fyne.NewMenu(IconLanguage + " " + loc.GetText(KeyLanguage))
	available := loc.GetAvailableLanguages()
	codes := make([]string, 0, len(available))
	for code := range available {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = loc.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(loc.GetText(KeyFile), settingsItem),
		fyne.NewMenu(loc.GetText(KeyView), reloadItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	loc := ui.localization

	ui.window.SetTitle(loc.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(loc.GetText(KeySearchPlaceholder))
	ui.clearBtn.SetText(loc.GetText(KeyClearSearch))
	for _, chip := range ui.chips {
		chip.button.SetText(loc.StatusFilterText(chip.filter))
	}
	ui.favoritesCheck.Text = loc.GetText(KeyFavoritesOnly)
	ui.favoritesCheck.Refresh()
	ui.prevBtn.SetText(IconPrev + " " + loc.GetText(KeyPrevPage))
	ui.nextBtn.SetText(loc.GetText(KeyNextPage) + " " + IconNext)

	ui.applyLabels(ui.rendered)
	ui.applyNotification(ui.rendered)
}

// onSearchChanged debounces keystrokes into a single search
func (ui *RootUI) onSearchChanged(text string) {
	ui.debouncer.Trigger(func() {
		ui.coord.SetSearch(text)
	})
}

// onSearchSubmitted searches immediately on Enter
func (ui *RootUI) onSearchSubmitted(text string) {
	ui.debouncer.Cancel()
	ui.coord.SetSearch(text)
}

// onClearSearch empties the entry without re-triggering a debounced search
func (ui *RootUI) onClearSearch() {
	ui.debouncer.Cancel()

	onChanged := ui.searchEntry.OnChanged
	ui.searchEntry.OnChanged = nil
	ui.searchEntry.SetText("")
	ui.searchEntry.OnChanged = onChanged

	ui.coord.ClearSearch()
}

// onStatusChip handles a status chip tap
func (ui *RootUI) onStatusChip(filter model.StatusFilter) {
	if err := ui.coord.SetStatusFilter(filter.String()); err != nil {
		ui.log.Warn("status filter rejected", zap.String("status", filter.String()), zap.Error(err))
	}
}

// onFavoritesOnlyChanged handles the favorites-only toggle
func (ui *RootUI) onFavoritesOnlyChanged(checked bool) {
	if ui.syncing {
		return
	}
	ui.coord.SetFavoritesOnly(checked)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved settings to the running UI
func (ui *RootUI) onSettingsSaved() {
	ui.debouncer.SetDelay(ui.settings.GetSearchDebounce())

	lang := ui.settings.GetLanguage()
	if lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}

	ui.showNotification(ui.localization.GetText(KeySettingsSaved), false)
	time.AfterFunc(NotificationAutoHide, func() {
		fyne.Do(func() { ui.applyNotification(ui.rendered) })
	})
	ui.log.Info("settings saved",
		zap.String("language", lang),
		zap.Duration("search_debounce", ui.debouncer.Delay()))
}

// onViewUpdate receives views from the coordinator, possibly off the Fyne thread
func (ui *RootUI) onViewUpdate(view browse.View) {
	fyne.Do(func() {
		ui.applyView(view)
	})
}

// applyView renders view unless a newer one has already been rendered
func (ui *RootUI) applyView(view browse.View) {
	if view.Revision != 0 && view.Revision <= ui.rendered.Revision {
		return
	}
	ui.rendered = view

	ui.syncing = true
	for _, chip := range ui.chips {
		if chip.filter == view.Query.Status {
			chip.button.Importance = widget.HighImportance
		} else {
			chip.button.Importance = widget.MediumImportance
		}
		chip.button.Refresh()
	}
	ui.favoritesCheck.SetChecked(view.FavoritesOnly)
	ui.syncing = false

	if view.Indicator.PrevEnabled {
		ui.prevBtn.Enable()
	} else {
		ui.prevBtn.Disable()
	}
	if view.Indicator.NextEnabled {
		ui.nextBtn.Enable()
	} else {
		ui.nextBtn.Disable()
	}

	ui.applyLabels(view)
	ui.applyNotification(view)

	ui.grid.Objects = RenderCards(view.Characters, ui.coord.IsFavorite, ui.coord.ToggleFavorite)
	ui.grid.Refresh()
}

// applyLabels sets the results and page labels from the indicator
func (ui *RootUI) applyLabels(view browse.View) {
	loc := ui.localization

	message := loc.SummaryText(view.Indicator)
	if view.FavoritesOnly && len(view.Characters) == 0 && view.Indicator.Message.IsHeading() {
		message = loc.GetText(KeyNoFavoritesHere)
	}
	ui.resultsLabel.SetText(message)

	if view.HasResult {
		ui.pageLabel.SetText(loc.PageText(view.Indicator))
	} else {
		ui.pageLabel.SetText(DashPlaceholder)
	}
}

// applyNotification shows loading and failure states without clearing the grid
func (ui *RootUI) applyNotification(view browse.View) {
	switch view.State {
	case model.LoadStateLoading:
		ui.setNotification(ui.localization.GetText(KeyLoading), true)
	case model.LoadStateFailed:
		text := ui.localization.GetText(KeyLoadFailed)
		if view.Err != nil {
			text += ": " + view.Err.Error()
		}
		ui.setNotification(text, false)
	default:
		ui.hideNotification()
	}
}

// showNotification displays a message in the notification panel from any goroutine
func (ui *RootUI) showNotification(message string, spinning bool) {
	fyne.Do(func() {
		ui.setNotification(message, spinning)
	})
}

// setNotification updates the notification panel; Fyne thread only
func (ui *RootUI) setNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel; Fyne thread only
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// Close stops the pending debounced search
func (ui *RootUI) Close() {
	ui.debouncer.Cancel()
}
