package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	fynestorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/rm-browser/internal/model"
)

// RenderCards builds one card per character. It holds no state: the favorite
// glyph comes from isFavorite and taps are reported through onToggle.
func RenderCards(characters []model.Character, isFavorite func(model.CharacterID) bool, onToggle func(model.CharacterID)) []fyne.CanvasObject {
	cards := make([]fyne.CanvasObject, 0, len(characters))
	for _, c := range characters {
		favorite := isFavorite != nil && isFavorite(c.ID)
		cards = append(cards, NewCharacterCard(c, favorite, onToggle))
	}
	return cards
}

// CharacterCard shows a character portrait, name, status and species badges,
// and a favorite toggle
type CharacterCard struct {
	widget.BaseWidget

	character model.Character
	favorite  bool
	onToggle  func(model.CharacterID)

	// UI components
	background   *canvas.Rectangle
	image        *canvas.Image
	nameLabel    *widget.Label
	statusText   *canvas.Text
	speciesLabel *widget.Label
	favoriteBtn  *widget.Button
}

// NewCharacterCard creates a card for c
func NewCharacterCard(c model.Character, favorite bool, onToggle func(model.CharacterID)) *CharacterCard {
	card := &CharacterCard{
		character: c,
		favorite:  favorite,
		onToggle:  onToggle,
	}
	card.ExtendBaseWidget(card)
	card.createUI()
	return card
}

// Character returns the character shown by the card
func (cc *CharacterCard) Character() model.Character {
	return cc.character
}

// IsFavorite reports the state the favorite glyph currently shows
func (cc *CharacterCard) IsFavorite() bool {
	return cc.favorite
}

// FavoriteButton exposes the toggle for tests and keyboard focus
func (cc *CharacterCard) FavoriteButton() *widget.Button {
	return cc.favoriteBtn
}

func (cc *CharacterCard) createUI() {
	cc.background = canvas.NewRectangle(theme.Color(ColorNameCard))
	cc.background.CornerRadius = theme.Size(theme.SizeNameInputRadius) * 2

	cc.image = newPortrait(cc.character.Image)

	cc.nameLabel = widget.NewLabel(orDash(cc.character.Name))
	cc.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	cc.nameLabel.Truncation = fyne.TextTruncateEllipsis
	cc.nameLabel.Alignment = fyne.TextAlignCenter

	cc.statusText = canvas.NewText(orDash(cc.character.Status), theme.Color(badgeColorName(cc.character.Badge())))
	cc.statusText.TextStyle = fyne.TextStyle{Bold: true}

	cc.speciesLabel = widget.NewLabel(orDash(cc.character.Species))
	cc.speciesLabel.Truncation = fyne.TextTruncateEllipsis

	cc.favoriteBtn = widget.NewButton(favoriteGlyph(cc.favorite), cc.onFavoriteTapped)
	cc.favoriteBtn.Importance = widget.LowImportance
}

func (cc *CharacterCard) onFavoriteTapped() {
	cc.favorite = !cc.favorite
	cc.favoriteBtn.SetText(favoriteGlyph(cc.favorite))
	if cc.onToggle != nil {
		cc.onToggle(cc.character.ID)
	}
}

// CreateRenderer creates the widget renderer
func (cc *CharacterCard) CreateRenderer() fyne.WidgetRenderer {
	badges := container.NewHBox(
		cc.statusText,
		widget.NewLabel(strings.TrimSpace(MiddleDotSeparator)),
		cc.speciesLabel,
	)
	header := container.NewBorder(nil, nil, nil, cc.favoriteBtn, cc.nameLabel)
	body := container.NewVBox(cc.image, header, container.NewCenter(badges))

	return &characterCardRenderer{
		card:    cc,
		content: container.NewStack(cc.background, container.NewPadded(body)),
	}
}

type characterCardRenderer struct {
	card    *CharacterCard
	content *fyne.Container
}

func (r *characterCardRenderer) Layout(size fyne.Size) {
	r.content.Resize(size)
}

func (r *characterCardRenderer) MinSize() fyne.Size {
	minSize := r.content.MinSize()
	return fyne.NewSize(fyne.Max(minSize.Width, CardWidth), fyne.Max(minSize.Height, CardHeight))
}

func (r *characterCardRenderer) Refresh() {
	r.card.background.FillColor = theme.Color(ColorNameCard)
	r.card.statusText.Color = theme.Color(badgeColorName(r.card.character.Badge()))
	r.card.favoriteBtn.SetText(favoriteGlyph(r.card.favorite))
	r.content.Refresh()
}

func (r *characterCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.content}
}

func (r *characterCardRenderer) Destroy() {}

// newPortrait loads the image from its URI, falling back to a placeholder icon
func newPortrait(raw string) *canvas.Image {
	var img *canvas.Image
	if uri, err := fynestorage.ParseURI(strings.TrimSpace(raw)); err == nil {
		img = canvas.NewImageFromURI(uri)
	} else {
		img = canvas.NewImageFromResource(theme.AccountIcon())
	}
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(CardImageSize, CardImageSize))
	return img
}

func favoriteGlyph(favorite bool) string {
	if favorite {
		return IconFavorite
	}
	return IconNotFavorite
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return DashPlaceholder
	}
	return s
}
