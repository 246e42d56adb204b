package browse

import (
	"fmt"

	"github.com/ytget/rm-browser/internal/model"
)

// MessageKind selects the summary text shown above the grid
type MessageKind string

const (
	MessageNone      MessageKind = "none"
	MessageNoResults MessageKind = "no_results"
	MessageAlive     MessageKind = "alive"
	MessageDead      MessageKind = "dead"
	MessageUnknown   MessageKind = "unknown"
	MessageAll       MessageKind = "all"
)

// Indicator is the derived summary and pagination control state
type Indicator struct {
	Message     MessageKind
	PrevEnabled bool
	NextEnabled bool
	Page        int
	TotalPages  int
	TotalCount  int
}

// Indicate derives the indicator from a page result and the status filter it
// was fetched with. An empty list wins over any filter label.
func Indicate(result model.PageResult, status model.StatusFilter, page int) Indicator {
	ind := Indicator{
		PrevEnabled: result.Info.HasPrev,
		NextEnabled: result.Info.HasNext,
		Page:        page,
		TotalPages:  result.Info.TotalPages,
		TotalCount:  result.Info.TotalCount,
	}

	switch {
	case result.IsEmpty():
		ind.Message = MessageNoResults
	case status == model.StatusAlive:
		ind.Message = MessageAlive
	case status == model.StatusDead:
		ind.Message = MessageDead
	case status == model.StatusUnknown:
		ind.Message = MessageUnknown
	default:
		ind.Message = MessageAll
	}
	return ind
}

// NoResultsText is the English sentence for an empty result
const NoResultsText = "No results for your search/filter."

// Heading line formats, with and without the total count
const (
	HeadingFormat      = "%s:"
	HeadingCountFormat = "%s (%d):"
)

var englishHeadings = map[MessageKind]string{
	MessageAll:     "All characters",
	MessageAlive:   "Alive characters",
	MessageDead:    "Dead characters",
	MessageUnknown: "Characters with unknown status",
}

// Heading is the English list heading without trailing punctuation.
// It is empty for kinds that do not title a list.
func (k MessageKind) Heading() string { return englishHeadings[k] }

// IsHeading reports whether the kind titles a list of characters
func (k MessageKind) IsHeading() bool {
	_, ok := englishHeadings[k]
	return ok
}

// Summary is the English summary line, e.g. "Dead characters (55):".
// It is empty before anything has loaded.
func (ind Indicator) Summary() string {
	switch {
	case ind.Message == MessageNoResults:
		return NoResultsText
	case !ind.Message.IsHeading():
		return ""
	case ind.TotalCount > 0:
		return fmt.Sprintf(HeadingCountFormat, ind.Message.Heading(), ind.TotalCount)
	default:
		return fmt.Sprintf(HeadingFormat, ind.Message.Heading())
	}
}

// pendingIndicator is shown before the first page arrives
func pendingIndicator(page int) Indicator {
	return Indicator{Message: MessageNone, Page: page}
}
