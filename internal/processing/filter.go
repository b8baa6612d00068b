package processing

import (
	"log/slog"

	"github.com/DeafMist/get-title/internal/models"
)

// Tally counts selected titles per kind.
type Tally struct {
	String  int
	Integer int
	Other   int
}

// Total returns the number of titles counted.
func (t Tally) Total() int {
	return t.String + t.Integer + t.Other
}

func (t *Tally) add(k models.Kind) {
	switch k {
	case models.KindString:
		t.String++
	case models.KindInteger:
		t.Integer++
	default:
		t.Other++
	}
}

// Classify returns the category of a title. It depends only on the value.
func Classify(title models.Title) models.Kind {
	return title.Kind()
}

// Matches reports whether title is selected by keywords. An empty keyword
// list selects everything; otherwise a string title must contain at least
// one keyword and non-string titles are never selected.
func Matches(title models.Title, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	for _, kw := range keywords {
		if title.Contains(kw) {
			return true
		}
	}
	return false
}

// FilterTitles selects and classifies record titles, logging each match and
// a final summary. The returned titles keep input order.
func FilterTitles(log *slog.Logger, records []models.Record, keywords []string) ([]models.Title, Tally) {
	var tally Tally
	titles := make([]models.Title, 0, len(records))

	for _, rec := range records {
		if !Matches(rec.Title, keywords) {
			continue
		}
		kind := Classify(rec.Title)
		tally.add(kind)
		titles = append(titles, rec.Title)
		log.Info("filtered title",
			slog.String("title", rec.Title.String()),
			slog.String("type", kind.String()),
		)
	}

	log.Info("type counts",
		slog.Int("strings", tally.String),
		slog.Int("integers", tally.Integer),
		slog.Int("others", tally.Other),
	)
	return titles, tally
}
