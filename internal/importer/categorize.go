package importer

import (
	"strings"

	"github.com/cleared-dev/expense-tracker/internal/model"
)

var keywords = []struct {
	word     string
	category model.Category
}{
	{"restaurant", model.CategoryFood},
	{"grocery", model.CategoryFood},
	{"cafe", model.CategoryFood},
	{"coffee", model.CategoryFood},
	{"market", model.CategoryFood},
	{"airline", model.CategoryTravel},
	{"airlines", model.CategoryTravel},
	{"hotel", model.CategoryTravel},
	{"uber", model.CategoryTravel},
	{"lyft", model.CategoryTravel},
	{"rail", model.CategoryTravel},
	{"electric", model.CategoryBills},
	{"utility", model.CategoryBills},
	{"insurance", model.CategoryBills},
	{"internet", model.CategoryBills},
	{"phone", model.CategoryBills},
	{"cinema", model.CategoryEntertainment},
	{"netflix", model.CategoryEntertainment},
	{"spotify", model.CategoryEntertainment},
	{"theater", model.CategoryEntertainment},
}

// Categorize guesses a category from a bank description by whole-word
// keyword match, falling back to CategoryOther.
func Categorize(description string) model.Category {
	words := strings.FieldsFunc(strings.ToLower(description), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	for _, w := range words {
		for _, k := range keywords {
			if w == k.word {
				return k.category
			}
		}
	}
	return model.CategoryOther
}
