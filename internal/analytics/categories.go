package analytics

import (
	"sort"
	"strings"
)

// CategoryOther is the fallback when no rule matches a description.
const CategoryOther = "Other"

// categoryRule maps a set of description keywords to one spending category.
type categoryRule struct {
	category string
	keywords []string
}

// categoryRules is evaluated in order and the first rule with any matching
// keyword wins, so a description hitting several rules gets the earliest
// one. Keywords are matched as substrings of the upper-cased description.
var categoryRules = []categoryRule{
	{"Electronics", []string{"TV", "SONY", "LG", "SAMSUNG", "PS5", "XBOX", "LAPTOP", "IPAD", "MACBOOK"}},
	{"Appliances", []string{"MWO", "MICROWAVE", "DISHWASHER", "WASHER", "DRYER", "FRIDGE"}},
	{"Fresh Meat & Seafood", []string{"CHICKEN", "BEEF", "PORK", "SALMON", "STEAK", "GRND", "THIGHS", "BREAST"}},
	{"Produce", []string{"ORGANIC", "BANANA", "APPLE", "BERRY", "SALAD", "LETTUCE"}},
	{"Bakery", []string{"BREAD", "BAGEL", "MUFFIN", "CAKE", "PIE", "CROISSANT"}},
	{"Dairy & Eggs", []string{"MILK", "CHEESE", "YOGURT", "BUTTER", "CREAM", "ROMANO"}},
	{"Beverages", []string{"WATER", "JUICE", "SODA", "COFFEE", "TEA", "POPPI", "SPARKLING"}},
	{"Snacks", []string{"CHIPS", "COOKIE", "CRACKER", "NUTS", "CANDY", "POPCORN", "THAT'S IT"}},
	{"Health & Supplements", []string{"VITAMIN", "PROTEIN", "SUPPLEMENT", "VITAL"}},
	{"Household Essentials", []string{"BATH", "TOWEL", "TISSUE", "PAPER", "DETERGENT", "CLEAN"}},
	{"Frozen Foods", []string{"FROZEN", "ICE CREAM", "PIZZA"}},
	{"Pantry & Dry Goods", []string{"RICE", "PASTA", "SAUCE", "OIL", "FLOUR", "BRKFST"}},
}

// Categorize assigns a line item to exactly one spending category based on
// its description. The item number is accepted for future numeric-range
// rules (warehouse item numbers cluster by department) but is not consulted
// by the current rule table.
func Categorize(description, itemNumber string) string {
	desc := strings.ToUpper(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

// CategorySpend is the per-category rollup of line-item amounts.
type CategorySpend struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategorySpend classifies every line item across all transactions and sums
// amounts per category, sorted by amount descending. Percentage is relative
// to the amount total over all categories; when that total is zero the
// percentages are not finite (NaN or ±Inf), which callers are expected to
// tolerate.
func (e *Engine) CategorySpend() []CategorySpend {
	type bucket struct {
		amount float64
		count  int
	}
	byCategory := make(map[string]*bucket)
	var order []string
	var total float64

	for i := range e.transactions {
		for _, item := range e.transactions[i].Items {
			total += item.Amount
			category := Categorize(item.Description, item.ItemNumber)
			b, ok := byCategory[category]
			if !ok {
				b = &bucket{}
				byCategory[category] = b
				order = append(order, category)
			}
			b.amount += item.Amount
			b.count++
		}
	}

	out := make([]CategorySpend, 0, len(order))
	for _, category := range order {
		b := byCategory[category]
		out = append(out, CategorySpend{
			Category:   category,
			Amount:     b.amount,
			Count:      b.count,
			Percentage: b.amount / total * 100,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	return out
}
