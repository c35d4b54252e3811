package constants

import "strings"

// CategoryType is the coarse grouping a category belongs to.
type CategoryType string

const (
	Food          CategoryType = "FOOD"
	Transport     CategoryType = "TRANSPORT"
	Utilities     CategoryType = "UTILITIES"
	Entertainment CategoryType = "ENTERTAINMENT"
	Healthcare    CategoryType = "HEALTHCARE"
	Shopping      CategoryType = "SHOPPING"
	Education     CategoryType = "EDUCATION"
	Business      CategoryType = "BUSINESS"
	Travel        CategoryType = "TRAVEL"
	OtherType     CategoryType = "OTHER"
)

// DefaultCategory is one row of the seed taxonomy.
type DefaultCategory struct {
	Name     string
	Type     CategoryType
	Keywords string // comma-separated, lower-case
	Color    string // hex
}

// DefaultCategories is the taxonomy installed by setup-categories.
// The keyword lists drive the keyword-fallback categorization tier.
var DefaultCategories = []DefaultCategory{
	{"Food & Dining", Food, "restaurant,cafe,food,dining,lunch,dinner,breakfast,mcdonalds,starbucks,subway", "#FF6B6B"},
	{"Transportation", Transport, "gas,fuel,taxi,uber,lyft,bus,train,parking,shell,exxon,chevron", "#4ECDC4"},
	{"Shopping", Shopping, "store,shop,market,walmart,target,amazon,retail,costco", "#45B7D1"},
	{"Utilities", Utilities, "electric,gas,water,internet,phone,utility,bill,payment", "#96CEB4"},
	{"Healthcare", Healthcare, "hospital,clinic,doctor,pharmacy,medical,health,cvs,walgreens", "#FFEAA7"},
	{"Entertainment", Entertainment, "movie,netflix,spotify,game,entertainment,theater", "#DDA0DD"},
	{"Business", Business, "office,supplies,fedex,ups,business,meeting,work", "#98D8C8"},
	{"Travel", Travel, "hotel,airline,airbnb,flight,travel,vacation,trip", "#F7DC6F"},
	{"Education", Education, "school,university,course,book,education,learning", "#BB8FCE"},
	{"Other", OtherType, "", "#BDC3C7"},
}

// KeywordsList splits a stored keyword string into trimmed lower-case terms.
func KeywordsList(keywords string) []string {
	parts := strings.Split(keywords, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
