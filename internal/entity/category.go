package entity

import "github.com/hisabkitab/bills-tracker/constants"

// Category represents a spending category for data transfer between layers.
type Category struct {
	ID       int64                  `json:"id"`
	Name     string                 `json:"name"`
	Type     constants.CategoryType `json:"type"`
	Keywords string                 `json:"keywords"`
	Color    string                 `json:"color"`
}

// KeywordsList returns the category's keywords as trimmed lower-case terms.
func (c *Category) KeywordsList() []string {
	return constants.KeywordsList(c.Keywords)
}
