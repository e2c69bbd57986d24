// Package model holds the domain types shared by the repository,
// service and handler layers.
package model

// Item is one row of the stuff table.
//
// ID is assigned by the store on insert and never changes. Description is
// nil when the column is NULL.
type Item struct {
	ID          int64   `json:"id"`
	Item        string  `json:"item"`
	Quantity    int     `json:"quantity"`
	Description *string `json:"description"`
}

// DescriptionText returns the description, or "" when it is NULL.
func (i Item) DescriptionText() string {
	if i.Description == nil {
		return ""
	}

	return *i.Description
}
