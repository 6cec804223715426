package domain

// Item is an immutable catalog entry. IDs are assigned in catalog
// registration order and are never reused; the coin item's price of 1
// defines the unit of currency.
type Item struct {
	ID          int    `json:"item_id" db:"item_id"`
	Name        string `json:"name" db:"item_name"`
	Description string `json:"description" db:"item_description"`
	Price       int    `json:"price" db:"price"`
	ForSale     bool   `json:"for_sale" db:"for_sale"`
}
