package models

// Position selects the storefront slot an item is rendered into.
type Position string

const (
	PositionHero       Position = "hero"
	PositionFeatured   Position = "featured"
	PositionBestseller Position = "bestseller"
)

// Format is the edition badge shown on a card. Values outside the known
// set are displayed verbatim.
type Format string

const (
	FormatPhysical Format = "Physical"
	FormatDigital  Format = "Digital"
	FormatBoth     Format = "Both"
)

// Item is a single book record as it appears in data.json.
type Item struct {
	URL      string   `json:"url"`
	Alt      string   `json:"alt"`
	Position Position `json:"position"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Price    string   `json:"price"`
	Type     Format   `json:"type"`
}

// Catalog is the wire envelope of data.json.
type Catalog struct {
	Images []Item `json:"images"`
}

// Partitions groups items by the slot they render into.
type Partitions struct {
	Hero       *Item  `json:"hero"`
	Featured   []Item `json:"featured"`
	Bestseller []Item `json:"bestseller"`
}

type BooksResponse struct {
	Partitions
	Fallback bool `json:"fallback"`
}

type CartRequest struct {
	Title string `json:"title"`
	Label string `json:"label"`
}

type CartResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
	Label   string `json:"label"`
}
