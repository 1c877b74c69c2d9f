package storefront

import "github.com/drstein77/storefront/internal/models"

// Mount point ids of the page shell.
const (
	FeaturedMount   = "featured-books"
	BestsellerMount = "bestsellers"
	HeroImage       = "hero-image"
)

// PlaceholderImage replaces a card image that fails to load.
const PlaceholderImage = "https://via.placeholder.com/400x550/1a1a1a/ffffff?text=Image+Not+Available"

// Card is the view model of one book card.
type Card struct {
	Title       string
	Author      string
	Price       string
	Format      string
	ImageURL    string
	Alt         string
	Placeholder string
}

// Instruction is a single mutation of the page.
type Instruction interface {
	instruction()
}

// ReplaceChildren clears a mount point and fills it with cards in order.
type ReplaceChildren struct {
	MountID string
	Cards   []Card
}

// SetImage points an image element at a new source.
type SetImage struct {
	ElementID string
	Src       string
	Alt       string
}

func (ReplaceChildren) instruction() {}
func (SetImage) instruction()        {}

// View is the ordered list of instructions rendering a storefront.
type View struct {
	Instructions []Instruction
}

// BuildView converts partitions into render instructions. Both list
// mounts are always replaced so stale content is cleared even when a
// partition is empty.
func BuildView(p models.Partitions) View {
	v := View{
		Instructions: []Instruction{
			ReplaceChildren{MountID: FeaturedMount, Cards: cards(p.Featured)},
			ReplaceChildren{MountID: BestsellerMount, Cards: cards(p.Bestseller)},
		},
	}

	if p.Hero != nil {
		v.Instructions = append(v.Instructions, SetImage{
			ElementID: HeroImage,
			Src:       p.Hero.URL,
			Alt:       p.Hero.Alt,
		})
	}

	return v
}

func cards(items []models.Item) []Card {
	out := make([]Card, 0, len(items))
	for _, item := range items {
		out = append(out, Card{
			Title:       item.Title,
			Author:      item.Author,
			Price:       item.Price,
			Format:      string(item.Type),
			ImageURL:    item.URL,
			Alt:         item.Alt,
			Placeholder: PlaceholderImage,
		})
	}
	return out
}
