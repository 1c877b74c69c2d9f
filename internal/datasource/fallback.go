package datasource

import "github.com/drstein77/storefront/internal/models"

var fallbackItems = [...]models.Item{
	{
		URL:      "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400",
		Alt:      "Modern Book Cover",
		Position: models.PositionHero,
		Title:    "The Midnight Library",
		Author:   "Matt Haig",
		Price:    "$18.99",
		Type:     models.FormatPhysical,
	},
	{
		URL:      "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?w=400",
		Alt:      "Classic Literature",
		Position: models.PositionFeatured,
		Title:    "Atomic Habits",
		Author:   "James Clear",
		Price:    "$14.99",
		Type:     models.FormatDigital,
	},
	{
		URL:      "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400",
		Alt:      "Fiction Book",
		Position: models.PositionFeatured,
		Title:    "Where the Crawdads Sing",
		Author:   "Delia Owens",
		Price:    "$16.99",
		Type:     models.FormatPhysical,
	},
	{
		URL:      "https://images.unsplash.com/photo-1519682337058-a94d519337bc?w=400",
		Alt:      "Business Book",
		Position: models.PositionFeatured,
		Title:    "The 48 Laws of Power",
		Author:   "Robert Greene",
		Price:    "$19.99",
		Type:     models.FormatBoth,
	},
	{
		URL:      "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400",
		Alt:      "Self Help Book",
		Position: models.PositionBestseller,
		Title:    "Thinking, Fast and Slow",
		Author:   "Daniel Kahneman",
		Price:    "$17.99",
		Type:     models.FormatDigital,
	},
	{
		URL:      "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=400",
		Alt:      "Adventure Novel",
		Position: models.PositionBestseller,
		Title:    "Project Hail Mary",
		Author:   "Andy Weir",
		Price:    "$15.99",
		Type:     models.FormatPhysical,
	},
	{
		URL:      "https://images.unsplash.com/photo-1524995997946-a1c2e315a42f?w=400",
		Alt:      "Mystery Thriller",
		Position: models.PositionBestseller,
		Title:    "The Silent Patient",
		Author:   "Alex Michaelides",
		Price:    "$13.99",
		Type:     models.FormatBoth,
	},
	{
		URL:      "https://images.unsplash.com/photo-1532012197267-da84d127e765?w=400",
		Alt:      "Romance Novel",
		Position: models.PositionBestseller,
		Title:    "It Ends with Us",
		Author:   "Colleen Hoover",
		Price:    "$12.99",
		Type:     models.FormatDigital,
	},
}

// Fallback returns a fresh copy of the built-in catalog used when the
// configured source cannot be loaded.
func Fallback() []models.Item {
	items := make([]models.Item, len(fallbackItems))
	copy(items, fallbackItems[:])
	return items
}
