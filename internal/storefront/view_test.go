package storefront

import (
	"testing"

	"github.com/drstein77/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildView(t *testing.T) {
	hero := models.Item{Position: models.PositionHero, URL: "a", Alt: "A"}
	v := BuildView(models.Partitions{
		Hero: &hero,
		Featured: []models.Item{
			{URL: "b", Alt: "B", Title: "T", Author: "X", Price: "$1", Type: models.FormatPhysical},
		},
	})

	require.Len(t, v.Instructions, 3)

	featured, ok := v.Instructions[0].(ReplaceChildren)
	require.True(t, ok)
	assert.Equal(t, FeaturedMount, featured.MountID)
	assert.Equal(t, []Card{{
		Title:       "T",
		Author:      "X",
		Price:       "$1",
		Format:      "Physical",
		ImageURL:    "b",
		Alt:         "B",
		Placeholder: PlaceholderImage,
	}}, featured.Cards)

	bestsellers, ok := v.Instructions[1].(ReplaceChildren)
	require.True(t, ok)
	assert.Equal(t, BestsellerMount, bestsellers.MountID)
	assert.Empty(t, bestsellers.Cards)

	assert.Equal(t, SetImage{ElementID: HeroImage, Src: "a", Alt: "A"}, v.Instructions[2])
}

func TestBuildViewWithoutHero(t *testing.T) {
	v := BuildView(models.Partitions{})

	require.Len(t, v.Instructions, 2)
	for _, in := range v.Instructions {
		_, isImage := in.(SetImage)
		assert.False(t, isImage)
	}
}
