package firestore

import (
	"testing"

	"bitefeed/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cuisineRestaurant(id, primary string, cuisines ...string) *entity.Restaurant {
	return &entity.Restaurant{
		ID:             id,
		Name:           "Restaurant " + id,
		PrimaryCuisine: primary,
		Cuisines:       append([]string{primary}, cuisines...),
		IsActive:       true,
		Vibes:          []entity.Vibe{entity.VibeDining},
	}
}

func restaurantIDs(restaurants []*entity.Restaurant) []string {
	ids := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		ids = append(ids, r.ID)
	}

	return ids
}

func TestUnionByCuisine_DedupesAcrossBothQueries(t *testing.T) {
	shared := cuisineRestaurant("1", "Mediterranean")
	primary := []*entity.Restaurant{shared, cuisineRestaurant("2", "Mediterranean")}

	// The full scan returns the whole active catalog, including both
	// primary matches and a restaurant that only lists the cuisine in its
	// cuisines array.
	all := []*entity.Restaurant{
		shared,
		cuisineRestaurant("2", "Mediterranean"),
		cuisineRestaurant("3", "French", "Mediterranean"),
		cuisineRestaurant("4", "Japanese", "Korean"),
	}

	merged := unionByCuisine(primary, all, "Mediterranean")

	assert.Equal(t, []string{"1", "2", "3"}, restaurantIDs(merged))
}

func TestUnionByCuisine_PrimaryOrderPreserved(t *testing.T) {
	primary := []*entity.Restaurant{
		cuisineRestaurant("9", "Indian"),
		cuisineRestaurant("2", "Indian"),
		cuisineRestaurant("5", "Indian"),
	}
	all := []*entity.Restaurant{
		cuisineRestaurant("5", "Indian"),
		cuisineRestaurant("7", "Thai", "Indian"),
		cuisineRestaurant("2", "Indian"),
	}

	merged := unionByCuisine(primary, all, "Indian")

	assert.Equal(t, []string{"9", "2", "5", "7"}, restaurantIDs(merged))
}

func TestUnionByCuisine_ArrayOnlyMatches(t *testing.T) {
	all := []*entity.Restaurant{
		cuisineRestaurant("1", "American", "Mediterranean"),
		cuisineRestaurant("2", "Japanese"),
	}

	merged := unionByCuisine(nil, all, "Mediterranean")

	require.Len(t, merged, 1)
	assert.Equal(t, "1", merged[0].ID)
}
