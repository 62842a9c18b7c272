package repositories

import (
	"testing"

	"house-hunter-server/internal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildHouseFilter_Empty(t *testing.T) {
	filter := buildHouseFilter(&models.HouseQuery{})
	assert.Empty(t, filter)
}

func TestBuildHouseFilter_ExactMatches(t *testing.T) {
	filter := buildHouseFilter(&models.HouseQuery{
		Bedrooms:  "3",
		City:      "Dhaka",
		Available: models.StatusAvailable,
	})

	assert.Equal(t, "3", filter["bedrooms"])
	assert.Equal(t, "Dhaka", filter["city"])
	assert.Equal(t, models.StatusAvailable, filter["status"])
	assert.Len(t, filter, 3)
}

func TestBuildHouseFilter_SubstringMatches(t *testing.T) {
	filter := buildHouseFilter(&models.HouseQuery{
		Search: "lake",
		Size:   "1200 sqft",
	})

	name, ok := filter["name"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, "lake", name["$regex"])
	assert.Equal(t, "i", name["$options"])

	size, ok := filter["size"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, `1200 sqft`, size["$regex"])
	assert.Equal(t, "i", size["$options"])
}

func TestBuildHouseFilter_EscapesRegexMeta(t *testing.T) {
	filter := buildHouseFilter(&models.HouseQuery{Search: "a.b*c"})

	name := filter["name"].(bson.M)
	assert.Equal(t, `a\.b\*c`, name["$regex"])
}

func TestPaginationOptions_Defaults(t *testing.T) {
	opts := paginationOptions(&models.HouseQuery{})

	sort, ok := opts.Sort.(bson.D)
	assert.True(t, ok)
	assert.Equal(t, "date", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
	assert.Nil(t, opts.Skip)
	assert.Nil(t, opts.Limit)
}

func TestPaginationOptions_SkipMath(t *testing.T) {
	opts := paginationOptions(&models.HouseQuery{Page: 2, Limit: 10})

	assert.Equal(t, int64(10), *opts.Limit)
	assert.Equal(t, int64(10), *opts.Skip)

	opts = paginationOptions(&models.HouseQuery{Page: 5, Limit: 20})
	assert.Equal(t, int64(80), *opts.Skip)
}

func TestPaginationOptions_FirstPageHasNoSkip(t *testing.T) {
	opts := paginationOptions(&models.HouseQuery{Page: 1, Limit: 10})

	assert.Equal(t, int64(10), *opts.Limit)
	assert.Nil(t, opts.Skip)
}
