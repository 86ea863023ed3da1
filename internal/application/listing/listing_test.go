package listing_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waterbiz/waterbiz-api/internal/application/listing"
)

type row struct {
	name    string
	address string
}

func fields(r row) []string { return []string{r.name, r.address} }

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	rows := []row{
		{name: "Ramesh Kumar", address: "MG Road"},
		{name: "Suresh", address: "Gandhi Nagar"},
		{name: "Anita", address: "mg road extension"},
	}

	got := listing.Filter(rows, "MG ROAD", fields)

	require.Len(t, got, 2)
	assert.Equal(t, "Ramesh Kumar", got[0].name)
	assert.Equal(t, "Anita", got[1].name)
}

func TestFilter_MatchesAnyField(t *testing.T) {
	rows := []row{
		{name: "Ramesh", address: "Tank Bund"},
		{name: "Tanker Supply Co", address: "Market St"},
	}

	got := listing.Filter(rows, "tank", fields)

	assert.Len(t, got, 2)
}

func TestFilter_EmptyQueryKeepsEverything(t *testing.T) {
	rows := []row{{name: "a"}, {name: "b"}}

	assert.Equal(t, rows, listing.Filter(rows, "", fields))
}

func TestFilter_NoMatches(t *testing.T) {
	rows := []row{{name: "Ramesh"}}

	assert.Empty(t, listing.Filter(rows, "zzz", fields))
}

func TestPage_PartitionsWithoutDropsOrDuplicates(t *testing.T) {
	// 67 rows: pages of 25, 25 and a remainder of 17.
	var rows []row
	for i := 0; i < 67; i++ {
		rows = append(rows, row{name: fmt.Sprintf("row-%03d", i)})
	}

	require.Equal(t, 3, listing.TotalPages(len(rows)))

	seen := make(map[string]int)
	var sizes []int
	for p := 1; p <= 3; p++ {
		page := listing.Page(rows, p)
		sizes = append(sizes, len(page))
		for _, r := range page {
			seen[r.name]++
		}
	}

	assert.Equal(t, []int{25, 25, 17}, sizes)
	require.Len(t, seen, 67, "every row appears")
	for name, count := range seen {
		assert.Equal(t, 1, count, "row %s duplicated", name)
	}
}

func TestPage_ExactMultipleFillsLastPage(t *testing.T) {
	rows := make([]row, 50)

	assert.Equal(t, 2, listing.TotalPages(len(rows)))
	assert.Len(t, listing.Page(rows, 2), 25)
	assert.Empty(t, listing.Page(rows, 3))
}

func TestPage_OutOfRangeAndClamping(t *testing.T) {
	rows := make([]row, 10)

	assert.Len(t, listing.Page(rows, 0), 10, "page < 1 clamps to the first page")
	assert.Len(t, listing.Page(rows, 1), 10)
	assert.Empty(t, listing.Page(rows, 2))
	assert.Equal(t, 0, listing.TotalPages(0))
}

func TestPage_FilteredThenPaged(t *testing.T) {
	// Pagination applies to the filtered set, not the full one.
	var rows []row
	for i := 0; i < 60; i++ {
		name := fmt.Sprintf("plain-%02d", i)
		if i%2 == 0 {
			name = fmt.Sprintf("kent-%02d", i)
		}
		rows = append(rows, row{name: name})
	}

	filtered := listing.Filter(rows, "KENT", fields)
	require.Len(t, filtered, 30)
	assert.Len(t, listing.Page(filtered, 1), 25)
	assert.Len(t, listing.Page(filtered, 2), 5)
}
