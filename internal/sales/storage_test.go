package sales

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMemory(t *testing.T, n int) *MemoryStorage {
	t.Helper()
	storage := NewMemoryStorage()

	for i := 0; i < n; i++ {
		sale := sampleSale()
		sale.ID = fmt.Sprintf("sale-%02d", i)
		sale.CustomerName = fmt.Sprintf("Customer %02d", i)
		sale.Quantity = i + 1
		sale.Date = time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * 24 * time.Hour)
		require.NoError(t, storage.Insert(context.Background(), sale))
	}
	return storage
}

func TestMemoryStorageInsertAndRead(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	sale := sampleSale()
	require.NoError(t, storage.Insert(ctx, sale))

	got, err := storage.Read(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale, got)

	_, err = storage.Read(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = storage.Insert(ctx, &Sale{})
	assert.ErrorIs(t, err, ErrEmptyID)
}

func TestMemoryStorageFindSortSkipLimit(t *testing.T) {
	ctx := context.Background()
	storage := seedMemory(t, 25)

	q := BuildQuery(ListParams{SortBy: "date", SortOrder: "asc"})

	page, err := storage.Find(ctx, q, 0, 10)
	require.NoError(t, err)
	require.Len(t, page, 10)
	assert.Equal(t, "sale-00", page[0].ID)
	assert.Equal(t, "sale-09", page[9].ID)

	page, err = storage.Find(ctx, q, 20, 10)
	require.NoError(t, err)
	require.Len(t, page, 5, "last partial page")
	assert.Equal(t, "sale-24", page[4].ID)

	page, err = storage.Find(ctx, q, 100, 10)
	require.NoError(t, err)
	assert.Empty(t, page, "skip past the end is not an error")
}

func TestMemoryStorageFindSortDescending(t *testing.T) {
	ctx := context.Background()
	storage := seedMemory(t, 5)

	q := BuildQuery(ListParams{SortBy: "quantity", SortOrder: "desc"})

	page, err := storage.Find(ctx, q, 0, 10)
	require.NoError(t, err)
	require.Len(t, page, 5)
	assert.Equal(t, 5, page[0].Quantity)
	assert.Equal(t, 1, page[4].Quantity)
}

func TestMemoryStorageFindByCustomerNameAscending(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	for i, name := range []string{"Charlie", "Alice", "Bob"} {
		sale := sampleSale()
		sale.ID = fmt.Sprintf("s%d", i)
		sale.CustomerName = name
		require.NoError(t, storage.Insert(ctx, sale))
	}

	q := BuildQuery(ListParams{SortBy: "customer", SortOrder: "asc"})

	page, err := storage.Find(ctx, q, 0, 10)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, "Alice", page[0].CustomerName)
	assert.Equal(t, "Bob", page[1].CustomerName)
	assert.Equal(t, "Charlie", page[2].CustomerName)
}

func TestMemoryStorageCountIgnoresPagination(t *testing.T) {
	ctx := context.Background()
	storage := seedMemory(t, 25)

	q := BuildQuery(ListParams{Page: "3"})

	count, err := storage.Count(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(25), count)
}

func TestMemoryStorageCountWithFilter(t *testing.T) {
	ctx := context.Background()
	storage := seedMemory(t, 10)

	q := BuildQuery(ListParams{Search: "Customer 03"})

	count, err := storage.Count(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryStorageDistinct(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	fixtures := []struct {
		id     string
		region string
		tags   []string
	}{
		{"a", "North", []string{"sports", "footwear"}},
		{"b", "South", []string{"sports", "audio"}},
		{"c", "North", nil},
	}
	for _, f := range fixtures {
		sale := sampleSale()
		sale.ID = f.id
		sale.CustomerRegion = f.region
		sale.Tags = f.tags
		require.NoError(t, storage.Insert(ctx, sale))
	}

	regions, err := storage.Distinct(ctx, FieldCustomerRegion)
	require.NoError(t, err)
	assert.Equal(t, []string{"North", "South"}, regions, "deduplicated and sorted")

	tags, err := storage.Distinct(ctx, FieldTags)
	require.NoError(t, err)
	assert.Equal(t, []string{"audio", "footwear", "sports"}, tags,
		"tag arrays are flattened across records")
}
