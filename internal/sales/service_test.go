package sales

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T) (*Service, *MemoryStorage) {
	t.Helper()
	storage := NewMemoryStorage()
	return NewService(storage, zaptest.NewLogger(t)), storage
}

// errorStorage fails every operation, for exercising the failure
// paths.
type errorStorage struct{}

func (errorStorage) Find(context.Context, Query, int, int) ([]*Sale, error) {
	return nil, errors.New("storage down")
}
func (errorStorage) Count(context.Context, Query) (int64, error) {
	return 0, errors.New("storage down")
}
func (errorStorage) Distinct(context.Context, string) ([]string, error) {
	return nil, errors.New("storage down")
}
func (errorStorage) Insert(context.Context, *Sale) error { return errors.New("storage down") }
func (errorStorage) Read(context.Context, string) (*Sale, error) {
	return nil, errors.New("storage down")
}

func TestNewServiceNilLogger(t *testing.T) {
	svc := NewService(NewMemoryStorage(), nil)
	require.NotNil(t, svc)
	require.NotNil(t, svc.logger)
}

func TestListSalesPagination(t *testing.T) {
	ctx := context.Background()
	svc, storage := newTestService(t)

	for i := 0; i < 25; i++ {
		sale := sampleSale()
		sale.ID = fmt.Sprintf("sale-%02d", i)
		require.NoError(t, storage.Insert(ctx, sale))
	}

	records, pagination, err := svc.ListSales(ctx, ListParams{Page: "2"})
	require.NoError(t, err)

	assert.Len(t, records, 10)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, int64(25), pagination.TotalRecords)
	assert.Equal(t, 10, pagination.RecordsPerPage)

	records, pagination, err = svc.ListSales(ctx, ListParams{Page: "3"})
	require.NoError(t, err)
	assert.Len(t, records, 5, "last page is partial")
	assert.Equal(t, 3, pagination.CurrentPage)
}

func TestListSalesPageBeyondEnd(t *testing.T) {
	ctx := context.Background()
	svc, storage := newTestService(t)

	for i := 0; i < 12; i++ {
		sale := sampleSale()
		sale.ID = fmt.Sprintf("sale-%02d", i)
		require.NoError(t, storage.Insert(ctx, sale))
	}

	records, pagination, err := svc.ListSales(ctx, ListParams{Page: "9"})
	require.NoError(t, err)

	assert.Empty(t, records, "out-of-range page is not an error")
	assert.Equal(t, 9, pagination.CurrentPage)
	assert.Equal(t, 2, pagination.TotalPages, "metadata still reflects the true count")
	assert.Equal(t, int64(12), pagination.TotalRecords)
}

func TestListSalesEmptyCollection(t *testing.T) {
	svc, _ := newTestService(t)

	records, pagination, err := svc.ListSales(context.Background(), ListParams{})
	require.NoError(t, err)

	assert.Empty(t, records)
	assert.Equal(t, 0, pagination.TotalPages)
	assert.Equal(t, int64(0), pagination.TotalRecords)
}

func TestListSalesCountSharesPredicateWithPage(t *testing.T) {
	ctx := context.Background()
	svc, storage := newTestService(t)

	for i := 0; i < 15; i++ {
		sale := sampleSale()
		sale.ID = fmt.Sprintf("sale-%02d", i)
		if i < 12 {
			sale.Gender = "Male"
		}
		require.NoError(t, storage.Insert(ctx, sale))
	}

	records, pagination, err := svc.ListSales(ctx, ListParams{Gender: []string{"Male"}})
	require.NoError(t, err)

	assert.Len(t, records, 10)
	assert.Equal(t, int64(12), pagination.TotalRecords)
	assert.Equal(t, 2, pagination.TotalPages)
}

func TestListSalesStorageFailure(t *testing.T) {
	svc := NewService(errorStorage{}, zaptest.NewLogger(t))

	_, _, err := svc.ListSales(context.Background(), ListParams{})
	assert.Error(t, err)
}

func TestCreateSaleRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.CreateSale(ctx, validPayload())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.GetSale(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Priya Sharma", got.CustomerName)
	assert.Equal(t, "(987) 654-3210", got.PhoneNumber)
	assert.Equal(t, "Female", got.Gender)
	assert.Equal(t, 28, got.Age)
	assert.Equal(t, []string{"footwear"}, got.Tags)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, 4499.5, got.PricePerUnit)
	assert.Equal(t, 8999.0, got.TotalAmount)
	assert.Equal(t, 8999.0, got.FinalAmount)
	assert.Equal(t, "UPI", got.PaymentMethod)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.Date.IsZero(), "date defaults to creation time when omitted")
}

func TestCreateSaleUsesSubmittedDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	payload := validPayload()
	payload["date"] = "2024-12-02T14:15:00Z"

	created, err := svc.CreateSale(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, 2024, created.Date.Year())
	assert.Equal(t, 14, created.Date.Hour())
}

func TestCreateSaleValidationFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	svc, storage := newTestService(t)

	payload := validPayload()
	delete(payload, "customerName")
	payload["age"] = -1

	_, err := svc.CreateSale(ctx, payload)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.GreaterOrEqual(t, len(vErr.Errors), 2)

	count, err := storage.Count(ctx, BuildQuery(ListParams{}))
	require.NoError(t, err)
	assert.Zero(t, count, "rejected payload must not be persisted")
}

func TestGetSaleNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetSale(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFilterOptions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	n, err := Seed(ctx, svc)
	require.NoError(t, err)
	require.Equal(t, len(SamplePayloads()), n)

	opts, err := svc.ListFilterOptions(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"East", "North", "South", "West"}, opts.Regions)
	assert.Equal(t, []string{"Clothing", "Electronics", "Furniture", "Groceries"}, opts.Categories)
	assert.Equal(t, []string{"Card", "Cash", "UPI"}, opts.PaymentMethods)
	assert.Contains(t, opts.Tags, "smartphone")
	assert.IsIncreasing(t, opts.Tags)
}

func TestListFilterOptionsStorageFailure(t *testing.T) {
	svc := NewService(errorStorage{}, zaptest.NewLogger(t))

	_, err := svc.ListFilterOptions(context.Background())
	assert.Error(t, err)
}
