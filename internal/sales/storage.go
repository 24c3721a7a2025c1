package sales

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned when a sale with the given ID is not found.
var ErrNotFound = errors.New("sale not found")

// ErrEmptyID is returned when trying to store a sale with an empty ID.
var ErrEmptyID = errors.New("empty sale ID")

// Storage is the interface the sales service requires from its
// backing store: predicate-based retrieval and counting, per-field
// distinct-value enumeration, single-record insert and lookup.
type Storage interface {
	Find(ctx context.Context, q Query, skip, limit int) ([]*Sale, error)
	Count(ctx context.Context, q Query) (int64, error)
	Distinct(ctx context.Context, field string) ([]string, error)
	Insert(ctx context.Context, sale *Sale) error
	Read(ctx context.Context, id string) (*Sale, error)
}

// MemoryStorage is an in-memory Storage implementation used for tests
// and single-node development. Records are kept in insertion order so
// sorted results are deterministic under the stable sort.
type MemoryStorage struct {
	mu    sync.RWMutex
	m     map[string]*Sale
	order []string
}

// NewMemoryStorage instantiates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{m: map[string]*Sale{}}
}

// Insert stores a sale. Returns ErrEmptyID if the sale has no ID.
func (l *MemoryStorage) Insert(_ context.Context, sale *Sale) error {
	if sale.ID == "" {
		return ErrEmptyID
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.m[sale.ID]; !exists {
		l.order = append(l.order, sale.ID)
	}
	l.m[sale.ID] = sale
	return nil
}

// Read retrieves a sale by ID. Returns ErrNotFound if absent.
func (l *MemoryStorage) Read(_ context.Context, id string) (*Sale, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Find returns up to limit matching records after skipping skip,
// ordered by the query's sort spec. A skip past the end of the result
// set yields an empty slice, not an error.
func (l *MemoryStorage) Find(_ context.Context, q Query, skip, limit int) ([]*Sale, error) {
	matched := l.matching(q)
	sortSales(matched, q.Sort)

	if skip >= len(matched) {
		return []*Sale{}, nil
	}
	matched = matched[skip:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

// Count returns the number of records matching the query, unaffected
// by pagination.
func (l *MemoryStorage) Count(_ context.Context, q Query) (int64, error) {
	return int64(len(l.matching(q))), nil
}

// Distinct enumerates the sorted set of values the field takes across
// the whole collection. For the tags field every element of every
// record's tag array contributes, matching distinct-on-array
// semantics of the document store.
func (l *MemoryStorage) Distinct(_ context.Context, field string) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := map[string]struct{}{}
	for _, id := range l.order {
		s := l.m[id]
		switch field {
		case FieldCustomerRegion:
			seen[s.CustomerRegion] = struct{}{}
		case FieldProductCategory:
			seen[s.ProductCategory] = struct{}{}
		case FieldPaymentMethod:
			seen[s.PaymentMethod] = struct{}{}
		case FieldTags:
			for _, t := range s.Tags {
				seen[t] = struct{}{}
			}
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

func (l *MemoryStorage) matching(q Query) []*Sale {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*Sale, 0, len(l.order))
	for _, id := range l.order {
		if s := l.m[id]; q.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

func sortSales(sales []*Sale, spec SortSpec) {
	asc := spec.Order >= 0

	sort.SliceStable(sales, func(i, j int) bool {
		a, b := sales[i], sales[j]
		if !asc {
			a, b = b, a
		}
		switch spec.Field {
		case SortQuantity:
			return a.Quantity < b.Quantity
		case SortCustomerName:
			return a.CustomerName < b.CustomerName
		default:
			return a.Date.Before(b.Date)
		}
	})
}
