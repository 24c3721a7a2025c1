package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PageSize is the fixed number of records per list page.
const PageSize = 10

// Pagination describes where a returned page sits within the full
// result set of its query.
type Pagination struct {
	CurrentPage    int   `json:"currentPage"`
	TotalPages     int   `json:"totalPages"`
	TotalRecords   int64 `json:"totalRecords"`
	RecordsPerPage int   `json:"recordsPerPage"`
}

// FilterOptions holds the distinct values present in the collection
// for each filterable field, used to populate filter choices.
type FilterOptions struct {
	Regions        []string `json:"regions"`
	Categories     []string `json:"categories"`
	Tags           []string `json:"tags"`
	PaymentMethods []string `json:"paymentMethods"`
}

// Service provides the sale record operations on a Storage backend.
// It is stateless: each instance holds only its collaborators.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// ListSales fetches one page of records matching the given filter
// parameters, plus pagination metadata. The page fetch and the total
// count run against the same query; they are two independent reads,
// so a write landing between them can skew the metadata, which is
// accepted (no transactional isolation).
func (s *Service) ListSales(ctx context.Context, params ListParams) ([]*Sale, Pagination, error) {
	q := BuildQuery(params)
	skip := (q.Page - 1) * PageSize

	records, err := s.storage.Find(ctx, q, skip, PageSize)
	if err != nil {
		s.logger.Error("failed to fetch sales page", zap.Int("page", q.Page), zap.Error(err))
		return nil, Pagination{}, fmt.Errorf("failed to fetch sales: %w", err)
	}

	total, err := s.storage.Count(ctx, q)
	if err != nil {
		s.logger.Error("failed to count sales", zap.Error(err))
		return nil, Pagination{}, fmt.Errorf("failed to count sales: %w", err)
	}

	pagination := Pagination{
		CurrentPage:    q.Page,
		TotalPages:     int((total + PageSize - 1) / PageSize),
		TotalRecords:   total,
		RecordsPerPage: PageSize,
	}

	s.logger.Info("sales listed",
		zap.Int("page", q.Page),
		zap.Int("results", len(records)),
		zap.Int64("total", total),
	)

	return records, pagination, nil
}

// GetSale retrieves a single record by its ID. Returns ErrNotFound
// when no record has that ID.
func (s *Service) GetSale(ctx context.Context, id string) (*Sale, error) {
	return s.storage.Read(ctx, id)
}

// CreateSale validates a candidate payload and, if valid, persists it
// as a new record. A rejected payload yields a *ValidationError
// carrying every violation; nothing is written in that case.
func (s *Service) CreateSale(ctx context.Context, payload map[string]any) (*Sale, error) {
	result := ValidateSale(payload)
	if !result.IsValid {
		s.logger.Warn("sale payload rejected", zap.Strings("errors", result.Errors))
		return nil, &ValidationError{Errors: result.Errors}
	}

	sale := newSale(payload)
	if err := s.storage.Insert(ctx, sale); err != nil {
		s.logger.Error("failed to save sale", zap.String("sale_id", sale.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	s.logger.Info("sale created",
		zap.String("sale_id", sale.ID),
		zap.String("customer_id", sale.CustomerID),
		zap.Float64("final_amount", sale.FinalAmount),
	)
	return sale, nil
}

// ListFilterOptions enumerates the distinct values of every
// filterable field across the entire collection, each set sorted.
func (s *Service) ListFilterOptions(ctx context.Context) (*FilterOptions, error) {
	regions, err := s.storage.Distinct(ctx, FieldCustomerRegion)
	if err != nil {
		return nil, fmt.Errorf("distinct regions: %w", err)
	}
	categories, err := s.storage.Distinct(ctx, FieldProductCategory)
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	tags, err := s.storage.Distinct(ctx, FieldTags)
	if err != nil {
		return nil, fmt.Errorf("distinct tags: %w", err)
	}
	methods, err := s.storage.Distinct(ctx, FieldPaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("distinct payment methods: %w", err)
	}

	return &FilterOptions{
		Regions:        regions,
		Categories:     categories,
		Tags:           tags,
		PaymentMethods: methods,
	}, nil
}

// newSale builds a Sale from a payload that already passed
// validation. Amounts are taken as supplied; they are not recomputed
// from quantity, price and discount.
func newSale(payload map[string]any) *Sale {
	now := time.Now()

	sale := &Sale{
		ID:              uuid.NewString(),
		CustomerID:      str(payload["customerId"]),
		CustomerName:    str(payload["customerName"]),
		PhoneNumber:     str(payload["phoneNumber"]),
		Gender:          str(payload["gender"]),
		CustomerRegion:  str(payload["customerRegion"]),
		CustomerType:    str(payload["customerType"]),
		ProductID:       str(payload["productId"]),
		ProductName:     str(payload["productName"]),
		Brand:           str(payload["brand"]),
		ProductCategory: str(payload["productCategory"]),
		Tags:            strSlice(payload["tags"]),
		PaymentMethod:   str(payload["paymentMethod"]),
		OrderStatus:     str(payload["orderStatus"]),
		DeliveryType:    str(payload["deliveryType"]),
		StoreID:         str(payload["storeId"]),
		StoreLocation:   str(payload["storeLocation"]),
		SalespersonID:   str(payload["salespersonId"]),
		EmployeeName:    str(payload["employeeName"]),
		Date:            now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	sale.Age, _ = intValue(payload["age"])
	sale.Quantity, _ = intValue(payload["quantity"])
	sale.PricePerUnit, _ = floatValue(payload["pricePerUnit"])
	sale.DiscountPercentage, _ = floatValueDefault(payload["discountPercentage"], 0)
	sale.TotalAmount, _ = floatValue(payload["totalAmount"])
	sale.FinalAmount, _ = floatValue(payload["finalAmount"])

	if raw, ok := payload["date"].(string); ok {
		if t, ok := parseDate(raw); ok {
			sale.Date = t
		}
	}

	return sale
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

// strSlice accepts both []string (internal callers) and []any (JSON
// decoding); anything else means no tags.
func strSlice(v any) []string {
	switch vs := v.(type) {
	case []string:
		return vs
	case []any:
		out := make([]string, 0, len(vs))
		for _, item := range vs {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
