package sales

import (
	"strconv"
	"strings"
	"time"
)

// Fields a query can sort on. The external sortBy names "date",
// "quantity" and "customer" map onto these; anything else falls back
// to SortDate.
const (
	SortDate         = "date"
	SortQuantity     = "quantity"
	SortCustomerName = "customerName"
)

// Filterable fields for distinct-value enumeration.
const (
	FieldCustomerRegion  = "customerRegion"
	FieldProductCategory = "productCategory"
	FieldTags            = "tags"
	FieldPaymentMethod   = "paymentMethod"
)

// dateLayouts are the accepted formats for date filter values and for
// the "date" field of a submitted record.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ListParams carries the raw filter inputs exactly as received from
// the transport layer. Multi-valued fields hold every occurrence of
// the parameter; absent fields are empty.
type ListParams struct {
	Search          string
	StartDate       string
	EndDate         string
	CustomerRegion  []string
	Gender          []string
	MinAge          string
	MaxAge          string
	ProductCategory []string
	Tags            []string
	PaymentMethod   []string
	SortBy          string
	SortOrder       string
	Page            string
}

// SortSpec is a single-field sort: Order is 1 for ascending, -1 for
// descending, mirroring the storage backend's convention.
type SortSpec struct {
	Field string
	Order int
}

// Query is the normalized, immutable form of a list request: the
// conjunction of every active filter plus sort and page. A zero
// criteria set matches every record. Built once per request by
// BuildQuery and never mutated afterwards.
type Query struct {
	Search         string
	DateFrom       *time.Time
	DateTo         *time.Time
	Regions        []string
	Genders        []string
	MinAge         *int
	MaxAge         *int
	Categories     []string
	Tags           []string
	PaymentMethods []string
	Sort           SortSpec
	Page           int
}

// BuildQuery normalizes raw list parameters into a Query. Malformed
// optional values (unparseable dates or ages, non-numeric page) are
// dropped rather than rejected: the corresponding filter is simply
// not applied. Never returns an error.
func BuildQuery(p ListParams) Query {
	q := Query{
		Search:         strings.TrimSpace(p.Search),
		Regions:        normalizeValues(p.CustomerRegion),
		Genders:        normalizeValues(p.Gender),
		Categories:     normalizeValues(p.ProductCategory),
		Tags:           normalizeValues(p.Tags),
		PaymentMethods: normalizeValues(p.PaymentMethod),
		Sort:           buildSort(p.SortBy, p.SortOrder),
		Page:           parsePage(p.Page),
	}

	// Date bounds are inclusive at day granularity: the start clamps
	// to 00:00:00.000 and the end to 23:59:59.999 of the given day.
	if t, ok := parseDate(p.StartDate); ok {
		from := startOfDay(t)
		q.DateFrom = &from
	}
	if t, ok := parseDate(p.EndDate); ok {
		to := endOfDay(t)
		q.DateTo = &to
	}

	if n, ok := parseIntValue(p.MinAge); ok {
		q.MinAge = &n
	}
	if n, ok := parseIntValue(p.MaxAge); ok {
		q.MaxAge = &n
	}

	return q
}

// Matches reports whether the record satisfies every active criterion
// of the query. This is the reference predicate evaluation; the
// in-memory storage uses it directly and the Mongo backend translates
// the same criteria into a native filter document.
func (q Query) Matches(s *Sale) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(s.CustomerName), needle) &&
			!strings.Contains(strings.ToLower(s.PhoneNumber), needle) {
			return false
		}
	}

	if q.DateFrom != nil && s.Date.Before(*q.DateFrom) {
		return false
	}
	if q.DateTo != nil && s.Date.After(*q.DateTo) {
		return false
	}

	if len(q.Regions) > 0 && !contains(q.Regions, s.CustomerRegion) {
		return false
	}
	if len(q.Genders) > 0 && !contains(q.Genders, s.Gender) {
		return false
	}
	if len(q.Categories) > 0 && !contains(q.Categories, s.ProductCategory) {
		return false
	}
	if len(q.PaymentMethods) > 0 && !contains(q.PaymentMethods, s.PaymentMethod) {
		return false
	}

	// Tag membership: at least one of the record's tags is in the
	// requested set, matching $in semantics on an array field.
	if len(q.Tags) > 0 && !containsAny(q.Tags, s.Tags) {
		return false
	}

	if q.MinAge != nil && s.Age < *q.MinAge {
		return false
	}
	if q.MaxAge != nil && s.Age > *q.MaxAge {
		return false
	}

	return true
}

// buildSort maps the external sortBy/sortOrder values onto a SortSpec.
// Unknown sort fields fall back to date; any order other than "asc"
// sorts descending.
func buildSort(sortBy, sortOrder string) SortSpec {
	order := -1
	if sortOrder == "asc" {
		order = 1
	}

	field := SortDate
	switch sortBy {
	case "quantity":
		field = SortQuantity
	case "customer":
		field = SortCustomerName
	}

	return SortSpec{Field: field, Order: order}
}

// normalizeValues drops empty entries so that an absent parameter and
// an explicitly empty one both mean "no constraint". A single scalar
// and a one-element list are indistinguishable after normalization.
func normalizeValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parsePage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func parseIntValue(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseDate tries each accepted layout in turn.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsAny(set, values []string) bool {
	for _, v := range values {
		if contains(set, v) {
			return true
		}
	}
	return false
}
