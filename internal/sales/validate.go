package sales

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationResult is the outcome of validating a candidate sale
// payload. Errors holds one message per violated field, in field
// order; validation is not fail-fast.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidationError wraps a failed ValidationResult so callers can
// distinguish a rejected payload from an infrastructure failure.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ValidateSale checks an untyped candidate payload against the sale
// record rules and collects every violation. Numeric fields are
// parsed leniently: JSON numbers and numeric strings are both
// accepted. The function never panics and never fails early.
func ValidateSale(data map[string]any) ValidationResult {
	var errs []string

	if !hasString(data, "customerId") {
		errs = append(errs, "Customer ID is required")
	}
	if !hasNonBlankString(data, "customerName") {
		errs = append(errs, "Customer name is required")
	}

	if phone, ok := stringValue(data, "phoneNumber"); !ok {
		errs = append(errs, "Phone number is required")
	} else if len(digitsOf(phone)) < 10 {
		errs = append(errs, "Phone number must have at least 10 digits")
	}

	if gender, ok := stringValue(data, "gender"); !ok || !contains(AllowedGenders, gender) {
		errs = append(errs, "Valid gender is required (Male, Female, Other)")
	}

	if age, ok := intValue(data["age"]); !ok || age < 0 {
		errs = append(errs, "Age must be a positive number")
	}

	if !hasString(data, "customerRegion") {
		errs = append(errs, "Customer region is required")
	}
	if !hasString(data, "customerType") {
		errs = append(errs, "Customer type is required")
	}
	if !hasString(data, "productId") {
		errs = append(errs, "Product ID is required")
	}
	if !hasNonBlankString(data, "productName") {
		errs = append(errs, "Product name is required")
	}
	if !hasString(data, "brand") {
		errs = append(errs, "Brand is required")
	}
	if !hasString(data, "productCategory") {
		errs = append(errs, "Product category is required")
	}

	if qty, ok := intValue(data["quantity"]); !ok || qty < 1 {
		errs = append(errs, "Quantity must be at least 1")
	}
	if price, ok := floatValue(data["pricePerUnit"]); !ok || price < 0 {
		errs = append(errs, "Price per unit must be a positive number")
	}

	// Discount defaults to 0 when absent.
	if discount, ok := floatValueDefault(data["discountPercentage"], 0); !ok || discount < 0 || discount > 100 {
		errs = append(errs, "Discount percentage must be between 0 and 100")
	}

	if total, ok := floatValue(data["totalAmount"]); !ok || total < 0 {
		errs = append(errs, "Total amount must be a positive number")
	}
	if final, ok := floatValue(data["finalAmount"]); !ok || final < 0 {
		errs = append(errs, "Final amount must be a positive number")
	}

	if !hasString(data, "paymentMethod") {
		errs = append(errs, "Payment method is required")
	}
	if !hasString(data, "orderStatus") {
		errs = append(errs, "Order status is required")
	}
	if !hasString(data, "deliveryType") {
		errs = append(errs, "Delivery type is required")
	}
	if !hasString(data, "storeId") {
		errs = append(errs, "Store ID is required")
	}
	if !hasString(data, "storeLocation") {
		errs = append(errs, "Store location is required")
	}
	if !hasString(data, "salespersonId") {
		errs = append(errs, "Salesperson ID is required")
	}
	if !hasString(data, "employeeName") {
		errs = append(errs, "Employee name is required")
	}

	// Date is optional (defaults to creation time) but must parse
	// when present.
	if raw, present := data["date"]; present && raw != nil {
		s, isString := raw.(string)
		if !isString {
			errs = append(errs, "Invalid date format")
		} else if _, ok := parseDate(s); !ok {
			errs = append(errs, "Invalid date format")
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// stringValue returns the value for key when it is a non-empty string.
func stringValue(data map[string]any, key string) (string, bool) {
	s, ok := data[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func hasString(data map[string]any, key string) bool {
	_, ok := stringValue(data, key)
	return ok
}

// hasNonBlankString additionally rejects whitespace-only values, used
// for the name-like fields.
func hasNonBlankString(data map[string]any, key string) bool {
	s, ok := stringValue(data, key)
	return ok && strings.TrimSpace(s) != ""
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// floatValue leniently extracts a number: JSON numbers arrive as
// float64, CSV and form inputs as strings.
func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// floatValueDefault treats an absent value as def instead of a
// failure.
func floatValueDefault(v any, def float64) (float64, bool) {
	if v == nil {
		return def, true
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return def, true
	}
	return floatValue(v)
}

// intValue extracts an integer, truncating fractional input the way
// the lenient parse always has.
func intValue(v any) (int, bool) {
	f, ok := floatValue(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}
