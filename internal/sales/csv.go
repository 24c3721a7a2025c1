package sales

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// DefaultImportLimit caps how many CSV rows an import reads unless
// the caller asks for more.
const DefaultImportLimit = 50

// csvColumns maps the exported spreadsheet headers onto payload keys.
// Files may also carry the payload keys themselves as headers.
var csvColumns = map[string]string{
	"Customer ID":         "customerId",
	"Customer Name":       "customerName",
	"Phone Number":        "phoneNumber",
	"Gender":              "gender",
	"Age":                 "age",
	"Customer Region":     "customerRegion",
	"Customer Type":       "customerType",
	"Product ID":          "productId",
	"Product Name":        "productName",
	"Brand":               "brand",
	"Product Category":    "productCategory",
	"Tags":                "tags",
	"Quantity":            "quantity",
	"Price per Unit":      "pricePerUnit",
	"Discount Percentage": "discountPercentage",
	"Total Amount":        "totalAmount",
	"Final Amount":        "finalAmount",
	"Date":                "date",
	"Payment Method":      "paymentMethod",
	"Order Status":        "orderStatus",
	"Delivery Type":       "deliveryType",
	"Store ID":            "storeId",
	"Store Location":      "storeLocation",
	"Salesperson ID":      "salespersonId",
	"Employee Name":       "employeeName",
}

// payloadKeys is the set of accepted camelCase headers.
var payloadKeys = func() map[string]struct{} {
	keys := make(map[string]struct{}, len(csvColumns))
	for _, k := range csvColumns {
		keys[k] = struct{}{}
	}
	return keys
}()

// ReadCSV parses at most limit candidate sale payloads from r. The
// first row is the header; columns may use either the spreadsheet
// names ("Customer ID") or the payload keys ("customerId").
// Unrecognized columns are skipped. Tags cells are split on commas.
// The payloads are not validated here; each one goes through the
// regular create path.
func ReadCSV(r io.Reader, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = DefaultImportLimit
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV file")
	}
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	keys := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if key, ok := csvColumns[h]; ok {
			keys[i] = key
		} else if _, ok := payloadKeys[h]; ok {
			keys[i] = h
		}
	}

	var payloads []map[string]any
	for len(payloads) < limit {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row %d: %w", len(payloads)+2, err)
		}

		payload := map[string]any{}
		for i, cell := range row {
			if i >= len(keys) || keys[i] == "" {
				continue
			}
			if keys[i] == "tags" {
				payload["tags"] = splitTags(cell)
				continue
			}
			payload[keys[i]] = cell
		}
		payloads = append(payloads, payload)
	}

	return payloads, nil
}

func splitTags(cell string) []string {
	parts := strings.Split(cell, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
