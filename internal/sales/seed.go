package sales

import (
	"context"
	"fmt"
)

// SamplePayloads returns a small set of well-formed candidate records
// for seeding a development database. Each payload passes validation.
func SamplePayloads() []map[string]any {
	return []map[string]any{
		{
			"customerId": "CUST-1001", "customerName": "Rajesh Kumar", "phoneNumber": "9876543210",
			"gender": "Male", "age": 34, "customerRegion": "South", "customerType": "Regular",
			"productId": "PROD-2001", "productName": "Samsung Galaxy S23", "brand": "Samsung",
			"productCategory": "Electronics", "tags": []string{"smartphone", "5g"},
			"quantity": 1, "pricePerUnit": 74999.0, "discountPercentage": 5.0,
			"totalAmount": 74999.0, "finalAmount": 71249.05, "date": "2024-12-01T10:30:00Z",
			"paymentMethod": "Card", "orderStatus": "Delivered", "deliveryType": "Home Delivery",
			"storeId": "ST-01", "storeLocation": "Bengaluru", "salespersonId": "EMP-301", "employeeName": "Arun Joshi",
		},
		{
			"customerId": "CUST-1002", "customerName": "Priya Sharma", "phoneNumber": "9123456789",
			"gender": "Female", "age": 28, "customerRegion": "North", "customerType": "Premium",
			"productId": "PROD-2002", "productName": "Nike Running Shoes", "brand": "Nike",
			"productCategory": "Clothing", "tags": []string{"footwear", "sports"},
			"quantity": 2, "pricePerUnit": 4499.5, "discountPercentage": 0.0,
			"totalAmount": 8999.0, "finalAmount": 8999.0, "date": "2024-12-02T14:15:00Z",
			"paymentMethod": "UPI", "orderStatus": "Delivered", "deliveryType": "Store Pickup",
			"storeId": "ST-02", "storeLocation": "Delhi", "salespersonId": "EMP-302", "employeeName": "Neha Gupta",
		},
		{
			"customerId": "CUST-1003", "customerName": "Amit Patel", "phoneNumber": "9988776655",
			"gender": "Male", "age": 41, "customerRegion": "West", "customerType": "Regular",
			"productId": "PROD-2003", "productName": "Dell Inspiron Laptop", "brand": "Dell",
			"productCategory": "Electronics", "tags": []string{"laptop", "office"},
			"quantity": 1, "pricePerUnit": 65000.0, "discountPercentage": 10.0,
			"totalAmount": 65000.0, "finalAmount": 58500.0, "date": "2024-12-02T16:45:00Z",
			"paymentMethod": "Card", "orderStatus": "Shipped", "deliveryType": "Home Delivery",
			"storeId": "ST-03", "storeLocation": "Ahmedabad", "salespersonId": "EMP-303", "employeeName": "Kiran Shah",
		},
		{
			"customerId": "CUST-1004", "customerName": "Sneha Reddy", "phoneNumber": "9445566778",
			"gender": "Female", "age": 35, "customerRegion": "South", "customerType": "Regular",
			"productId": "PROD-2004", "productName": "Organic Rice 10kg", "brand": "FarmFresh",
			"productCategory": "Groceries", "tags": []string{"organic", "staples"},
			"quantity": 3, "pricePerUnit": 500.0, "discountPercentage": 0.0,
			"totalAmount": 1500.0, "finalAmount": 1500.0, "date": "2024-12-03T09:20:00Z",
			"paymentMethod": "Cash", "orderStatus": "Delivered", "deliveryType": "Store Pickup",
			"storeId": "ST-04", "storeLocation": "Hyderabad", "salespersonId": "EMP-304", "employeeName": "Ravi Teja",
		},
		{
			"customerId": "CUST-1005", "customerName": "Vikram Singh", "phoneNumber": "9334455667",
			"gender": "Male", "age": 47, "customerRegion": "North", "customerType": "Premium",
			"productId": "PROD-2005", "productName": "Ergonomic Office Chair", "brand": "FeatherLite",
			"productCategory": "Furniture", "tags": []string{"office", "ergonomic"},
			"quantity": 1, "pricePerUnit": 12500.0, "discountPercentage": 8.0,
			"totalAmount": 12500.0, "finalAmount": 11500.0, "date": "2024-12-03T11:00:00Z",
			"paymentMethod": "UPI", "orderStatus": "Delivered", "deliveryType": "Home Delivery",
			"storeId": "ST-02", "storeLocation": "Delhi", "salespersonId": "EMP-302", "employeeName": "Neha Gupta",
		},
		{
			"customerId": "CUST-1006", "customerName": "Anjali Mehta", "phoneNumber": "9223344556",
			"gender": "Female", "age": 30, "customerRegion": "West", "customerType": "Premium",
			"productId": "PROD-2006", "productName": "iPhone 15 Pro", "brand": "Apple",
			"productCategory": "Electronics", "tags": []string{"smartphone", "premium"},
			"quantity": 1, "pricePerUnit": 134900.0, "discountPercentage": 0.0,
			"totalAmount": 134900.0, "finalAmount": 134900.0, "date": "2024-12-04T13:30:00Z",
			"paymentMethod": "Card", "orderStatus": "Delivered", "deliveryType": "Store Pickup",
			"storeId": "ST-05", "storeLocation": "Mumbai", "salespersonId": "EMP-305", "employeeName": "Sanjay Kulkarni",
		},
		{
			"customerId": "CUST-1007", "customerName": "Rahul Verma", "phoneNumber": "9112233445",
			"gender": "Male", "age": 26, "customerRegion": "East", "customerType": "Regular",
			"productId": "PROD-2007", "productName": "Levi's 511 Jeans", "brand": "Levi's",
			"productCategory": "Clothing", "tags": []string{"denim"},
			"quantity": 2, "pricePerUnit": 2999.0, "discountPercentage": 15.0,
			"totalAmount": 5998.0, "finalAmount": 5098.3, "date": "2024-12-04T15:10:00Z",
			"paymentMethod": "Cash", "orderStatus": "Delivered", "deliveryType": "Store Pickup",
			"storeId": "ST-06", "storeLocation": "Kolkata", "salespersonId": "EMP-306", "employeeName": "Debashish Roy",
		},
		{
			"customerId": "CUST-1008", "customerName": "Kavita Desai", "phoneNumber": "9001122334",
			"gender": "Female", "age": 52, "customerRegion": "West", "customerType": "Regular",
			"productId": "PROD-2008", "productName": "Study Table", "brand": "WoodCraft",
			"productCategory": "Furniture", "tags": []string{"home", "wood"},
			"quantity": 1, "pricePerUnit": 8500.0, "discountPercentage": 0.0,
			"totalAmount": 8500.0, "finalAmount": 8500.0, "date": "2024-12-05T10:45:00Z",
			"paymentMethod": "UPI", "orderStatus": "Shipped", "deliveryType": "Home Delivery",
			"storeId": "ST-05", "storeLocation": "Mumbai", "salespersonId": "EMP-305", "employeeName": "Sanjay Kulkarni",
		},
		{
			"customerId": "CUST-1009", "customerName": "Suresh Nair", "phoneNumber": "9890011223",
			"gender": "Male", "age": 38, "customerRegion": "South", "customerType": "Regular",
			"productId": "PROD-2009", "productName": "Wireless Headphones", "brand": "Sony",
			"productCategory": "Electronics", "tags": []string{"audio", "wireless"},
			"quantity": 1, "pricePerUnit": 3499.0, "discountPercentage": 0.0,
			"totalAmount": 3499.0, "finalAmount": 3499.0, "date": "2024-12-05T12:20:00Z",
			"paymentMethod": "UPI", "orderStatus": "Delivered", "deliveryType": "Home Delivery",
			"storeId": "ST-07", "storeLocation": "Kochi", "salespersonId": "EMP-307", "employeeName": "Meena Pillai",
		},
		{
			"customerId": "CUST-1010", "customerName": "Meera Iyer", "phoneNumber": "9778899001",
			"gender": "Female", "age": 45, "customerRegion": "South", "customerType": "Premium",
			"productId": "PROD-2010", "productName": "Basmati Rice 5kg", "brand": "FarmFresh",
			"productCategory": "Groceries", "tags": []string{"staples"},
			"quantity": 2, "pricePerUnit": 400.0, "discountPercentage": 0.0,
			"totalAmount": 800.0, "finalAmount": 800.0, "date": "2024-12-05T14:00:00Z",
			"paymentMethod": "Cash", "orderStatus": "Delivered", "deliveryType": "Store Pickup",
			"storeId": "ST-01", "storeLocation": "Bengaluru", "salespersonId": "EMP-301", "employeeName": "Arun Joshi",
		},
		{
			"customerId": "CUST-1011", "customerName": "Karthik Rao", "phoneNumber": "9667788990",
			"gender": "Male", "age": 23, "customerRegion": "South", "customerType": "Regular",
			"productId": "PROD-2011", "productName": "Adidas T-Shirt", "brand": "Adidas",
			"productCategory": "Clothing", "tags": []string{"sports", "casual"},
			"quantity": 3, "pricePerUnit": 1499.0, "discountPercentage": 20.0,
			"totalAmount": 4497.0, "finalAmount": 3597.6, "date": "2024-12-06T09:30:00Z",
			"paymentMethod": "Card", "orderStatus": "Processing", "deliveryType": "Home Delivery",
			"storeId": "ST-01", "storeLocation": "Bengaluru", "salespersonId": "EMP-308", "employeeName": "Divya Hegde",
		},
		{
			"customerId": "CUST-1012", "customerName": "Divya Pillai", "phoneNumber": "9556677889",
			"gender": "Female", "age": 31, "customerRegion": "East", "customerType": "Regular",
			"productId": "PROD-2012", "productName": "Bookshelf", "brand": "WoodCraft",
			"productCategory": "Furniture", "tags": []string{"home", "storage"},
			"quantity": 1, "pricePerUnit": 6500.0, "discountPercentage": 0.0,
			"totalAmount": 6500.0, "finalAmount": 6500.0, "date": "2024-12-06T11:15:00Z",
			"paymentMethod": "UPI", "orderStatus": "Delivered", "deliveryType": "Home Delivery",
			"storeId": "ST-06", "storeLocation": "Kolkata", "salespersonId": "EMP-306", "employeeName": "Debashish Roy",
		},
	}
}

// Seed inserts the sample records through the regular create path so
// they are validated like any client submission. Returns the number
// of records inserted.
func Seed(ctx context.Context, svc *Service) (int, error) {
	inserted := 0
	for i, payload := range SamplePayloads() {
		if _, err := svc.CreateSale(ctx, payload); err != nil {
			return inserted, fmt.Errorf("seed record %d: %w", i+1, err)
		}
		inserted++
	}
	return inserted, nil
}
