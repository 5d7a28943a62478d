// Package catalog holds the static table of purchasable products and
// services used to resolve quote line pricing.
package catalog

// Product is one purchasable offering.
type Product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
}

var products = []Product{
	{ID: 1, Name: "Managed Server", Description: "Dedicated managed server instance", UnitPrice: 150.00},
	{ID: 2, Name: "Cloud Storage (100 GB)", Description: "Replicated block storage, per 100 GB", UnitPrice: 25.00},
	{ID: 3, Name: "Workstation Support", Description: "Per-seat workstation maintenance", UnitPrice: 45.00},
	{ID: 4, Name: "Network Monitoring", Description: "24/7 uptime and latency monitoring", UnitPrice: 80.00},
	{ID: 5, Name: "Firewall Management", Description: "Managed perimeter firewall", UnitPrice: 120.00},
	{ID: 6, Name: "Backup Service", Description: "Nightly offsite backup, per host", UnitPrice: 35.00},
	{ID: 7, Name: "Email Hosting", Description: "Hosted mailbox, per user", UnitPrice: 8.00},
	{ID: 8, Name: "VoIP Line", Description: "Business VoIP line with DID", UnitPrice: 18.00},
	{ID: 9, Name: "On-site Intervention", Description: "Technician on-site visit, per hour", UnitPrice: 95.00},
	{ID: 10, Name: "Security Audit", Description: "Quarterly vulnerability assessment", UnitPrice: 450.00},
}

// All returns the full product table.
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// FindByID looks up a product; ok is false for unknown IDs.
func FindByID(id uint) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// PriceFor resolves the unit price for a product ID, zero for unknown
// products.
func PriceFor(id uint) float64 {
	p, ok := FindByID(id)
	if !ok {
		return 0
	}
	return p.UnitPrice
}
