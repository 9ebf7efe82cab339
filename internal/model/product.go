package model

// Product is one catalog record. Field widths on disk are fixed (see the
// product repository); values here are already trimmed of padding.
type Product struct {
	ID           int
	Barcode      string // EAN-13
	Name         string
	Price        float64
	Stock        int
	TierPrices   [4]float64
	Manufacturer string
	Supplier     string
	Department   string
	Class        string
	Subclass     string
	TaxCategory  string // "reduced" or "super-reduced"
	Descriptions [4]string
}
