package dto

type CreateProductInput struct {
	Barcode      string
	Name         string
	Price        float64
	Stock        int
	TierPrices   [4]float64
	Manufacturer string
	Supplier     string
	Department   string
	Class        string
	Subclass     string
	TaxCategory  string
	Descriptions [4]string
}
