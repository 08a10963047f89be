package models

// Product groups sellable SKU variants under a parent code. The parent code
// is the document _id, matching the existing collection.
type Product struct {
	ID         string     `bson:"_id" json:"_id"`
	ParentCode ParentCode `bson:"parentcode" json:"parentcode"`
}

type ParentCode struct {
	SubProducts []SubProduct `bson:"subproduct" json:"subproduct"`
}

type SubProduct struct {
	SKU          string  `bson:"sku" json:"sku"`
	Name         string  `bson:"name" json:"name"`
	BuyingPrice  float64 `bson:"buying_price" json:"buying_price"`
	SellingPrice float64 `bson:"selling_price" json:"selling_price"`
	Quantity     int     `bson:"quantity" json:"quantity"`
}

// BulkProductRow is one row of the JSON bulk upload, keyed by
// (parentcode, sku) for the upsert.
type BulkProductRow struct {
	ParentCode   string `json:"parentcode"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	BuyingPrice  string `json:"buying_price"`
	SellingPrice string `json:"selling_price"`
	Quantity     string `json:"quantity"`
}
