package models

// Product is one catalog entry. The API never writes products; the catalog
// is seeded out-of-band (see database/seeders).
type Product struct {
	ID          int     `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	Category    string  `bson:"category" json:"category"`
	Material    string  `bson:"material" json:"material"`
	Image       string  `bson:"image" json:"image"`
}
