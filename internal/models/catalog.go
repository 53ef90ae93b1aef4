package models

import (
	"strings"

	"github.com/samber/lo"
)

// Product is a catalog entry as served by the products API
type Product struct {
	ID       int
	Name     string
	Price    string
	Brand    string
	UserType string
	Category string
}

// Catalog is the fixed product list served by the local store
type Catalog struct {
	products []Product
}

// DefaultCatalog returns the products seeded into the local store
func DefaultCatalog() *Catalog {
	return NewCatalog([]Product{
		{ID: 1, Name: "Blue Top", Price: "Rs. 500", Brand: "Polo", UserType: "Women", Category: "Tops"},
		{ID: 2, Name: "Men Tshirt", Price: "Rs. 400", Brand: "H&M", UserType: "Men", Category: "Tshirts"},
		{ID: 3, Name: "Sleeveless Dress", Price: "Rs. 1000", Brand: "Madame", UserType: "Women", Category: "Dress"},
		{ID: 4, Name: "Stylish Dress", Price: "Rs. 1500", Brand: "Madame", UserType: "Women", Category: "Dress"},
		{ID: 5, Name: "Winter Top", Price: "Rs. 600", Brand: "Mast & Harbour", UserType: "Women", Category: "Tops"},
		{ID: 6, Name: "Summer White Top", Price: "Rs. 400", Brand: "H&M", UserType: "Women", Category: "Tops"},
		{ID: 7, Name: "Madame Top For Women", Price: "Rs. 1000", Brand: "Madame", UserType: "Women", Category: "Tops"},
		{ID: 8, Name: "Fancy Green Top", Price: "Rs. 700", Brand: "Polo", UserType: "Women", Category: "Tops"},
		{ID: 11, Name: "Pure Cotton V-Neck T-Shirt", Price: "Rs. 1299", Brand: "Babyhug", UserType: "Men", Category: "Tshirts"},
		{ID: 28, Name: "Pure Cotton Neon Green Tshirt", Price: "Rs. 850", Brand: "Allen Solly Junior", UserType: "Kids", Category: "Tops & Shirts"},
		{ID: 29, Name: "Green Side Placket Detail T-Shirt", Price: "Rs. 1000", Brand: "Kookie Kids", UserType: "Men", Category: "Tshirts"},
		{ID: 33, Name: "Soft Stretch Jeans", Price: "Rs. 799", Brand: "Biba", UserType: "Men", Category: "Jeans"},
	})
}

// NewCatalog returns a catalog over products
func NewCatalog(products []Product) *Catalog {
	return &Catalog{products: products}
}

// All returns every product
func (c *Catalog) All() []Product {
	return c.products
}

// Brands returns the brand of every product, one entry per product
func (c *Catalog) Brands() []string {
	return lo.Map(c.products, func(p Product, _ int) string {
		return p.Brand
	})
}

// Search returns the products whose name or category contains term, case-insensitively
func (c *Catalog) Search(term string) []Product {
	needle := strings.ToLower(strings.TrimSpace(term))
	return lo.Filter(c.products, func(p Product, _ int) bool {
		return strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle)
	})
}
