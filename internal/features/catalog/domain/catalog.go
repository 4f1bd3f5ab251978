package domain

// Product is a shoe model as managed from the dashboard. Pricing and stock
// rules live in the backend; the gateway carries the fields the UI shows.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BrandID     string   `json:"brandId"`
	CategoryID  string   `json:"categoryId"`
	Price       float64  `json:"price"`
	Sizes       []string `json:"sizes"`
	ImageURLs   []string `json:"imageUrls"`
	Active      bool     `json:"active"`
}

// Brand is a shoe brand.
type Brand struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}

// Category groups products for browsing.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
