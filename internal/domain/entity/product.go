package entity

// Product is a catalog entry as returned by the commerce API.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Featured    bool    `json:"featured"`
}

// ProductPage is one page of catalog results.
type ProductPage struct {
	Products []Product `json:"products"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Total    int       `json:"total"`
}

// ProductQuery holds the supported catalog filters. Zero values are omitted
// from the request.
type ProductQuery struct {
	Page     int
	Limit    int
	Search   string
	Category string
}
