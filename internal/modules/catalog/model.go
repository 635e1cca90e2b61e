package catalog

// Product is a catalog entry as returned by the upstream API. Catalog data
// is read-only here and never persisted.
type Product struct {
	ID                 string   `json:"_id"`
	Title              string   `json:"title"`
	Slug               string   `json:"slug,omitempty"`
	Description        string   `json:"description,omitempty"`
	Price              float64  `json:"price"`
	PriceAfterDiscount float64  `json:"priceAfterDiscount,omitempty"`
	ImageCover         string   `json:"imageCover,omitempty"`
	Images             []string `json:"images,omitempty"`
	Quantity           int      `json:"quantity,omitempty"`
	Sold               int      `json:"sold,omitempty"`
	RatingsAverage     float64  `json:"ratingsAverage,omitempty"`
	RatingsQuantity    int      `json:"ratingsQuantity,omitempty"`
	Category           *Ref     `json:"category,omitempty"`
	Brand              *Ref     `json:"brand,omitempty"`
}

// Ref is an embedded category/brand reference inside a product.
type Ref struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Category is a top-level or sub category.
type Category struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Slug  string `json:"slug,omitempty"`
	Image string `json:"image,omitempty"`
}

// Brand is a product brand.
type Brand struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Slug  string `json:"slug,omitempty"`
	Image string `json:"image,omitempty"`
}

// Metadata is the upstream pagination envelope.
type Metadata struct {
	CurrentPage   int `json:"currentPage,omitempty"`
	NumberOfPages int `json:"numberOfPages,omitempty"`
	Limit         int `json:"limit,omitempty"`
}

// ListResponse is the upstream list envelope.
type ListResponse[T any] struct {
	Results  int      `json:"results,omitempty"`
	Metadata Metadata `json:"metadata,omitempty"`
	Data     []T      `json:"data"`
}

// ItemResponse is the upstream single-item envelope.
type ItemResponse[T any] struct {
	Data T `json:"data"`
}
