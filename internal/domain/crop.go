package domain

// Crop is an item that may be picked, such as a zucchini or an orange.
// Crops live in a master catalog and are referenced by plots, orders
// and picks.
type Crop struct {
	ID       int32  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}
