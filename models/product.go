package models

// Product is a catalog entry served by the commerce backend
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"` // minor units
	Stock       int    `json:"stock"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Customer identifies the buyer on backend records
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}
