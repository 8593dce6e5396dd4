package model

import "time"

// PropertyType classifies a home listing.
type PropertyType string

const (
	PropertyResidential PropertyType = "RESIDENTIAL"
	PropertyCondo       PropertyType = "CONDO"
)

// ParsePropertyType maps a query/body string onto a known property type.
func ParsePropertyType(s string) (PropertyType, bool) {
	switch PropertyType(s) {
	case PropertyResidential, PropertyCondo:
		return PropertyType(s), true
	default:
		return "", false
	}
}

// Home represents a property listing in the database.
type Home struct {
	ID                int64
	Address           string
	City              string
	Price             float64
	LandSize          float64
	NumberOfBedrooms  int
	NumberOfBathrooms float64
	PropertyType      PropertyType
	ListedDate        time.Time
	RealtorID         int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Images            []string
}

// HomeFilter narrows a listing search. Nil fields are not applied.
type HomeFilter struct {
	City         string
	MinPrice     *float64
	MaxPrice     *float64
	PropertyType PropertyType
}

// CreateHomeRequest represents a listing creation request body.
type CreateHomeRequest struct {
	Address           string         `json:"address"`
	City              string         `json:"city"`
	Price             float64        `json:"price"`
	LandSize          float64        `json:"land_size"`
	NumberOfBedrooms  int            `json:"number_of_bedrooms"`
	NumberOfBathrooms float64        `json:"number_of_bathrooms"`
	PropertyType      string         `json:"property_type"`
	ListedDate        time.Time      `json:"listed_date"`
	Images            []ImageRequest `json:"images"`
}

// ImageRequest is a single listing image in a creation request.
type ImageRequest struct {
	URL string `json:"url"`
}

// UpdateHomeRequest represents a partial listing update. Nil fields
// keep their stored value.
type UpdateHomeRequest struct {
	Address           *string    `json:"address"`
	City              *string    `json:"city"`
	Price             *float64   `json:"price"`
	LandSize          *float64   `json:"land_size"`
	NumberOfBedrooms  *int       `json:"number_of_bedrooms"`
	NumberOfBathrooms *float64   `json:"number_of_bathrooms"`
	PropertyType      *string    `json:"property_type"`
	ListedDate        *time.Time `json:"listed_date"`
}

// HomeResponse represents a listing in API responses. Image is the
// first stored image URL, if any.
type HomeResponse struct {
	ID                int64        `json:"id"`
	Address           string       `json:"address"`
	City              string       `json:"city"`
	Price             float64      `json:"price"`
	LandSize          float64      `json:"land_size"`
	NumberOfBedrooms  int          `json:"number_of_bedrooms"`
	NumberOfBathrooms float64      `json:"number_of_bathrooms"`
	PropertyType      PropertyType `json:"property_type"`
	ListedDate        time.Time    `json:"listed_date"`
	Image             string       `json:"image,omitempty"`
	Images            []string     `json:"images,omitempty"`
}

// Owner identifies the realtor a listing belongs to.
type Owner struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
