package req

// MaxRoomImages caps how many images a listing may carry. Enforced before any
// storage call so an oversized batch never reaches the object store.
const MaxRoomImages = 5

type CreateRoomRequest struct {
	Title            string   `json:"title" validate:"required,min=5"`
	Description      string   `json:"description" validate:"omitempty"`
	Location         string   `json:"location" validate:"required,min=3"`
	City             string   `json:"city" validate:"required,min=2"`
	RentPrice        float64  `json:"rentPrice" validate:"required,gt=0"`
	PropertyType     string   `json:"propertyType" validate:"required,oneof='1 BHK' '2 BHK' '3 BHK' '1 Bed' '2 Bed' '3 Bed' 'Studio'"`
	TenantPreference string   `json:"tenantPreference" validate:"omitempty,oneof=Bachelor Family 'Girls Only' 'Working Professionals' Any"`
	ContactNumber    string   `json:"contactNumber" validate:"required,min=10"`
	Images           []string `json:"images" validate:"max=5,dive,url"`
	IsAvailable      *bool    `json:"isAvailable"`
}

// UpdateRoomRequest is a partial update; nil fields leave the stored value
// untouched.
type UpdateRoomRequest struct {
	Title            *string  `json:"title" validate:"omitempty,min=5"`
	Description      *string  `json:"description"`
	Location         *string  `json:"location" validate:"omitempty,min=3"`
	City             *string  `json:"city" validate:"omitempty,min=2"`
	RentPrice        *float64 `json:"rentPrice" validate:"omitempty,gt=0"`
	PropertyType     *string  `json:"propertyType" validate:"omitempty,oneof='1 BHK' '2 BHK' '3 BHK' '1 Bed' '2 Bed' '3 Bed' 'Studio'"`
	TenantPreference *string  `json:"tenantPreference" validate:"omitempty,oneof=Bachelor Family 'Girls Only' 'Working Professionals' Any"`
	ContactNumber    *string  `json:"contactNumber" validate:"omitempty,min=10"`
	Images           []string `json:"images" validate:"omitempty,max=5,dive,url"`
	IsAvailable      *bool    `json:"isAvailable"`
}

// RoomFilters are ANDed together; a zero field imposes no constraint.
type RoomFilters struct {
	City             string  `json:"city" query:"city"`
	MinPrice         float64 `json:"minPrice" query:"minPrice"`
	MaxPrice         float64 `json:"maxPrice" query:"maxPrice"`
	PropertyType     string  `json:"propertyType" query:"propertyType"`
	TenantPreference string  `json:"tenantPreference" query:"tenantPreference"`
}
