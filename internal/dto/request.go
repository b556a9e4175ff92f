package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EventRequest keeps the instants as raw strings so they can be reported per field.
// Both RFC 3339 and datetime-local values are accepted.
type EventRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Capacity          int      `json:"capacity"`
	Password          string   `json:"password"`
	Images            []string `json:"images" validate:"omitempty,dive,url"`
	StartTime         string   `json:"startTime"`
	EndTime           string   `json:"endTime"`
	RegistrationStart string   `json:"registrationStart"`
	RegistrationEnd   string   `json:"registrationEnd"`
}

func (r EventRequest) RawInstants() map[string]string {
	return map[string]string{
		"startTime":         r.StartTime,
		"endTime":           r.EndTime,
		"registrationStart": r.RegistrationStart,
		"registrationEnd":   r.RegistrationEnd,
	}
}

type CategoryRequest struct {
	Category string `json:"category" validate:"required"`
	Image    string `json:"image" validate:"omitempty,url"`
}

type SubcategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type PriceRequest struct {
	Standard          float64 `json:"standard" validate:"gt=0"`
	HappyHour         float64 `json:"happyHour" validate:"gte=0"`
	IsHappyHourActive bool    `json:"isHappyHourActive"`
}

type ItemRequest struct {
	Name        string       `json:"name" validate:"required"`
	Image       string       `json:"image" validate:"omitempty,url"`
	Description string       `json:"description"`
	Type        string       `json:"type" validate:"required,oneof=Veg Non-Veg Egg None"`
	Price       PriceRequest `json:"price"`
}

type HappyHourRequest struct {
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
	Image     string `json:"image" validate:"required,url"`
}

type OfferRequest struct {
	Offer       string `json:"offer" validate:"required"`
	Description string `json:"description" validate:"required"`
	IsLive      bool   `json:"isLive"`
}

type GalleryRequest struct {
	ImageURL string `json:"imageUrl" validate:"required,url"`
	Tag      string `json:"tag" validate:"required,oneof=food ambience"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

type CustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required,numeric,len=10"`
	Email string `json:"email" validate:"required,email"`
}
