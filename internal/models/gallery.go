package models

type GalleryTag string

const (
	TagFood     GalleryTag = "food"
	TagAmbience GalleryTag = "ambience"
)

type GalleryImage struct {
	ID       string     `json:"_id,omitempty"`
	ImageURL string     `json:"imageUrl"`
	Tag      GalleryTag `json:"tag"`
}
