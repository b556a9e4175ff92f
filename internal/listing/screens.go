package listing

import (
	"strings"
	"time"

	"github.com/Eursukkul/club-admin/internal/models"
)

var Offers = Spec[models.Offer]{
	Match: func(o models.Offer, term string) bool {
		return Contains(o.Offer, term) || Contains(o.Description, term)
	},
	Sorters: map[string]func(a, b models.Offer) int{
		"offer":     ByString(func(o models.Offer) string { return o.Offer }),
		"isLive":    ByBool(func(o models.Offer) bool { return o.IsLive }),
		"createdAt": ByTime(func(o models.Offer) time.Time { return o.CreatedAt }),
		"updatedAt": ByTime(func(o models.Offer) time.Time { return o.UpdatedAt }),
	},
}

var Customers = Spec[models.Customer]{
	Match: func(c models.Customer, term string) bool {
		return Contains(c.Name, term) || strings.Contains(c.Phone, term) || Contains(c.Email, term)
	},
	Sorters: map[string]func(a, b models.Customer) int{
		"name":      ByString(func(c models.Customer) string { return c.Name }),
		"phone":     ByString(func(c models.Customer) string { return c.Phone }),
		"email":     ByString(func(c models.Customer) string { return c.Email }),
		"createdAt": ByTime(func(c models.Customer) time.Time { return c.CreatedAt }),
		"updatedAt": ByTime(func(c models.Customer) time.Time { return c.UpdatedAt }),
	},
}

var Categories = Spec[models.MenuCategory]{
	Match: func(c models.MenuCategory, term string) bool {
		return Contains(c.Category, term)
	},
}

var Events = Spec[models.Event]{
	Match: func(e models.Event, term string) bool {
		return Contains(e.Name, term) || Contains(e.Description, term)
	},
	Sorters: map[string]func(a, b models.Event) int{
		"name":      ByString(func(e models.Event) string { return e.Name }),
		"startTime": ByTime(func(e models.Event) time.Time { return e.StartTime }),
	},
}

// Gallery search matches on the tag only; the images carry no other text.
var Gallery = Spec[models.GalleryImage]{
	Match: func(img models.GalleryImage, term string) bool {
		return Contains(string(img.Tag), term)
	},
}

// FilterTag keeps images with the given tag; "all" or empty keeps everything.
func FilterTag(images []models.GalleryImage, tag string) []models.GalleryImage {
	if tag == "" || tag == "all" {
		return clone(images)
	}
	out := make([]models.GalleryImage, 0, len(images))
	for _, img := range images {
		if string(img.Tag) == tag {
			out = append(out, img)
		}
	}
	return out
}

// TagCounts counts images per tag, with the total under "all".
func TagCounts(images []models.GalleryImage) map[string]int {
	counts := map[string]int{
		"all":                      len(images),
		string(models.TagFood):     0,
		string(models.TagAmbience): 0,
	}
	for _, img := range images {
		counts[string(img.Tag)]++
	}
	return counts
}

// Subcategories filters items by name or description and keeps a subcategory when
// its own name matches or any of its items survived.
func Subcategories(subs []models.MenuSubcategory, search string) []models.MenuSubcategory {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return clone(subs)
	}

	out := make([]models.MenuSubcategory, 0, len(subs))
	for _, sub := range subs {
		items := make([]models.MenuItem, 0, len(sub.Items))
		for _, item := range sub.Items {
			if Contains(item.Name, term) || Contains(item.Description, term) {
				items = append(items, item)
			}
		}
		if Contains(sub.Name, term) || len(items) > 0 {
			sub.Items = items
			out = append(out, sub)
		}
	}
	return out
}

func clone[T any](s []T) []T {
	return append(make([]T, 0, len(s)), s...)
}
