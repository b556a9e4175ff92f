package service

import (
	"context"
	"fmt"
	"log"

	"github.com/Eursukkul/club-admin/internal/backend"
	"github.com/Eursukkul/club-admin/internal/listing"
	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/session"
	"golang.org/x/sync/errgroup"
)

// GalleryPage is the filtered images plus per-tag counts over the full gallery.
type GalleryPage struct {
	Images []models.GalleryImage
	Counts map[string]int
}

type BulkDeleteResult struct {
	Deleted []string
	// Failed maps an image id to the message of its failed delete.
	Failed map[string]string
	Page   GalleryPage
}

type GalleryService interface {
	ListImages(ctx context.Context, s session.Session, tag, search string) (GalleryPage, error)
	AddImage(ctx context.Context, s session.Session, img models.GalleryImage) (GalleryPage, error)
	DeleteImage(ctx context.Context, s session.Session, id string) (GalleryPage, error)
	BulkDelete(ctx context.Context, s session.Session, ids []string) (BulkDeleteResult, error)
}

type galleryService struct {
	api backend.GalleryAPI
	rec recorder
}

func NewGalleryService(api backend.GalleryAPI, pub ActivityPublisher, now Clock) GalleryService {
	return &galleryService{api: api, rec: recorder{pub: pub, now: orNow(now)}}
}

func (s *galleryService) ListImages(ctx context.Context, sess session.Session, tag, search string) (GalleryPage, error) {
	images, err := s.api.ListImages(ctx, sess).Unpack()
	if err != nil {
		return GalleryPage{}, fmt.Errorf("list gallery: %w", err)
	}
	filtered := listing.Apply(listing.FilterTag(images, tag), listing.Query{Search: search}, listing.Gallery)
	return GalleryPage{Images: filtered, Counts: listing.TagCounts(images)}, nil
}

func (s *galleryService) AddImage(ctx context.Context, sess session.Session, img models.GalleryImage) (GalleryPage, error) {
	img.ID = ""
	if err := s.api.AddImage(ctx, sess, img).Err(); err != nil {
		return GalleryPage{}, fmt.Errorf("add image: %w", err)
	}
	s.rec.record(sess, models.ResourceGalleryImage, models.ActionCreated, "")
	return s.ListImages(ctx, sess, "", "")
}

func (s *galleryService) DeleteImage(ctx context.Context, sess session.Session, id string) (GalleryPage, error) {
	if err := s.api.DeleteImage(ctx, sess, id).Err(); err != nil {
		return GalleryPage{}, fmt.Errorf("delete image %s: %w", id, err)
	}
	s.rec.record(sess, models.ResourceGalleryImage, models.ActionDeleted, id)
	return s.ListImages(ctx, sess, "", "")
}

// BulkDelete issues one delete per id concurrently. A failed delete neither
// cancels nor rolls back the others, and the gallery is refetched either way.
func (s *galleryService) BulkDelete(ctx context.Context, sess session.Session, ids []string) (BulkDeleteResult, error) {
	errs := make([]error, len(ids))

	var g errgroup.Group
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			errs[i] = s.api.DeleteImage(ctx, sess, id).Err()
			return nil
		})
	}
	_ = g.Wait()

	res := BulkDeleteResult{Deleted: []string{}, Failed: map[string]string{}}
	for i, id := range ids {
		if errs[i] != nil {
			log.Printf("[Gallery] bulk delete %s failed: %v", id, errs[i])
			res.Failed[id] = backend.Message(errs[i])
			continue
		}
		res.Deleted = append(res.Deleted, id)
		s.rec.record(sess, models.ResourceGalleryImage, models.ActionDeleted, id)
	}

	page, err := s.ListImages(ctx, sess, "", "")
	if err != nil {
		return res, err
	}
	res.Page = page
	return res, nil
}
