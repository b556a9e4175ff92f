package handler

import (
	"context"

	"github.com/Eursukkul/club-admin/internal/backend"
	"github.com/Eursukkul/club-admin/internal/listing"
	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/repository"
	"github.com/Eursukkul/club-admin/internal/service"
	"github.com/Eursukkul/club-admin/internal/session"
)

// --- Mock services ---

type mockAuthService struct {
	loginFn func(ctx context.Context, email, password string) (session.Session, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (session.Session, error) {
	return m.loginFn(ctx, email, password)
}

type mockEventService struct {
	listFn   func(ctx context.Context, s session.Session, f service.EventFilter) ([]service.EventSnapshot, error)
	getFn    func(ctx context.Context, s session.Session, id string) (service.EventSnapshot, error)
	createFn func(ctx context.Context, s session.Session, in service.EventInput) error
	updateFn func(ctx context.Context, s session.Session, id string, in service.EventInput) (service.EventSnapshot, error)
	deleteFn func(ctx context.Context, s session.Session, id string) error
}

func (m *mockEventService) ListEvents(ctx context.Context, s session.Session, f service.EventFilter) ([]service.EventSnapshot, error) {
	return m.listFn(ctx, s, f)
}
func (m *mockEventService) GetEvent(ctx context.Context, s session.Session, id string) (service.EventSnapshot, error) {
	return m.getFn(ctx, s, id)
}
func (m *mockEventService) CreateEvent(ctx context.Context, s session.Session, in service.EventInput) error {
	return m.createFn(ctx, s, in)
}
func (m *mockEventService) UpdateEvent(ctx context.Context, s session.Session, id string, in service.EventInput) (service.EventSnapshot, error) {
	return m.updateFn(ctx, s, id, in)
}
func (m *mockEventService) DeleteEvent(ctx context.Context, s session.Session, id string) error {
	return m.deleteFn(ctx, s, id)
}

type mockHappyHourService struct {
	getFn  func(ctx context.Context, s session.Session) (*models.HappyHour, error)
	saveFn func(ctx context.Context, s session.Session, h models.HappyHour) (*models.HappyHour, error)
}

func (m *mockHappyHourService) GetHappyHour(ctx context.Context, s session.Session) (*models.HappyHour, error) {
	return m.getFn(ctx, s)
}
func (m *mockHappyHourService) SaveHappyHour(ctx context.Context, s session.Session, h models.HappyHour) (*models.HappyHour, error) {
	return m.saveFn(ctx, s, h)
}

type mockOfferService struct {
	listFn   func(ctx context.Context, s session.Session, q listing.Query) ([]models.Offer, error)
	createFn func(ctx context.Context, s session.Session, in backend.OfferInput) ([]models.Offer, error)
	toggleFn func(ctx context.Context, s session.Session, id string) (models.Offer, error)
}

func (m *mockOfferService) ListOffers(ctx context.Context, s session.Session, q listing.Query) ([]models.Offer, error) {
	return m.listFn(ctx, s, q)
}
func (m *mockOfferService) CreateOffer(ctx context.Context, s session.Session, in backend.OfferInput) ([]models.Offer, error) {
	return m.createFn(ctx, s, in)
}
func (m *mockOfferService) UpdateOffer(ctx context.Context, s session.Session, id string, in backend.OfferInput) ([]models.Offer, error) {
	return nil, nil
}
func (m *mockOfferService) ToggleOffer(ctx context.Context, s session.Session, id string) (models.Offer, error) {
	return m.toggleFn(ctx, s, id)
}
func (m *mockOfferService) DeleteOffer(ctx context.Context, s session.Session, id string) ([]models.Offer, error) {
	return nil, nil
}

type mockGalleryService struct {
	listFn       func(ctx context.Context, s session.Session, tag, search string) (service.GalleryPage, error)
	bulkDeleteFn func(ctx context.Context, s session.Session, ids []string) (service.BulkDeleteResult, error)
}

func (m *mockGalleryService) ListImages(ctx context.Context, s session.Session, tag, search string) (service.GalleryPage, error) {
	return m.listFn(ctx, s, tag, search)
}
func (m *mockGalleryService) AddImage(ctx context.Context, s session.Session, img models.GalleryImage) (service.GalleryPage, error) {
	return service.GalleryPage{}, nil
}
func (m *mockGalleryService) DeleteImage(ctx context.Context, s session.Session, id string) (service.GalleryPage, error) {
	return service.GalleryPage{}, nil
}
func (m *mockGalleryService) BulkDelete(ctx context.Context, s session.Session, ids []string) (service.BulkDeleteResult, error) {
	return m.bulkDeleteFn(ctx, s, ids)
}

type mockCustomerService struct {
	listFn     func(ctx context.Context, s session.Session, q listing.Query) ([]models.Customer, error)
	registerFn func(ctx context.Context, s session.Session, eventID string, in backend.CustomerInput) (string, error)
}

func (m *mockCustomerService) ListCustomers(ctx context.Context, s session.Session, q listing.Query) ([]models.Customer, error) {
	return m.listFn(ctx, s, q)
}
func (m *mockCustomerService) GetCustomer(ctx context.Context, s session.Session, id string) (models.CustomerDetail, error) {
	return models.CustomerDetail{}, nil
}
func (m *mockCustomerService) UpdateCustomer(ctx context.Context, s session.Session, id string, in backend.CustomerInput) (models.CustomerDetail, error) {
	return models.CustomerDetail{}, nil
}
func (m *mockCustomerService) DeleteCustomer(ctx context.Context, s session.Session, id string) error {
	return nil
}
func (m *mockCustomerService) RegisterCustomer(ctx context.Context, s session.Session, eventID string, in backend.CustomerInput) (string, error) {
	return m.registerFn(ctx, s, eventID, in)
}

type mockActivityRepo struct {
	listFn func(ctx context.Context, f repository.ActivityFilter) ([]models.Activity, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, a *models.Activity) error {
	return nil
}
func (m *mockActivityRepo) List(ctx context.Context, f repository.ActivityFilter) ([]models.Activity, error) {
	return m.listFn(ctx, f)
}
