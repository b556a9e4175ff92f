package service

import (
	"context"
	"sync"

	"github.com/Eursukkul/club-admin/internal/backend"
	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/session"
)

// --- Mock backend APIs ---

type mockAuthAPI struct {
	loginFn func(ctx context.Context, creds backend.Credentials) backend.Result[backend.Login]
}

func (m *mockAuthAPI) Login(ctx context.Context, creds backend.Credentials) backend.Result[backend.Login] {
	return m.loginFn(ctx, creds)
}

type mockEventAPI struct {
	listFn   func(ctx context.Context, s session.Session) backend.Result[[]models.Event]
	getFn    func(ctx context.Context, s session.Session, id string) backend.Result[models.Event]
	createFn func(ctx context.Context, s session.Session, e models.Event) backend.Result[struct{}]
	updateFn func(ctx context.Context, s session.Session, id string, e models.Event) backend.Result[models.Event]
	deleteFn func(ctx context.Context, s session.Session, id string) backend.Result[struct{}]
}

func (m *mockEventAPI) ListEvents(ctx context.Context, s session.Session) backend.Result[[]models.Event] {
	return m.listFn(ctx, s)
}
func (m *mockEventAPI) GetEvent(ctx context.Context, s session.Session, id string) backend.Result[models.Event] {
	return m.getFn(ctx, s, id)
}
func (m *mockEventAPI) CreateEvent(ctx context.Context, s session.Session, e models.Event) backend.Result[struct{}] {
	return m.createFn(ctx, s, e)
}
func (m *mockEventAPI) UpdateEvent(ctx context.Context, s session.Session, id string, e models.Event) backend.Result[models.Event] {
	return m.updateFn(ctx, s, id, e)
}
func (m *mockEventAPI) DeleteEvent(ctx context.Context, s session.Session, id string) backend.Result[struct{}] {
	return m.deleteFn(ctx, s, id)
}

type mockMenuAPI struct {
	listCategoriesFn    func(ctx context.Context, s session.Session) backend.Result[[]models.MenuCategory]
	createCategoryFn    func(ctx context.Context, s session.Session, cat models.MenuCategory) backend.Result[struct{}]
	listSubcategoriesFn func(ctx context.Context, s session.Session, categoryID string) backend.Result[[]models.MenuSubcategory]
	createItemFn        func(ctx context.Context, s session.Session, categoryID, subID string, item models.MenuItem) backend.Result[struct{}]
}

func (m *mockMenuAPI) ListCategories(ctx context.Context, s session.Session) backend.Result[[]models.MenuCategory] {
	return m.listCategoriesFn(ctx, s)
}
func (m *mockMenuAPI) CreateCategory(ctx context.Context, s session.Session, cat models.MenuCategory) backend.Result[struct{}] {
	return m.createCategoryFn(ctx, s, cat)
}
func (m *mockMenuAPI) UpdateCategory(ctx context.Context, s session.Session, id string, cat models.MenuCategory) backend.Result[struct{}] {
	return backend.Success(struct{}{})
}
func (m *mockMenuAPI) DeleteCategory(ctx context.Context, s session.Session, id string) backend.Result[struct{}] {
	return backend.Success(struct{}{})
}
func (m *mockMenuAPI) ListSubcategories(ctx context.Context, s session.Session, categoryID string) backend.Result[[]models.MenuSubcategory] {
	return m.listSubcategoriesFn(ctx, s, categoryID)
}
func (m *mockMenuAPI) CreateSubcategory(ctx context.Context, s session.Session, categoryID, name string) backend.Result[struct{}] {
	return backend.Success(struct{}{})
}
func (m *mockMenuAPI) UpdateSubcategory(ctx context.Context, s session.Session, categoryID, subID, name string) backend.Result[struct{}] {
	return backend.Success(struct{}{})
}
func (m *mockMenuAPI) DeleteSubcategory(ctx context.Context, s session.Session, categoryID, subID string) backend.Result[struct{}] {
	return backend.Success(struct{}{})
}
func (m *mockMenuAPI) CreateItem(ctx context.Context, s session.Session, categoryID, subID string, item models.MenuItem) backend.Result[struct{}] {
	return m.createItemFn(ctx, s, categoryID, subID, item)
}
func (m *mockMenuAPI) UpdateItem(ctx context.Context, s session.Session, categoryID, subID, itemID string, item models.MenuItem) backend.Result[struct{}] {
	return backend.Success(struct{}{})
}
func (m *mockMenuAPI) DeleteItem(ctx context.Context, s session.Session, categoryID, subID, itemID string) backend.Result[struct{}] {
	return backend.Success(struct{}{})
}

type mockHappyHourAPI struct {
	getFn     func(ctx context.Context, s session.Session) backend.Result[*models.HappyHour]
	createFn  func(ctx context.Context, s session.Session, h models.HappyHour) backend.Result[*models.HappyHour]
	replaceFn func(ctx context.Context, s session.Session, id string, h models.HappyHour) backend.Result[*models.HappyHour]
}

func (m *mockHappyHourAPI) GetHappyHour(ctx context.Context, s session.Session) backend.Result[*models.HappyHour] {
	return m.getFn(ctx, s)
}
func (m *mockHappyHourAPI) CreateHappyHour(ctx context.Context, s session.Session, h models.HappyHour) backend.Result[*models.HappyHour] {
	return m.createFn(ctx, s, h)
}
func (m *mockHappyHourAPI) ReplaceHappyHour(ctx context.Context, s session.Session, id string, h models.HappyHour) backend.Result[*models.HappyHour] {
	return m.replaceFn(ctx, s, id, h)
}

type mockOfferAPI struct {
	listFn   func(ctx context.Context, s session.Session) backend.Result[[]models.Offer]
	createFn func(ctx context.Context, s session.Session, in backend.OfferInput) backend.Result[struct{}]
	updateFn func(ctx context.Context, s session.Session, id string, in backend.OfferInput) backend.Result[struct{}]
	deleteFn func(ctx context.Context, s session.Session, id string) backend.Result[struct{}]
}

func (m *mockOfferAPI) ListOffers(ctx context.Context, s session.Session) backend.Result[[]models.Offer] {
	return m.listFn(ctx, s)
}
func (m *mockOfferAPI) CreateOffer(ctx context.Context, s session.Session, in backend.OfferInput) backend.Result[struct{}] {
	return m.createFn(ctx, s, in)
}
func (m *mockOfferAPI) UpdateOffer(ctx context.Context, s session.Session, id string, in backend.OfferInput) backend.Result[struct{}] {
	return m.updateFn(ctx, s, id, in)
}
func (m *mockOfferAPI) DeleteOffer(ctx context.Context, s session.Session, id string) backend.Result[struct{}] {
	return m.deleteFn(ctx, s, id)
}

type mockGalleryAPI struct {
	listFn   func(ctx context.Context, s session.Session) backend.Result[[]models.GalleryImage]
	addFn    func(ctx context.Context, s session.Session, img models.GalleryImage) backend.Result[struct{}]
	deleteFn func(ctx context.Context, s session.Session, id string) backend.Result[struct{}]
}

func (m *mockGalleryAPI) ListImages(ctx context.Context, s session.Session) backend.Result[[]models.GalleryImage] {
	return m.listFn(ctx, s)
}
func (m *mockGalleryAPI) AddImage(ctx context.Context, s session.Session, img models.GalleryImage) backend.Result[struct{}] {
	return m.addFn(ctx, s, img)
}
func (m *mockGalleryAPI) DeleteImage(ctx context.Context, s session.Session, id string) backend.Result[struct{}] {
	return m.deleteFn(ctx, s, id)
}

type mockCustomerAPI struct {
	listFn     func(ctx context.Context, s session.Session) backend.Result[[]models.Customer]
	getFn      func(ctx context.Context, s session.Session, id string) backend.Result[models.CustomerDetail]
	updateFn   func(ctx context.Context, s session.Session, id string, in backend.CustomerInput) backend.Result[models.Customer]
	deleteFn   func(ctx context.Context, s session.Session, id string) backend.Result[struct{}]
	registerFn func(ctx context.Context, s session.Session, eventID string, in backend.CustomerInput) backend.Result[string]
}

func (m *mockCustomerAPI) ListCustomers(ctx context.Context, s session.Session) backend.Result[[]models.Customer] {
	return m.listFn(ctx, s)
}
func (m *mockCustomerAPI) GetCustomer(ctx context.Context, s session.Session, id string) backend.Result[models.CustomerDetail] {
	return m.getFn(ctx, s, id)
}
func (m *mockCustomerAPI) UpdateCustomer(ctx context.Context, s session.Session, id string, in backend.CustomerInput) backend.Result[models.Customer] {
	return m.updateFn(ctx, s, id, in)
}
func (m *mockCustomerAPI) DeleteCustomer(ctx context.Context, s session.Session, id string) backend.Result[struct{}] {
	return m.deleteFn(ctx, s, id)
}
func (m *mockCustomerAPI) RegisterCustomer(ctx context.Context, s session.Session, eventID string, in backend.CustomerInput) backend.Result[string] {
	return m.registerFn(ctx, s, eventID, in)
}

// --- Mock publisher ---

type published struct {
	key      string
	activity *models.Activity
}

type mockPublisher struct {
	mu   sync.Mutex
	sent []published
	err  error
}

func (m *mockPublisher) Publish(routingKey string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, _ := payload.(*models.Activity)
	m.sent = append(m.sent, published{key: routingKey, activity: a})
	return m.err
}

func (m *mockPublisher) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.sent))
	for i, p := range m.sent {
		out[i] = p.key
	}
	return out
}
