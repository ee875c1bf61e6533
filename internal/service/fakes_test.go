package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/magnetmantra/magnet_api/internal/cache"
	"github.com/magnetmantra/magnet_api/internal/models"
	"github.com/magnetmantra/magnet_api/internal/repository"
	"github.com/magnetmantra/magnet_api/pkg/imagehost"
	"github.com/magnetmantra/magnet_api/pkg/mailrelay"
)

// fakeProductStore backs both the storefront reader and the admin store
// interfaces with an in-memory slice.
type fakeProductStore struct {
	products []models.Product
	listErr  error
	getErr   error

	created   []*models.Product
	updated   []*models.Product
	deleted   []int
	lockCalls []struct {
		ID     int
		Locked bool
	}
}

func (f *fakeProductStore) ListPublic(categoryID, limit int) ([]models.Product, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		if p.IsLocked {
			continue
		}
		if categoryID != 0 && p.CategoryID != categoryID {
			continue
		}
		out = append(out, p)
	}
	total := len(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeProductStore) ListAdmin(filter *repository.ProductFilter) (*repository.ProductPage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		if filter.CategoryID != 0 && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.IsLocked != nil && p.IsLocked != *filter.IsLocked {
			continue
		}
		out = append(out, p)
	}
	return &repository.ProductPage{
		Products:   out,
		TotalItems: len(out),
		TotalPages: 1,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (f *fakeProductStore) GetByID(id int) (*models.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeProductStore) Create(p *models.Product) error {
	p.ID = len(f.products) + 1
	f.created = append(f.created, p)
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductStore) Update(p *models.Product) error {
	for i := range f.products {
		if f.products[i].ID == p.ID {
			f.products[i] = *p
			f.updated = append(f.updated, p)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeProductStore) SetLocked(id int, locked bool) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].IsLocked = locked
			f.lockCalls = append(f.lockCalls, struct {
				ID     int
				Locked bool
			}{id, locked})
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeProductStore) Delete(id int) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeProductStore) CountByCategory(categoryID int) (int, error) {
	n := 0
	for _, p := range f.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

// fakeCategoryStore is an in-memory CategoryStore.
type fakeCategoryStore struct {
	categories []models.Category
	deleteErr  error
	deleted    []int
}

func (f *fakeCategoryStore) ListActive() ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.categories))
	for _, c := range f.categories {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryStore) ListAdmin(filter *repository.CategoryFilter) (*repository.CategoryPage, error) {
	out := make([]models.Category, 0, len(f.categories))
	for _, c := range f.categories {
		if filter.IsActive != nil && c.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, c)
	}
	return &repository.CategoryPage{
		Categories: out,
		TotalItems: len(out),
		TotalPages: 1,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (f *fakeCategoryStore) GetByID(id int) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeCategoryStore) Create(c *models.Category) error {
	c.ID = len(f.categories) + 1
	f.categories = append(f.categories, *c)
	return nil
}

func (f *fakeCategoryStore) Update(c *models.Category) error {
	for i := range f.categories {
		if f.categories[i].ID == c.ID {
			f.categories[i] = *c
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeCategoryStore) Delete(id int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return sql.ErrNoRows
}

// fakeInquiryStore is an in-memory InquiryStore.
type fakeInquiryStore struct {
	inquiries []models.Inquiry
	createErr error

	statusUpdates []struct {
		ID     int
		Status models.InquiryStatus
	}
}

func (f *fakeInquiryStore) List(filter *repository.InquiryFilter) (*repository.InquiryPage, error) {
	out := make([]models.Inquiry, 0, len(f.inquiries))
	for _, i := range f.inquiries {
		if filter.Status != "" && i.Status != filter.Status {
			continue
		}
		out = append(out, i)
	}
	return &repository.InquiryPage{
		Inquiries:  out,
		TotalItems: len(out),
		TotalPages: 1,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (f *fakeInquiryStore) GetByID(id int) (*models.Inquiry, error) {
	for i := range f.inquiries {
		if f.inquiries[i].ID == id {
			inq := f.inquiries[i]
			return &inq, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeInquiryStore) Create(inq *models.Inquiry) error {
	if f.createErr != nil {
		return f.createErr
	}
	inq.ID = len(f.inquiries) + 1
	inq.CreatedAt = time.Now()
	f.inquiries = append(f.inquiries, *inq)
	return nil
}

func (f *fakeInquiryStore) UpdateStatus(id int, status models.InquiryStatus) error {
	for i := range f.inquiries {
		if f.inquiries[i].ID == id {
			f.inquiries[i].Status = status
			f.statusUpdates = append(f.statusUpdates, struct {
				ID     int
				Status models.InquiryStatus
			}{id, status})
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeInquiryStore) Delete(id int) error {
	for i := range f.inquiries {
		if f.inquiries[i].ID == id {
			f.inquiries = append(f.inquiries[:i], f.inquiries[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

// fakeUserStore is an in-memory UserStore and CredentialReader.
type fakeUserStore struct {
	users []models.User

	roleUpdates []struct {
		ID   int
		Role models.UserRole
	}
}

func (f *fakeUserStore) List(filter *repository.UserFilter) (*repository.UserPage, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		out = append(out, u)
	}
	return &repository.UserPage{
		Users:      out,
		TotalItems: len(out),
		TotalPages: 1,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (f *fakeUserStore) GetByID(id int) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserStore) Create(u *models.User) error {
	u.ID = len(f.users) + 1
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserStore) UpdateRole(id int, role models.UserRole) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Role = role
			f.roleUpdates = append(f.roleUpdates, struct {
				ID   int
				Role models.UserRole
			}{id, role})
			return nil
		}
	}
	return sql.ErrNoRows
}

// fakeSnapshot records snapshot cache traffic.
type fakeSnapshot struct {
	snap        *cache.CatalogSnapshot
	getErr      error
	setErr      error
	sets        int
	invalidates int
}

func (f *fakeSnapshot) Get(ctx context.Context) (*cache.CatalogSnapshot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.snap == nil {
		return nil, sql.ErrNoRows
	}
	return f.snap, nil
}

func (f *fakeSnapshot) Set(ctx context.Context, products []models.Product, total int) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets++
	f.snap = &cache.CatalogSnapshot{Products: products, Total: total, CachedAt: time.Now()}
	return nil
}

func (f *fakeSnapshot) Invalidate(ctx context.Context) error {
	f.invalidates++
	f.snap = nil
	return nil
}

// fakeMailer records dispatched notifications.
type fakeMailer struct {
	sent    []*mailrelay.InquiryEmail
	sendErr error
}

func (f *fakeMailer) SendInquiryNotification(ctx context.Context, email *mailrelay.InquiryEmail) (*mailrelay.SendResult, error) {
	f.sent = append(f.sent, email)
	if f.sendErr != nil {
		return &mailrelay.SendResult{Success: false, Message: f.sendErr.Error()}, f.sendErr
	}
	return &mailrelay.SendResult{Success: true, Message: "queued"}, nil
}

// fakeUploader records image host traffic.
type fakeUploader struct {
	uploads   []string
	deletes   []string
	uploadErr error
}

func (f *fakeUploader) Upload(ctx context.Context, name string, data []byte) (*imagehost.UploadResult, error) {
	f.uploads = append(f.uploads, name)
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &imagehost.UploadResult{URL: "https://cdn.example.com/" + name, FileID: "file_1", Name: name}, nil
}

func (f *fakeUploader) Delete(ctx context.Context, fileID string) error {
	f.deletes = append(f.deletes, fileID)
	return nil
}
