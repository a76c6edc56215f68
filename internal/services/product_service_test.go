package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kilimopesa_backend/internal/models"
	"kilimopesa_backend/internal/repositories"
	"kilimopesa_backend/internal/services/dto"
	"kilimopesa_backend/pkg/apperrors"
)

type fakeProductRepo struct {
	products map[string]*models.Product
	nextID   int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*models.Product)}
}

func (r *fakeProductRepo) Create(_ *gorm.DB, p *models.Product) error {
	r.nextID++
	p.ID = string(rune('p' - 1 + r.nextID))
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) FindByID(_ *gorm.DB, id string) (*models.Product, error) {
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repositories.ErrProductNotFound
}

func (r *fakeProductRepo) FindAll(_ *gorm.DB) ([]models.Product, error) {
	out := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ *gorm.DB, p *models.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return repositories.ErrProductNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ *gorm.DB, id string) error {
	if _, ok := r.products[id]; !ok {
		return repositories.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*models.Category
}

func newFakeCategoryRepo(ids ...string) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[string]*models.Category)}
	for _, id := range ids {
		r.categories[id] = &models.Category{BaseModel: models.BaseModel{ID: id}, Name: models.CategoryNafaka}
	}
	return r
}

func (r *fakeCategoryRepo) FindAll(_ *gorm.DB) ([]models.Category, error) {
	out := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindByID(_ *gorm.DB, id string) (*models.Category, error) {
	if c, ok := r.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, repositories.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindByName(_ *gorm.DB, name models.CategoryName) (*models.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repositories.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) Create(_ *gorm.DB, c *models.Category) error {
	if c.ID == "" {
		c.ID = "cat-" + string(c.Name)
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func TestProductCreate_RejectsUnknownCategory(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), newFakeCategoryRepo("cat-1"))

	_, err := svc.Create(context.Background(), nil, "user-1", &dto.CreateProductRequest{
		CategoryID: "cat-missing", Name: "Mahindi", Description: "Maize", Price: 100, Quantity: 5,
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestProductUpdate_OwnerOnlyAndPartial(t *testing.T) {
	products := newFakeProductRepo()
	svc := NewProductService(products, newFakeCategoryRepo("cat-1"))
	ctx := context.Background()

	created, err := svc.Create(ctx, nil, "user-1", &dto.CreateProductRequest{
		CategoryID: "cat-1", Name: "Mahindi", Description: "Maize", Price: 100, Quantity: 5,
	})
	require.NoError(t, err)

	// Another user is refused before any field is touched.
	newPrice := 1.0
	_, err = svc.Update(ctx, nil, "user-2", created.ID, &dto.UpdateProductRequest{Price: &newPrice})
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	// The owner updates one field; the rest stay put.
	price := 150.0
	updated, err := svc.Update(ctx, nil, "user-1", created.ID, &dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.Price)
	assert.Equal(t, "Mahindi", updated.Name)
	assert.Equal(t, uint(5), updated.Quantity)
}

func TestProductDelete_OwnerOnly(t *testing.T) {
	products := newFakeProductRepo()
	svc := NewProductService(products, newFakeCategoryRepo("cat-1"))
	ctx := context.Background()

	created, err := svc.Create(ctx, nil, "user-1", &dto.CreateProductRequest{
		CategoryID: "cat-1", Name: "Mahindi", Description: "Maize", Price: 100, Quantity: 5,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, nil, "user-2", created.ID), apperrors.ErrNotOwner)
	require.NoError(t, svc.Delete(ctx, nil, "user-1", created.ID))

	_, err = svc.Get(ctx, nil, created.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestCategorySeed_Idempotent(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx, nil))
	first := len(repo.categories)
	assert.Equal(t, len(models.AllCategoryNames()), first)

	require.NoError(t, svc.Seed(ctx, nil))
	assert.Equal(t, first, len(repo.categories), "Reseeding must not duplicate rows")
}
