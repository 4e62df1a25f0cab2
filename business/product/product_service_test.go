package product

import (
	"context"
	"errors"
	"testing"

	"personamart/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	created    []domain.Product
	byID       map[uint64]domain.Product
	lastFilter ListFilter
}

func (f *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	product.ID = uint64(len(f.created) + 1)
	f.created = append(f.created, *product)
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uint64) (domain.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return domain.Product{}, errors.New("product not found")
	}
	return p, nil
}

func (f *fakeProductRepo) FindListed(_ context.Context, filter ListFilter) ([]domain.Product, error) {
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *domain.Product) error {
	if _, ok := f.byID[product.ID]; !ok {
		return errors.New("product not found")
	}
	f.byID[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := f.byID[id]; !ok {
		return errors.New("product not found")
	}
	delete(f.byID, id)
	return nil
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{})

	cases := []struct {
		name    string
		product domain.Product
		wantErr string
	}{
		{"missing name", domain.Product{Category: "Books", Price: 10}, "product name is required"},
		{"missing category", domain.Product{Name: "X", Price: 10}, "product category is required"},
		{"zero price", domain.Product{Name: "X", Category: "Books"}, "price must be greater than 0"},
		{"bad rating", domain.Product{Name: "X", Category: "Books", Price: 10, Rating: 6}, "rating must be between 0 and 5"},
		{"bad discount", domain.Product{Name: "X", Category: "Books", Price: 10, DiscountPercentage: 120}, "discount percentage must be between 0 and 100"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), &tc.product)
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())
		})
	}
}

func TestCreateProductSuccess(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	created, err := svc.CreateProduct(context.Background(), &domain.Product{
		Name:     "Garden Trowel",
		Category: "Home & Garden",
		Price:    12.50,
		Rating:   4.2,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Len(t, repo.created, 1)
}

func TestGetProductsCapsLimit(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	_, err := svc.GetProducts(context.Background(), ListFilter{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastFilter.Limit)

	_, err = svc.GetProducts(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastFilter.Limit)
}

func TestDeleteProductNotFound(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{byID: map[uint64]domain.Product{}})

	err := svc.DeleteProduct(context.Background(), 9)
	require.Error(t, err)
	assert.Equal(t, "product not found", err.Error())
}
