package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore-api/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---- fake repositories for handler tests ----

type fakeProductRepo struct {
	FindAllFn   func(ctx context.Context) ([]models.Product, error)
	FindByIDFn  func(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByIDsFn func(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	CreateFn    func(ctx context.Context, product *models.Product) (primitive.ObjectID, error)
	UpdateFn    func(ctx context.Context, id primitive.ObjectID, update *models.ProductUpdate) (*models.Product, error)
	DeleteFn    func(ctx context.Context, id primitive.ObjectID) error
	AddReviewFn func(ctx context.Context, id primitive.ObjectID, review models.Review) error
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeProductRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	return f.FindByIDsFn(ctx, ids)
}
func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) (primitive.ObjectID, error) {
	return f.CreateFn(ctx, product)
}
func (f *fakeProductRepo) Update(ctx context.Context, id primitive.ObjectID, update *models.ProductUpdate) (*models.Product, error) {
	return f.UpdateFn(ctx, id, update)
}
func (f *fakeProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeProductRepo) AddReview(ctx context.Context, id primitive.ObjectID, review models.Review) error {
	return f.AddReviewFn(ctx, id, review)
}

type fakeUserRepo struct {
	FindByIDFn    func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmailFn func(ctx context.Context, email string) (*models.User, error)
	CreateFn      func(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	EmailExistsFn func(ctx context.Context, email string) (bool, error)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.FindByEmailFn(ctx, email)
}
func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	return f.CreateFn(ctx, user)
}
func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return f.EmailExistsFn(ctx, email)
}

// ---- request helpers ----

func doRequest(t *testing.T, handler http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
