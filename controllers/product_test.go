package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore-api/middleware"
	"bookstore-api/models"
	"bookstore-api/repository"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memProductRepo keeps products in memory for round-trip tests
type memProductRepo struct {
	products map[primitive.ObjectID]models.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[primitive.ObjectID]models.Product{}}
}

func (m *memProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (m *memProductRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	out := []models.Product{}
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProductRepo) Create(ctx context.Context, product *models.Product) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *product
	stored.ID = id
	m.products[id] = stored
	return id, nil
}

func (m *memProductRepo) Update(ctx context.Context, id primitive.ObjectID, update *models.ProductUpdate) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Title != nil {
		p.Title = *update.Title
	}
	if update.Author != nil {
		p.Author = *update.Author
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.CoverImage != nil {
		p.CoverImage = *update.CoverImage
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.Rating != nil {
		p.Rating = *update.Rating
	}
	if update.Genre != nil {
		p.Genre = *update.Genre
	}
	if update.Stock != nil {
		p.Stock = *update.Stock
	}
	m.products[id] = p
	return &p, nil
}

func (m *memProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := m.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *memProductRepo) AddReview(ctx context.Context, id primitive.ObjectID, review models.Review) error {
	p, ok := m.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Reviews = append(p.Reviews, review)
	m.products[id] = p
	return nil
}

func newProductRouter(pc *ProductController) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/products", pc.GetProducts).Methods("GET")
	r.HandleFunc("/products", pc.CreateProduct).Methods("POST")
	r.HandleFunc("/products/{id}", pc.GetProductByID).Methods("GET")
	r.HandleFunc("/products/{id}", pc.UpdateProduct).Methods("PUT")
	r.HandleFunc("/products/{id}", pc.DeleteProduct).Methods("DELETE")
	r.HandleFunc("/products/{id}/reviews", pc.AddReview).Methods("POST")
	return r
}

const validProductBody = `{
	"title": "The Great Gatsby",
	"author": "F. Scott Fitzgerald",
	"description": "A classic American novel",
	"coverImage": "https://example.com/gatsby.jpg",
	"price": 12.99,
	"genre": "Classic Literature",
	"stock": 25
}`

func TestCreateProduct_MissingPrice(t *testing.T) {
	router := newProductRouter(NewProductController(newMemProductRepo()))

	body := `{
		"title": "The Great Gatsby",
		"author": "F. Scott Fitzgerald",
		"description": "A classic American novel",
		"coverImage": "https://example.com/gatsby.jpg",
		"genre": "Classic Literature",
		"stock": 25
	}`
	rec := doRequest(t, router, "POST", "/products", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing price, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "price") {
		t.Fatalf("expected price mentioned in message, got %s", rec.Body.String())
	}
}

func TestCreateProduct_ThenRetrievable(t *testing.T) {
	repo := newMemProductRepo()
	router := newProductRouter(NewProductController(repo))

	rec := doRequest(t, router, "POST", "/products", validProductBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created models.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatalf("expected assigned id in response")
	}
	if created.Rating != 0 {
		t.Fatalf("expected default rating 0, got %v", created.Rating)
	}

	rec = doRequest(t, router, "GET", "/products/"+created.ID.Hex(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching created product, got %d", rec.Code)
	}
	var fetched models.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if fetched.Title != "The Great Gatsby" || fetched.Stock != 25 {
		t.Fatalf("fetched product mismatch: %+v", fetched)
	}
}

func TestUpdateProduct_StockRoundTrip(t *testing.T) {
	repo := newMemProductRepo()
	router := newProductRouter(NewProductController(repo))

	rec := doRequest(t, router, "POST", "/products", validProductBody)
	var created models.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	rec = doRequest(t, router, "PUT", "/products/"+created.ID.Hex(), `{"stock": 7}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, "GET", "/products/"+created.ID.Hex(), "")
	var fetched models.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if fetched.Stock != 7 {
		t.Fatalf("expected updated stock 7, got %d", fetched.Stock)
	}
	// all other fields unchanged
	if fetched.Title != created.Title || fetched.Author != created.Author ||
		fetched.Price != created.Price || fetched.Genre != created.Genre {
		t.Fatalf("partial update touched other fields: %+v", fetched)
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	router := newProductRouter(NewProductController(newMemProductRepo()))

	rec := doRequest(t, router, "PUT", "/products/"+primitive.NewObjectID().Hex(), `{"stock": 7}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteProduct_NotFound(t *testing.T) {
	router := newProductRouter(NewProductController(newMemProductRepo()))

	rec := doRequest(t, router, "DELETE", "/products/"+primitive.NewObjectID().Hex(), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetProducts_EmptyIsArray(t *testing.T) {
	router := newProductRouter(NewProductController(newMemProductRepo()))

	rec := doRequest(t, router, "GET", "/products", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected empty array body, got %s", got)
	}
}

func TestGetProductByID_InvalidHex(t *testing.T) {
	router := newProductRouter(NewProductController(newMemProductRepo()))

	rec := doRequest(t, router, "GET", "/products/not-a-hex-id", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAddReview_ValidatesRatingAndAppends(t *testing.T) {
	repo := newMemProductRepo()
	router := newProductRouter(NewProductController(repo))

	rec := doRequest(t, router, "POST", "/products", validProductBody)
	var created models.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	reviewer := &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}
	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/products/"+created.ID.Hex()+"/reviews", strings.NewReader(body))
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, reviewer))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	if rec := post(`{"rating": 6, "comment": "off the scale"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for rating 6, got %d", rec.Code)
	}
	if rec := post(`{"rating": 0}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for rating 0, got %d", rec.Code)
	}

	if rec := post(`{"rating": 4, "comment": "great read"}`); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	stored := repo.products[created.ID]
	if len(stored.Reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(stored.Reviews))
	}
	if stored.Reviews[0].UserID != reviewer.ID {
		t.Fatalf("review not stamped with reviewer id")
	}
	if stored.Reviews[0].CreatedAt.IsZero() {
		t.Fatalf("review missing creation timestamp")
	}
}

func TestAddReview_ProductNotFound(t *testing.T) {
	router := newProductRouter(NewProductController(newMemProductRepo()))

	reviewer := &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}
	path := fmt.Sprintf("/products/%s/reviews", primitive.NewObjectID().Hex())
	req := httptest.NewRequest("POST", path, strings.NewReader(`{"rating": 4}`))
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, reviewer))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
