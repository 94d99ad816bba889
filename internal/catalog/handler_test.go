package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(Builtin())
	r.GET("/api/products", h.List)
	r.GET("/api/products/:id", h.Get)
	return r
}

func TestListProducts(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/products", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Count    int       `json:"count"`
		Products []Product `json:"products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.Count != 50 || len(body.Products) != 50 {
		t.Errorf("expected 50 products, got count=%d len=%d", body.Count, len(body.Products))
	}
}

func TestListProductsWeightSearch(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/products?weight=520&tolerance=0.02", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Count    int       `json:"count"`
		Products []Product `json:"products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	for _, p := range body.Products {
		if p.UnitWeightG < 520*0.98 || p.UnitWeightG > 520*1.02 {
			t.Errorf("%s (%vg) outside requested band", p.Name, p.UnitWeightG)
		}
	}
	if body.Count == 0 {
		t.Error("expected 500ml bottles to match")
	}
}

func TestListProductsBadQuery(t *testing.T) {
	r := newTestRouter()

	for _, url := range []string{
		"/api/products?weight=abc",
		"/api/products?weight=-10",
		"/api/products?weight=100&tolerance=2",
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", url, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", url, w.Code)
		}
	}
}

func TestGetProductByID(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/products/26", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var p Product
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if p.ID != 26 || p.Name != "chickenmayo_rice" {
		t.Errorf("unexpected product: %+v", p)
	}
}

func TestGetProductByName(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/products/vita500", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var p Product
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if p.ID != 9 {
		t.Errorf("expected vita500 (id 9), got %+v", p)
	}
}

func TestGetProductNotFound(t *testing.T) {
	r := newTestRouter()

	for _, url := range []string{"/api/products/999", "/api/products/no_such_item"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", url, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", url, w.Code)
		}
	}
}
