package usda_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vitacli/vita/internal/provider/usda"
)

const sampleSearchResponse = `{
  "foods": [
    {
      "fdcId": 171077,
      "description": "Chicken, broiler, breast, meat only, cooked",
      "foodNutrients": [
        {"nutrientId": 1008, "nutrientName": "Energy", "value": 165, "unitName": "KCAL"},
        {"nutrientId": 1003, "nutrientName": "Protein", "value": 31, "unitName": "G"},
        {"nutrientId": 1005, "nutrientName": "Carbohydrate, by difference", "value": 0, "unitName": "G"},
        {"nutrientId": 1004, "nutrientName": "Total lipid (fat)", "value": 3.6, "unitName": "G"}
      ]
    },
    {
      "fdcId": 999999,
      "description": "",
      "foodNutrients": []
    }
  ]
}`

func TestSearchFoodsParsesNutrients(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "chicken breast" {
			t.Errorf("query = %q", got)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("api_key = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleSearchResponse))
	}))
	defer server.Close()

	client := &usda.Client{APIKey: "test-key", BaseURL: server.URL}
	results, err := client.SearchFoods(context.Background(), "chicken breast", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result (blank description skipped), got %d", len(results))
	}
	r := results[0]
	if r.Name != "Chicken, broiler, breast, meat only, cooked" {
		t.Errorf("name = %q", r.Name)
	}
	if r.Calories != 165 || r.Protein != 31 || r.Carbs != 0 || r.Fat != 3.6 {
		t.Errorf("nutrients = %+v", r)
	}
}

func TestSearchFoodsRequiresAPIKey(t *testing.T) {
	t.Parallel()
	client := &usda.Client{}
	if _, err := client.SearchFoods(context.Background(), "oats", 10); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestSearchFoodsErrorStatus(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := &usda.Client{APIKey: "test-key", BaseURL: server.URL}
	if _, err := client.SearchFoods(context.Background(), "oats", 10); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}
