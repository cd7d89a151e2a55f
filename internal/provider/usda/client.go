// Package usda queries the USDA FoodData Central search API.
package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.nal.usda.gov"

// Nutrient ids in the FoodData Central schema.
const (
	nutrientEnergy  = 1008
	nutrientProtein = 1003
	nutrientCarbs   = 1005
	nutrientFat     = 1004
)

type FoodResult struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func (c *Client) SearchFoods(ctx context.Context, query string, limit int) ([]FoodResult, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, fmt.Errorf("missing USDA API key")
	}
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	if limit <= 0 {
		limit = 10
	}

	u := fmt.Sprintf("%s/fdc/v1/foods/search?query=%s&api_key=%s&pageSize=%d",
		base, url.QueryEscape(strings.TrimSpace(query)), url.QueryEscape(c.APIKey), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create usda search request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute usda search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read usda search response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("usda search request failed with status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode usda search response: %w", err)
	}

	out := make([]FoodResult, 0, len(parsed.Foods))
	for _, food := range parsed.Foods {
		if strings.TrimSpace(food.Description) == "" {
			continue
		}
		out = append(out, FoodResult{
			Name:     strings.TrimSpace(food.Description),
			Calories: nutrientValue(food.FoodNutrients, nutrientEnergy),
			Protein:  nutrientValue(food.FoodNutrients, nutrientProtein),
			Carbs:    nutrientValue(food.FoodNutrients, nutrientCarbs),
			Fat:      nutrientValue(food.FoodNutrients, nutrientFat),
		})
	}
	return out, nil
}

func nutrientValue(nutrients []foodNutrient, id int64) float64 {
	for _, n := range nutrients {
		if n.NutrientID == id {
			return n.Value
		}
	}
	return 0
}

type searchResponse struct {
	Foods []searchFood `json:"foods"`
}

type searchFood struct {
	FDCID         int64          `json:"fdcId"`
	Description   string         `json:"description"`
	BrandOwner    string         `json:"brandOwner"`
	FoodNutrients []foodNutrient `json:"foodNutrients"`
}

type foodNutrient struct {
	NutrientID   int64   `json:"nutrientId"`
	NutrientName string  `json:"nutrientName"`
	Value        float64 `json:"value"`
	UnitName     string  `json:"unitName"`
}
