// Package nutrition resolves food queries against the USDA provider with a
// built-in local fallback table.
package nutrition

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vitacli/vita/internal/provider/usda"
)

type FoodRecord struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// localFoods is the fixed fallback table used when no API key is configured
// or the provider call fails.
var localFoods = []FoodRecord{
	{Name: "Chicken Breast (100g)", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
	{Name: "Brown Rice (100g)", Calories: 111, Protein: 2.6, Carbs: 23, Fat: 0.9},
	{Name: "Broccoli (100g)", Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4},
	{Name: "Salmon (100g)", Calories: 208, Protein: 20, Carbs: 0, Fat: 13},
	{Name: "Sweet Potato (100g)", Calories: 86, Protein: 1.6, Carbs: 20, Fat: 0.1},
	{Name: "Greek Yogurt (100g)", Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4},
	{Name: "Almonds (100g)", Calories: 579, Protein: 21, Carbs: 22, Fat: 50},
	{Name: "Banana (100g)", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3},
	{Name: "Oats (100g)", Calories: 389, Protein: 17, Carbs: 66, Fat: 7},
	{Name: "Eggs (100g)", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11},
}

type providerClient interface {
	SearchFoods(ctx context.Context, query string, limit int) ([]usda.FoodResult, error)
}

type Service struct {
	client providerClient
	apiKey string
	log    zerolog.Logger
}

func NewService(apiKey string, log zerolog.Logger) *Service {
	return &Service{
		client: &usda.Client{APIKey: apiKey},
		apiKey: apiKey,
		log:    log,
	}
}

// NewServiceWithClient injects a provider client, for tests.
func NewServiceWithClient(client providerClient, apiKey string, log zerolog.Logger) *Service {
	return &Service{client: client, apiKey: apiKey, log: log}
}

// Search returns nutrition records for the query. Without credentials it
// serves the local table directly; a provider failure also falls back to the
// local table rather than failing outward.
func (s *Service) Search(ctx context.Context, query string) ([]FoodRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if strings.TrimSpace(s.apiKey) == "" {
		return SearchLocal(query), nil
	}

	results, err := s.client.SearchFoods(ctx, query, 10)
	if err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("provider search failed, using local table")
		return SearchLocal(query), nil
	}

	out := make([]FoodRecord, 0, len(results))
	for _, r := range results {
		out = append(out, FoodRecord{
			Name:     r.Name,
			Calories: r.Calories,
			Protein:  r.Protein,
			Carbs:    r.Carbs,
			Fat:      r.Fat,
		})
	}
	return out, nil
}

// SearchLocal filters the fallback table by case-insensitive substring match
// on name.
func SearchLocal(query string) []FoodRecord {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]FoodRecord, 0)
	for _, food := range localFoods {
		if strings.Contains(strings.ToLower(food.Name), needle) {
			out = append(out, food)
		}
	}
	return out
}

// DefaultDebounce is how long input must be idle before a search is issued.
const DefaultDebounce = 500 * time.Millisecond

// MinQueryLength gates searches: queries must be longer than this.
const MinQueryLength = 2
