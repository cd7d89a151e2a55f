package nutrition

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// SearchResult is one completed search delivered to the consumer.
type SearchResult struct {
	Query   string
	Records []FoodRecord
	Err     error
}

// Searcher debounces rapid query edits and guards against out-of-order
// completions. Each accepted query gets a monotonically increasing sequence
// number; a completion is authoritative only if its number still matches the
// latest one, so late results from superseded searches are discarded. Wall
// clock never decides authority.
type Searcher struct {
	search   func(ctx context.Context, query string) ([]FoodRecord, error)
	deliver  func(SearchResult)
	debounce time.Duration
	log      zerolog.Logger

	mu     sync.Mutex
	seq    uint64
	timer  *time.Timer
	cancel context.CancelFunc
}

func NewSearcher(svc *Service, deliver func(SearchResult), debounce time.Duration, log zerolog.Logger) *Searcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Searcher{
		search:   svc.Search,
		deliver:  deliver,
		debounce: debounce,
		log:      log,
	}
}

// SetQuery registers the latest input. Any pending timer is cancelled and any
// in-flight search is superseded. Queries of MinQueryLength or fewer
// characters only cancel; they never trigger a search.
func (s *Searcher) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.seq++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if len(query) <= MinQueryLength {
		return
	}

	id := s.seq
	s.timer = time.AfterFunc(s.debounce, func() {
		s.run(id, query)
	})
}

func (s *Searcher) run(id uint64, query string) {
	s.mu.Lock()
	if id != s.seq {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	records, err := s.search(ctx, query)

	s.mu.Lock()
	stale := id != s.seq
	s.mu.Unlock()
	if stale {
		s.log.Debug().Str("query", query).Msg("discarding superseded search result")
		return
	}
	s.deliver(SearchResult{Query: query, Records: records, Err: err})
}
