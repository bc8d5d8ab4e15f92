package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"atlas/internal/domain"
	"atlas/internal/eventbus"
)

// Fetch error taxonomy. All failures are terminal for the attempt; the
// dataset stays empty and no retry happens internally.
var (
	ErrNetwork  = errors.New("network failure")
	ErrStatus   = errors.New("unexpected response status")
	ErrDecode   = errors.New("malformed dataset")
	ErrInFlight = errors.New("fetch already in progress")
)

// Service retrieves the country dataset over HTTP. At most one fetch is
// in flight at a time; requests arriving while one is outstanding are
// dropped, not queued.
type Service interface {
	StartFetch(ctx context.Context) error
	Wait()
}

// service is the concrete implementation
type service struct {
	bus        eventbus.EventBus
	client     *http.Client
	url        string
	mu         sync.Mutex
	isFetching bool
	wg         sync.WaitGroup
}

// NewService creates a new fetch service
func NewService(bus eventbus.EventBus, url string, timeout time.Duration) Service {
	s := &service{
		bus:    bus,
		client: &http.Client{Timeout: timeout},
		url:    url,
	}

	// Subscribe to fetch requests
	bus.Subscribe(eventbus.EventFetchRequested, func(e eventbus.DomainEvent) {
		if err := s.StartFetch(context.Background()); err != nil {
			log.Debug("fetch request dropped", "err", err)
		}
	})

	return s
}

// StartFetch begins fetching the dataset in the background. Returns
// ErrInFlight if a fetch is already outstanding.
func (s *service) StartFetch(ctx context.Context) error {
	s.mu.Lock()
	if s.isFetching {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.isFetching = true
	s.mu.Unlock()

	s.bus.Publish(eventbus.FetchStartedEvent{URL: s.url})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		countries, err := s.fetchDataset(ctx)

		s.mu.Lock()
		s.isFetching = false
		s.mu.Unlock()

		if err != nil {
			log.Error("dataset fetch failed", "url", s.url, "err", err)
			s.bus.Publish(eventbus.DatasetFailedEvent{Err: err})
			return
		}

		log.Info("dataset fetched", "url", s.url, "countries", len(countries))
		s.bus.Publish(eventbus.DatasetLoadedEvent{Countries: countries})
	}()

	return nil
}

// Wait blocks until any outstanding fetch has completed
func (s *service) Wait() {
	s.wg.Wait()
}

// fetchDataset performs the HTTP request and decodes the response.
// Decoding is all-or-nothing; a partial dataset is never returned.
func (s *service) fetchDataset(ctx context.Context) ([]domain.Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	var countries []domain.Country
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return countries, nil
}
