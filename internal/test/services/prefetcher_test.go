package services_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"watch-atelier-backend/internal/models"
	"watch-atelier-backend/internal/services"
)

// countingCatalog records how many times each case was fetched.
type countingCatalog struct {
	mu        sync.Mutex
	watchCase models.WatchCase
	caseCalls int
	fail      bool
}

func newCountingCatalog() *countingCatalog {
	return &countingCatalog{
		watchCase: models.WatchCase{
			ID:             uuid.New(),
			Name:           "Speedmaster",
			Colors:         []models.CaseColor{{Name: "Черный", Image: "black.png"}},
			AvailableParts: models.AvailableParts{Dials: true},
		},
	}
}

func (c *countingCatalog) GetCase(caseID string) (*models.WatchCase, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.caseCalls++
	if c.fail {
		return nil, fmt.Errorf("catalog down")
	}
	watchCase := c.watchCase
	return &watchCase, nil
}

func (c *countingCatalog) GetCaseByName(name string) (*models.WatchCase, error) {
	watchCase := c.watchCase
	return &watchCase, nil
}

func (c *countingCatalog) ListCases() ([]models.WatchCase, error) {
	return []models.WatchCase{c.watchCase}, nil
}

func (c *countingCatalog) GetCompatibleParts(caseName string, category models.PartCategory) ([]models.WatchPart, error) {
	return []models.WatchPart{{
		ID:              uuid.New(),
		Name:            "Синий циферблат",
		Category:        category,
		CompatibleCases: []string{caseName},
	}}, nil
}

func (c *countingCatalog) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.caseCalls
}

func waitForEntry(t *testing.T, prefetcher *services.Prefetcher, caseID string) (*models.WatchCase, map[models.PartCategory][]models.WatchPart) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if watchCase, parts, ok := prefetcher.Take(caseID); ok {
			return watchCase, parts
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("prefetch never completed")
	return nil, nil
}

func TestPrefetcher(t *testing.T) {
	catalog := newCountingCatalog()
	prefetcher := services.NewPrefetcher(catalog)
	caseID := catalog.watchCase.ID.String()

	prefetcher.Prefetch(caseID)
	watchCase, parts := waitForEntry(t, prefetcher, caseID)

	assert.Equal(t, "Speedmaster", watchCase.Name)
	assert.Len(t, parts[models.CategoryDial], 1)

	// The entry is consumed on Take.
	_, _, ok := prefetcher.Take(caseID)
	assert.False(t, ok)
}

func TestPrefetcher_FetchesOncePerKey(t *testing.T) {
	catalog := newCountingCatalog()
	prefetcher := services.NewPrefetcher(catalog)
	caseID := catalog.watchCase.ID.String()

	prefetcher.Prefetch(caseID)
	// A repeat request hits either the in-flight guard or the cached
	// entry; neither reaches the catalog again.
	prefetcher.Prefetch(caseID)
	waitForEntry(t, prefetcher, caseID)

	assert.Equal(t, 1, catalog.calls())
}

func TestPrefetcher_RetriesAfterFailure(t *testing.T) {
	catalog := newCountingCatalog()
	catalog.fail = true
	prefetcher := services.NewPrefetcher(catalog)
	caseID := catalog.watchCase.ID.String()

	prefetcher.Prefetch(caseID)

	deadline := time.Now().Add(2 * time.Second)
	for catalog.calls() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	_, _, ok := prefetcher.Take(caseID)
	assert.False(t, ok, "a failed fetch must not leave an entry")

	catalog.mu.Lock()
	catalog.fail = false
	catalog.mu.Unlock()

	// The failure cleared the in-flight guard, so a retry goes through.
	prefetcher.Prefetch(caseID)
	watchCase, _ := waitForEntry(t, prefetcher, caseID)
	assert.Equal(t, "Speedmaster", watchCase.Name)
}
