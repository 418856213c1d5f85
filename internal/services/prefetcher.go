package services

import (
	"sync"

	"watch-atelier-backend/internal/customizer"
	"watch-atelier-backend/internal/models"
)

type prefetchEntry struct {
	watchCase *models.WatchCase
	parts     map[models.PartCategory][]models.WatchPart
}

// Prefetcher warms case data ahead of session creation so the wizard
// opens without a catalog round-trip. An explicit object injected into
// the handlers, never a package-level singleton, so instances stay
// isolated and testable. The in-flight set is the "already requested,
// do not re-request" guard; a failed fetch clears its key so a later
// attempt can retry.
type Prefetcher struct {
	catalog customizer.Catalog

	mu       sync.Mutex
	inflight map[string]struct{}
	ready    map[string]prefetchEntry
}

func NewPrefetcher(catalog customizer.Catalog) *Prefetcher {
	return &Prefetcher{
		catalog:  catalog,
		inflight: make(map[string]struct{}),
		ready:    make(map[string]prefetchEntry),
	}
}

// Prefetch fetches a case and its compatible parts in the background.
// Repeat calls for a key that is in flight or already cached are no-ops.
func (p *Prefetcher) Prefetch(caseID string) {
	p.mu.Lock()
	if _, ok := p.inflight[caseID]; ok {
		p.mu.Unlock()
		return
	}
	if _, ok := p.ready[caseID]; ok {
		p.mu.Unlock()
		return
	}
	p.inflight[caseID] = struct{}{}
	p.mu.Unlock()

	go p.fetch(caseID)
}

func (p *Prefetcher) fetch(caseID string) {
	watchCase, err := p.catalog.GetCase(caseID)
	if err != nil {
		p.clear(caseID)
		return
	}
	parts, err := customizer.FetchCompatibleParts(p.catalog, watchCase)
	if err != nil {
		p.clear(caseID)
		return
	}

	p.mu.Lock()
	delete(p.inflight, caseID)
	p.ready[caseID] = prefetchEntry{watchCase: watchCase, parts: parts}
	p.mu.Unlock()
}

func (p *Prefetcher) clear(caseID string) {
	p.mu.Lock()
	delete(p.inflight, caseID)
	p.mu.Unlock()
}

// Take returns and removes a prefetched entry, or false if the case
// was never prefetched or the fetch has not finished. The entry is
// consumed so a new session always starts from fresh data afterwards.
func (p *Prefetcher) Take(caseID string) (*models.WatchCase, map[models.PartCategory][]models.WatchPart, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, ok := p.ready[caseID]
	if !ok {
		return nil, nil, false
	}
	delete(p.ready, caseID)
	return entry.watchCase, entry.parts, true
}
