// Package store keeps processed reports in memory for the lifetime of the
// process. Nothing is persisted: a report lives until it is deleted or the
// server exits.
package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nabilassungkar/MoodMelt/internal/models"
)

// Store manages processed reports in memory.
type Store struct {
	reports map[uuid.UUID]models.Report
	mu      sync.RWMutex
}

// NewStore creates and returns a new Store.
func NewStore() *Store {
	return &Store{
		reports: make(map[uuid.UUID]models.Report),
	}
}

// Create assigns the report a fresh ID and creation time and stores it.
func (s *Store) Create(report models.Report) models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	report.ID = uuid.New()
	report.CreatedAt = time.Now().UTC()
	s.reports[report.ID] = report
	return report
}

// Get retrieves a report by its ID.
func (s *Store) Get(id uuid.UUID) (models.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[id]
	return report, ok
}

// List returns summaries of all stored reports, newest first.
func (s *Store) List() []models.ReportSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.ReportSummary, 0, len(s.reports))
	for _, report := range s.reports {
		list = append(list, report.Summary())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list
}

// Delete removes a report from the store.
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reports[id]; !ok {
		return fmt.Errorf("report with ID %s not found", id)
	}
	delete(s.reports, id)
	return nil
}
