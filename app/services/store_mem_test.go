package services

import (
	"fmt"
	"sync"

	"educore-schools/app/ledger"
	"educore-schools/app/models"
)

// memStore is an in-memory ledger.Store with the same conflict semantics as
// the Postgres implementation: bulk insert skips natural-key collisions and
// the payment update is conditional on the amount_paid that was read.
type memStore struct {
	mu          sync.Mutex
	nextID      int
	students    []models.Student
	templates   []models.FeeTemplate
	obligations map[string]models.FeeObligation

	failInsert bool
}

func newMemStore() *memStore {
	return &memStore{obligations: make(map[string]models.FeeObligation)}
}

func (m *memStore) ListStudents(className string) ([]models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Student
	for _, s := range m.students {
		if className == "" || s.ClassName == className {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) ListActiveTemplates(className string) ([]models.FeeTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.FeeTemplate
	for _, t := range m.templates {
		if !t.IsActive || t.DeletedAt != nil {
			continue
		}
		if className == "" || t.ClassName == className {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memStore) ListObligations(filter ledger.ObligationFilter) ([]models.FeeObligation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.FeeObligation
	for _, o := range m.obligations {
		if filter.Match(o) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memStore) GetObligation(id string) (models.FeeObligation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.obligations[id]
	if !ok {
		return models.FeeObligation{}, ledger.ErrNotFound
	}
	return o, nil
}

func (m *memStore) InsertObligations(obligations []models.FeeObligation) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failInsert {
		return 0, fmt.Errorf("store unavailable")
	}
	inserted := 0
	for _, o := range obligations {
		if m.hasKeyLocked(o.StudentID, o.Description) {
			continue
		}
		m.nextID++
		o.ID = fmt.Sprintf("ob-%d", m.nextID)
		m.obligations[o.ID] = o
		inserted++
	}
	return inserted, nil
}

func (m *memStore) UpdateObligationPayment(id string, expectedPaid float64, updated models.FeeObligation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.obligations[id]
	if !ok {
		return ledger.ErrNotFound
	}
	if current.AmountPaid != expectedPaid {
		return ledger.ErrConflict
	}
	updated.ID = id
	m.obligations[id] = updated
	return nil
}

func (m *memStore) hasKeyLocked(studentID, description string) bool {
	for _, o := range m.obligations {
		if o.StudentID == studentID && o.Description == description {
			return true
		}
	}
	return false
}
