package repository

import (
	"context"
	"sort"
	"sync"

	domain "github.com/BruksfildServices01/barbearia-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-agenda/internal/models"
)

// AppointmentMemoryRepository guarda tudo em memória (STORAGE_DRIVER=memory e testes).
// O mutex faz da checagem + inserção uma etapa só.
type AppointmentMemoryRepository struct {
	mu     sync.Mutex
	nextID uint
	rows   []models.Appointment
}

func NewAppointmentMemoryRepository() *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{nextID: 1}
}

func (r *AppointmentMemoryRepository) CreateIfSlotFree(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := ctx.Err(); err != nil {
		return domain.StorageError{Op: "create appointment", Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.BarberID == ap.BarberID &&
			row.ApptDate == ap.ApptDate &&
			row.ApptTime == ap.ApptTime &&
			domain.OccupiesSlot(domain.Status(row.Status)) {
			return conflictFor(ap)
		}
	}

	ap.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, *ap)

	return nil
}

func (r *AppointmentMemoryRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.StorageError{Op: "list appointments", Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Appointment{}
	for _, row := range r.rows {
		if filter.BarberID != nil && row.BarberID != *filter.BarberID {
			continue
		}
		if filter.Date != "" && row.ApptDate != filter.Date {
			continue
		}
		out = append(out, row)
	}

	// rows já estão em ordem de inserção; SliceStable preserva o desempate por id
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ApptDate != out[j].ApptDate {
			return out[i].ApptDate < out[j].ApptDate
		}
		return out[i].ApptTime < out[j].ApptTime
	})

	return out, nil
}

func (r *AppointmentMemoryRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.StorageError{Op: "get appointment", Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.ID == id {
			ap := row
			return &ap, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *AppointmentMemoryRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := ctx.Err(); err != nil {
		return domain.StorageError{Op: "update appointment", Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, row := range r.rows {
		if row.ID == ap.ID {
			idx = i
			continue
		}
		if domain.OccupiesSlot(domain.Status(ap.Status)) &&
			domain.OccupiesSlot(domain.Status(row.Status)) &&
			row.BarberID == ap.BarberID &&
			row.ApptDate == ap.ApptDate &&
			row.ApptTime == ap.ApptTime {
			return conflictFor(ap)
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}

	r.rows[idx] = *ap
	return nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentMemoryRepository)(nil)
