package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/barbearia-agenda/internal/db"
	domain "github.com/BruksfildServices01/barbearia-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-agenda/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateIfSlotFree serializa por horário com pg_advisory_xact_lock; o índice
// único parcial cobre qualquer escrita que não passe por aqui.
func (r *AppointmentGormRepository) CreateIfSlotFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Exec("SELECT pg_advisory_xact_lock(hashtext(?))", slotKey(ap)).
			Error; err != nil {
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"barber_id = ? AND appt_date = ? AND appt_time = ? AND status <> ?",
				ap.BarberID,
				ap.ApptDate,
				ap.ApptTime,
				string(domain.StatusCancelled),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return conflictFor(ap)
		}

		return tx.Create(ap).Error
	})

	switch {
	case err == nil:
		return nil
	case domain.IsConflict(err):
		return err
	case dbpkg.IsUniqueViolation(err):
		return conflictFor(ap)
	default:
		return domain.StorageError{Op: "create appointment", Err: err}
	}
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if filter.BarberID != nil {
		q = q.Where("barber_id = ?", *filter.BarberID)
	}
	if filter.Date != "" {
		q = q.Where("appt_date = ?", filter.Date)
	}

	apps := []models.Appointment{}
	if err := q.
		Order("appt_date ASC, appt_time ASC, id ASC").
		Find(&apps).Error; err != nil {
		return nil, domain.StorageError{Op: "list appointments", Err: err}
	}

	return apps, nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.StorageError{Op: "get appointment", Err: err}
	}

	return &ap, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		if dbpkg.IsUniqueViolation(err) {
			return conflictFor(ap)
		}
		return domain.StorageError{Op: "update appointment", Err: err}
	}
	return nil
}

func slotKey(ap *models.Appointment) string {
	return fmt.Sprintf("appointment:%d:%s:%s", ap.BarberID, ap.ApptDate, ap.ApptTime)
}

func conflictFor(ap *models.Appointment) error {
	return domain.ConflictError{
		BarberID: ap.BarberID,
		Date:     ap.ApptDate,
		Time:     ap.ApptTime,
	}
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
