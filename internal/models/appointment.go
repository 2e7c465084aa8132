package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName  string  `gorm:"type:text;not null" json:"client_name"`
	ClientEmail *string `gorm:"type:text" json:"client_email"`
	ClientPhone *string `gorm:"type:text" json:"client_phone"`

	BarberID uint `gorm:"not null;index:idx_appointments_barber_slot,priority:1" json:"barber_id"`

	// nomes separados por ", " na ordem escolhida
	Services string  `gorm:"type:text;not null" json:"services"`
	Total    float64 `gorm:"not null" json:"total"`

	ApptDate string `gorm:"size:10;not null;index:idx_appointments_barber_slot,priority:2" json:"appt_date"`
	ApptTime string `gorm:"size:5;not null;index:idx_appointments_barber_slot,priority:3" json:"appt_time"`

	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	Status      string     `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	CancelledAt *time.Time `json:"cancelled_at"`
}
