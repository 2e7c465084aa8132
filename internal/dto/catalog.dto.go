package dto

import "github.com/BruksfildServices01/barbearia-agenda/internal/domain/shop"

type CatalogDTO struct {
	Services    []shop.Service `json:"services"`
	Barbers     []BarberDTO    `json:"barbers"`
	Opening     string         `json:"opening"`
	Closing     string         `json:"closing"`
	WorkingDays []string       `json:"working_days"`
}

// BarberDTO não expõe o telefone do barbeiro.
type BarberDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewCatalogDTO(cfg shop.Config) CatalogDTO {
	out := CatalogDTO{
		Services: cfg.Services(),
		Opening:  cfg.Opening().String(),
		Closing:  cfg.Closing().String(),
	}
	for _, b := range cfg.Barbers() {
		out.Barbers = append(out.Barbers, BarberDTO{ID: b.ID, Name: b.Name})
	}
	for _, d := range cfg.WorkingDays() {
		out.WorkingDays = append(out.WorkingDays, d.String())
	}
	return out
}
