package shop

import (
	"fmt"
	"time"
)

// ===============================
// Catálogo / equipe / expediente
// ===============================

type Service struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Barber struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Config é imutável depois de criada; os use cases recebem uma cópia na construção.
type Config struct {
	services    []Service
	prices      map[string]float64
	barbers     []Barber
	open        Clock
	close       Clock
	workingDays map[time.Weekday]bool
	location    *time.Location
}

func New(
	services []Service,
	barbers []Barber,
	openAt Clock,
	closeAt Clock,
	workingDays []time.Weekday,
	location *time.Location,
) (Config, error) {

	if len(services) == 0 {
		return Config{}, fmt.Errorf("shop: empty service catalog")
	}
	if closeAt.Before(openAt) {
		return Config{}, fmt.Errorf("shop: closing time %s before opening time %s", closeAt, openAt)
	}
	if location == nil {
		location = time.UTC
	}

	prices := make(map[string]float64, len(services))
	for _, s := range services {
		if s.Price <= 0 {
			return Config{}, fmt.Errorf("shop: service %q must have a positive price", s.Name)
		}
		if _, dup := prices[s.Name]; dup {
			return Config{}, fmt.Errorf("shop: duplicated service %q", s.Name)
		}
		prices[s.Name] = s.Price
	}

	days := make(map[time.Weekday]bool, len(workingDays))
	for _, d := range workingDays {
		days[d] = true
	}

	return Config{
		services:    append([]Service(nil), services...),
		prices:      prices,
		barbers:     append([]Barber(nil), barbers...),
		open:        openAt,
		close:       closeAt,
		workingDays: days,
		location:    location,
	}, nil
}

// Default devolve a configuração da barbearia compilada no binário.
func Default(location *time.Location) Config {
	cfg, err := New(
		[]Service{
			{Name: "Corte", Price: 35.0},
			{Name: "Barba", Price: 20.0},
			{Name: "Penteado", Price: 40.0},
			{Name: "Progressiva", Price: 120.0},
			{Name: "Corte + Barba", Price: 50.0},
		},
		[]Barber{
			{ID: 1, Name: "Bruno", Phone: "5511956996426"},
			{ID: 2, Name: "Carlos", Phone: "55119xxxxxxx"},
		},
		NewClock(9, 0),
		NewClock(19, 0),
		[]time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		},
		location,
	)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c Config) Services() []Service {
	return append([]Service(nil), c.services...)
}

func (c Config) Barbers() []Barber {
	return append([]Barber(nil), c.barbers...)
}

func (c Config) Price(name string) (float64, bool) {
	p, ok := c.prices[name]
	return p, ok
}

// Total soma os preços na ordem recebida (duplicados contam).
func (c Config) Total(services []string) (float64, error) {
	var total float64
	for _, s := range services {
		p, ok := c.prices[s]
		if !ok {
			return 0, fmt.Errorf("shop: unknown service %q", s)
		}
		total += p
	}
	return total, nil
}

func (c Config) Barber(id uint) (Barber, bool) {
	for _, b := range c.barbers {
		if b.ID == id {
			return b, true
		}
	}
	return Barber{}, false
}

func (c Config) IsWorkingDay(d time.Time) bool {
	return c.workingDays[d.Weekday()]
}

func (c Config) WorkingDays() []time.Weekday {
	out := make([]time.Weekday, 0, len(c.workingDays))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if c.workingDays[d] {
			out = append(out, d)
		}
	}
	return out
}

// WithinBusinessHours inclui as duas pontas: 19:00 ainda é aceito.
func (c Config) WithinBusinessHours(t Clock) bool {
	return !t.Before(c.open) && !c.close.Before(t)
}

func (c Config) Opening() Clock { return c.open }
func (c Config) Closing() Clock { return c.close }

func (c Config) Location() *time.Location { return c.location }

// Today é a data corrente no fuso da barbearia, à meia-noite.
func (c Config) Today(now time.Time) time.Time {
	n := now.In(c.location)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, c.location)
}
