package catalog

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Catalog справочник услуг, специалистов и канонической сетки слотов
// Загружается один раз при старте и далее только читается, поэтому безопасен
// для конкурентного использования без блокировок
type Catalog struct {
	services      []domain.Service
	professionals []domain.Professional
	slots         []domain.CanonicalSlot

	servicesByID      map[string]int
	professionalsByID map[string]int
	slotsByID         map[string]int
}

// New создает справочник с валидацией данных
func New(services []domain.Service, professionals []domain.Professional, slots []domain.CanonicalSlot) (*Catalog, error) {
	if len(services) == 0 || len(professionals) == 0 || len(slots) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		services:          make([]domain.Service, len(services)),
		professionals:     make([]domain.Professional, len(professionals)),
		slots:             make([]domain.CanonicalSlot, len(slots)),
		servicesByID:      make(map[string]int, len(services)),
		professionalsByID: make(map[string]int, len(professionals)),
		slotsByID:         make(map[string]int, len(slots)),
	}

	for i, s := range services {
		if s.ID == "" || s.Name == "" || s.DurationMinutes <= 0 || s.Price < 0 {
			return nil, fmt.Errorf("%w: id=%q", ErrInvalidService, s.ID)
		}
		if _, ok := c.servicesByID[s.ID]; ok {
			return nil, fmt.Errorf("%w: service id=%q", ErrDuplicateID, s.ID)
		}
		c.services[i] = s
		c.servicesByID[s.ID] = i
	}

	for i, p := range professionals {
		if _, ok := c.professionalsByID[p.ID]; ok || p.ID == "" {
			return nil, fmt.Errorf("%w: professional id=%q", ErrDuplicateID, p.ID)
		}
		p.Specialties = append([]string(nil), p.Specialties...)
		c.professionals[i] = p
		c.professionalsByID[p.ID] = i
	}

	for i, s := range slots {
		if _, ok := c.slotsByID[s.ID]; ok || s.ID == "" {
			return nil, fmt.Errorf("%w: slot id=%q", ErrDuplicateID, s.ID)
		}
		if _, err := time.Parse(domain.TimeFormat, s.Time); err != nil {
			return nil, fmt.Errorf("%w: slot id=%q time=%q", ErrInvalidSlotTime, s.ID, s.Time)
		}
		c.slots[i] = s
		c.slotsByID[s.ID] = i
	}

	return c, nil
}

// Services возвращает копию списка услуг
func (c *Catalog) Services() []domain.Service {
	return append([]domain.Service(nil), c.services...)
}

// Professionals возвращает копию списка специалистов
func (c *Catalog) Professionals() []domain.Professional {
	out := make([]domain.Professional, len(c.professionals))
	for i, p := range c.professionals {
		p.Specialties = append([]string(nil), p.Specialties...)
		out[i] = p
	}
	return out
}

// Slots возвращает копию канонической сетки слотов в исходном порядке
func (c *Catalog) Slots() []domain.CanonicalSlot {
	return append([]domain.CanonicalSlot(nil), c.slots...)
}

func (c *Catalog) Service(id string) (domain.Service, bool) {
	i, ok := c.servicesByID[id]
	if !ok {
		return domain.Service{}, false
	}
	return c.services[i], true
}

func (c *Catalog) Professional(id string) (domain.Professional, bool) {
	i, ok := c.professionalsByID[id]
	if !ok {
		return domain.Professional{}, false
	}
	p := c.professionals[i]
	p.Specialties = append([]string(nil), p.Specialties...)
	return p, true
}

func (c *Catalog) Slot(id string) (domain.CanonicalSlot, bool) {
	i, ok := c.slotsByID[id]
	if !ok {
		return domain.CanonicalSlot{}, false
	}
	return c.slots[i], true
}
