// Package models транспортные модели ledger, общие для HTTP API и клиента
package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модели

// CreateReservationRequest запрос на бронирование слота
type CreateReservationRequest struct {
	DateKey        string `json:"dateKey"`
	TimeSlotID     string `json:"timeSlotId"`
	AdminID        int64  `json:"adminId"`
	ProfessionalID string `json:"professionalId"`
}

// CreateBlockRequest запрос на блокировку дня или слота
// TimeSlotID == nil - блокируется весь день
type CreateBlockRequest struct {
	DateKey        string  `json:"dateKey"`
	TimeSlotID     *string `json:"timeSlotId,omitempty"`
	AdminID        int64   `json:"adminId"`
	ProfessionalID string  `json:"professionalId"`
}

// Response модели

// ErrorResponse тело ответа API с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID             int64     `json:"id"`
	DateKey        string    `json:"dateKey"`
	TimeSlotID     string    `json:"timeSlotId"`
	AdminID        int64     `json:"adminId"`
	ProfessionalID string    `json:"professionalId"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BlockResponse ответ с данными блокировки
type BlockResponse struct {
	ID             int64     `json:"id"`
	DateKey        string    `json:"dateKey"`
	TimeSlotID     *string   `json:"timeSlotId,omitempty"`
	AdminID        int64     `json:"adminId"`
	ProfessionalID string    `json:"professionalId"`
	CreatedAt      time.Time `json:"createdAt"`
}

// SlotAvailabilityResponse доступность одного слота
type SlotAvailabilityResponse struct {
	TimeSlotID string `json:"timeSlotId"`
	Time       string `json:"time"`
	Available  bool   `json:"available"`
}

// AvailabilityResponse доступность слотов специалиста на дату
type AvailabilityResponse struct {
	DateKey        string                     `json:"dateKey"`
	ProfessionalID string                     `json:"professionalId"`
	DayBlocked     bool                       `json:"dayBlocked"`
	Slots          []SlotAvailabilityResponse `json:"slots"`
}

// Конвертеры

// FromDomainReservation конвертирует domain.Reservation в ReservationResponse
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:             r.ID,
		DateKey:        r.DateKey.String(),
		TimeSlotID:     r.SlotID,
		AdminID:        r.AdminID,
		ProfessionalID: r.ProfessionalID,
		CreatedAt:      r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(list []*domain.Reservation) []*ReservationResponse {
	out := make([]*ReservationResponse, len(list))
	for i, r := range list {
		out[i] = FromDomainReservation(r)
	}
	return out
}

// ToDomain конвертирует ReservationResponse в domain.Reservation
func (r *ReservationResponse) ToDomain() *domain.Reservation {
	return &domain.Reservation{
		ID:             r.ID,
		DateKey:        domain.DateKey(r.DateKey),
		SlotID:         r.TimeSlotID,
		ProfessionalID: r.ProfessionalID,
		AdminID:        r.AdminID,
		CreatedAt:      r.CreatedAt,
	}
}

// FromDomainBlock конвертирует domain.Block в BlockResponse
func FromDomainBlock(b *domain.Block) *BlockResponse {
	return &BlockResponse{
		ID:             b.ID,
		DateKey:        b.DateKey.String(),
		TimeSlotID:     b.SlotID,
		AdminID:        b.AdminID,
		ProfessionalID: b.ProfessionalID,
		CreatedAt:      b.CreatedAt,
	}
}

// FromDomainBlockList конвертирует список блокировок
func FromDomainBlockList(list []*domain.Block) []*BlockResponse {
	out := make([]*BlockResponse, len(list))
	for i, b := range list {
		out[i] = FromDomainBlock(b)
	}
	return out
}

// ToDomain конвертирует BlockResponse в domain.Block
func (b *BlockResponse) ToDomain() *domain.Block {
	return &domain.Block{
		ID:             b.ID,
		DateKey:        domain.DateKey(b.DateKey),
		ProfessionalID: b.ProfessionalID,
		AdminID:        b.AdminID,
		SlotID:         b.TimeSlotID,
		CreatedAt:      b.CreatedAt,
	}
}

// FromDomainAvailability конвертирует представление доступности
func FromDomainAvailability(v *domain.AvailabilityView, dayBlocked bool) *AvailabilityResponse {
	slots := make([]SlotAvailabilityResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotAvailabilityResponse{TimeSlotID: s.SlotID, Time: s.Time, Available: s.Available}
	}
	return &AvailabilityResponse{
		DateKey:        v.DateKey.String(),
		ProfessionalID: v.ProfessionalID,
		DayBlocked:     dayBlocked,
		Slots:          slots,
	}
}

// ServiceResponse услуга справочника
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ProfessionalResponse специалист справочника
type ProfessionalResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Avatar      string   `json:"avatar"`
	Specialties []string `json:"specialties"`
}

// SlotResponse канонический слот
type SlotResponse struct {
	ID        string `json:"id"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// CatalogResponse справочник целиком
type CatalogResponse struct {
	Services      []ServiceResponse      `json:"services"`
	Professionals []ProfessionalResponse `json:"professionals"`
	TimeSlots     []SlotResponse         `json:"timeSlots"`
}

// FromDomainCatalog конвертирует содержимое справочника
func FromDomainCatalog(services []domain.Service, professionals []domain.Professional, slots []domain.CanonicalSlot) *CatalogResponse {
	resp := &CatalogResponse{
		Services:      make([]ServiceResponse, len(services)),
		Professionals: make([]ProfessionalResponse, len(professionals)),
		TimeSlots:     make([]SlotResponse, len(slots)),
	}
	for i, s := range services {
		resp.Services[i] = ServiceResponse{ID: s.ID, Name: s.Name, DurationMinutes: s.DurationMinutes, Price: s.Price}
	}
	for i, p := range professionals {
		resp.Professionals[i] = ProfessionalResponse{ID: p.ID, Name: p.Name, Avatar: p.Avatar, Specialties: p.Specialties}
	}
	for i, s := range slots {
		resp.TimeSlots[i] = SlotResponse{ID: s.ID, Time: s.Time, Available: s.BaseAvailable}
	}
	return resp
}

// ToDomain конвертирует ответ обратно в доменные сущности справочника
func (c *CatalogResponse) ToDomain() ([]domain.Service, []domain.Professional, []domain.CanonicalSlot) {
	services := make([]domain.Service, len(c.Services))
	for i, s := range c.Services {
		services[i] = domain.Service{ID: s.ID, Name: s.Name, DurationMinutes: s.DurationMinutes, Price: s.Price}
	}
	professionals := make([]domain.Professional, len(c.Professionals))
	for i, p := range c.Professionals {
		professionals[i] = domain.Professional{ID: p.ID, Name: p.Name, Avatar: p.Avatar, Specialties: p.Specialties}
	}
	slots := make([]domain.CanonicalSlot, len(c.TimeSlots))
	for i, s := range c.TimeSlots {
		slots[i] = domain.CanonicalSlot{ID: s.ID, Time: s.Time, BaseAvailable: s.Available}
	}
	return services, professionals, slots
}
