// Package wizard пошаговый мастер бронирования:
// услуга -> специалист -> дата и время -> контакты -> подтверждение
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-ReservationService/internal/confirmation"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/ledger"
)

// Session одна сессия мастера; не безопасна для конкурентного использования
type Session struct {
	catalog      Catalog
	ledger       Ledger
	availability Availability
	overlay      Overlay
	adminID      int64
	phone        string
	timeProvider TimeProvider
	logger       Logger

	step  Step
	draft Draft
	view  *domain.AvailabilityView
}

// NewSession создает сессию на шаге выбора услуги
// adminID передается в ledger явно при каждом бронировании
func NewSession(
	catalog Catalog,
	ledger Ledger,
	availability Availability,
	overlay Overlay,
	adminID int64,
	phone string,
	logger Logger,
) *Session {
	return &Session{
		catalog:      catalog,
		ledger:       ledger,
		availability: availability,
		overlay:      overlay,
		adminID:      adminID,
		phone:        phone,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		step:         StepService,
	}
}

func (s *Session) Step() Step {
	return s.step
}

// Draft возвращает копию черновика
func (s *Session) Draft() Draft {
	return s.draft
}

// View последнее загруженное представление доступности (nil, если не загружалось)
func (s *Session) View() *domain.AvailabilityView {
	return s.view
}

// SelectService выбирает услугу; false - шаг не тот или услуга неизвестна
func (s *Session) SelectService(id string) bool {
	if s.step != StepService {
		return false
	}
	if _, ok := s.catalog.Service(id); !ok {
		return false
	}
	s.draft.ServiceID = id
	return true
}

// SelectProfessional выбирает специалиста; смена специалиста сбрасывает выбранный слот
func (s *Session) SelectProfessional(id string) bool {
	if s.step != StepProfessional {
		return false
	}
	if _, ok := s.catalog.Professional(id); !ok {
		return false
	}
	if s.draft.ProfessionalID != id {
		s.draft.SlotID = ""
		s.view = nil
	}
	s.draft.ProfessionalID = id
	return true
}

// SelectDate выбирает дату; прошедшие даты и воскресенья недоступны
// Смена даты сбрасывает выбранный слот
func (s *Session) SelectDate(dateKey domain.DateKey) bool {
	if s.step != StepDateTime {
		return false
	}
	if _, err := domain.ParseDateKey(dateKey.String()); err != nil {
		return false
	}

	now := s.timeProvider.Now()
	day, err := dateKey.Time(now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) || day.Weekday() == time.Sunday {
		return false
	}

	if s.draft.DateKey != dateKey {
		s.draft.SlotID = ""
		s.view = nil
	}
	s.draft.DateKey = dateKey
	return true
}

// Availability обновляет представление доступности для выбранных даты и специалиста
func (s *Session) Availability(ctx context.Context) (*domain.AvailabilityView, error) {
	if s.draft.ProfessionalID == "" || s.draft.DateKey == "" {
		return nil, fmt.Errorf("%w: date and professional must be selected", ErrNotReady)
	}
	s.view = s.availability.Refresh(ctx, s.draft.DateKey, s.draft.ProfessionalID)
	return s.view, nil
}

// SelectSlot выбирает слот, который текущее представление считает доступным
func (s *Session) SelectSlot(slotID string) bool {
	if s.step != StepDateTime || s.view == nil {
		return false
	}
	if s.view.DateKey != s.draft.DateKey || s.view.ProfessionalID != s.draft.ProfessionalID {
		return false
	}
	if !s.view.Available(slotID) {
		return false
	}
	s.draft.SlotID = slotID
	return true
}

// SetContact заполняет контактные данные клиента
func (s *Session) SetContact(name, phone, observations string) bool {
	if s.step != StepContact {
		return false
	}
	name, phone, observations = strings.TrimSpace(name), strings.TrimSpace(phone), strings.TrimSpace(observations)
	if utf8.RuneCountInString(name) > domain.MaxClientNameLength ||
		utf8.RuneCountInString(phone) > domain.MaxClientPhoneLength ||
		utf8.RuneCountInString(observations) > domain.MaxObservationsLength {
		return false
	}
	s.draft.ClientName = name
	s.draft.ClientPhone = phone
	s.draft.Observations = observations
	return true
}

// Next переход вперед; если условие шага не выполнено, сессия остается на месте
func (s *Session) Next() bool {
	if !s.canProceed() {
		return false
	}
	next, ok := s.step.next()
	if !ok {
		return false
	}
	s.step = next
	return true
}

// Back возврат на предыдущий шаг, введенные данные сохраняются
func (s *Session) Back() bool {
	prev, ok := s.step.previous()
	if !ok {
		return false
	}
	s.step = prev
	return true
}

// Reset очищает черновик и возвращает мастер к выбору услуги
func (s *Session) Reset() {
	s.step = StepService
	s.draft = Draft{}
	s.view = nil
}

func (s *Session) canProceed() bool {
	switch s.step {
	case StepService:
		return s.draft.ServiceID != ""
	case StepProfessional:
		return s.draft.ProfessionalID != ""
	case StepDateTime:
		return s.draft.DateKey != "" && s.draft.SlotID != ""
	case StepContact:
		return s.draft.ClientName != "" && s.draft.ClientPhone != ""
	case StepConfirmation:
		return false
	}
	return false
}

// Confirm бронирует слот черновика
// 1. Бронирование в ledger
// 2. Успех: оптимистичная отметка в кеше, сообщение подтверждения, черновик сбрасывается
// 3. Конфликт: возврат к выбору даты и времени со сброшенным слотом и обновленной доступностью
// 4. Ledger недоступен: шаг подтверждения сохраняется, ошибку можно повторить
func (s *Session) Confirm(ctx context.Context) (*Result, error) {
	if s.step != StepConfirmation {
		return nil, fmt.Errorf("%w: confirm is only available at %s step, current=%s", ErrNotReady, StepConfirmation, s.step)
	}
	d := s.draft

	s.logger.Info("Confirm: date=%s slot=%s professional=%s admin=%d", d.DateKey, d.SlotID, d.ProfessionalID, s.adminID)

	// Шаг 1: бронирование
	reservation, err := s.ledger.CreateReservation(ctx, d.DateKey, d.SlotID, d.ProfessionalID, s.adminID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrConflict):
			s.logger.Warn("Confirm: slot=%s already taken for date=%s professional=%s", d.SlotID, d.DateKey, d.ProfessionalID)
			s.step = StepDateTime
			s.draft.SlotID = ""
			s.view = s.availability.Refresh(ctx, d.DateKey, d.ProfessionalID)
			return nil, fmt.Errorf("%w: Confirm - create reservation: %v", ErrSlotTaken, err)
		case errors.Is(err, ledger.ErrUnavailable):
			s.logger.Warn("Confirm: ledger unavailable: %v", err)
			return nil, fmt.Errorf("%w: Confirm - create reservation: %v", ErrRetryable, err)
		default:
			s.logger.Error("Confirm: reservation rejected: %v", err)
			return nil, fmt.Errorf("%w: Confirm - create reservation: %v", ErrRejected, err)
		}
	}

	// Шаг 2: оптимистичная отметка
	s.overlay.MarkReserved(ctx, d.DateKey, d.ProfessionalID, d.SlotID)

	// Шаг 3: сообщение подтверждения
	result := &Result{Reservation: reservation}
	msg, err := confirmation.Build(s.phone, s.details(d))
	if err != nil {
		s.logger.Error("Confirm: failed to build confirmation for reservation id=%d: %v", reservation.ID, err)
	} else {
		result.Confirmation = msg
	}

	s.logger.Info("Confirm: reservation id=%d created", reservation.ID)
	s.Reset()
	return result, nil
}

func (s *Session) details(d Draft) confirmation.Details {
	service, _ := s.catalog.Service(d.ServiceID)
	professional, _ := s.catalog.Professional(d.ProfessionalID)
	slot, _ := s.catalog.Slot(d.SlotID)

	return confirmation.Details{
		ClientName:   d.ClientName,
		ClientPhone:  d.ClientPhone,
		Service:      service,
		Professional: professional,
		DateKey:      d.DateKey,
		Slot:         slot,
		Observations: d.Observations,
	}
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
