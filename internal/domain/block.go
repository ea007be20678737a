package domain

import "time"

// Block блокировка, выставленная администратором
// SlotID == nil - заблокирован весь день специалиста, иначе только указанный слот
type Block struct {
	ID             int64
	DateKey        DateKey
	ProfessionalID string
	AdminID        int64
	SlotID         *string
	CreatedAt      time.Time
}

// IsWholeDay returns true if the block covers the entire date
func (b *Block) IsWholeDay() bool {
	return b.SlotID == nil
}

// BlockFilter фильтр списка блокировок, nil - без ограничения
type BlockFilter struct {
	DateKey        *DateKey
	ProfessionalID *string
	AdminID        *int64
}

// Matches проверяет, подходит ли блокировка под фильтр
func (f BlockFilter) Matches(b *Block) bool {
	if f.DateKey != nil && b.DateKey != *f.DateKey {
		return false
	}
	if f.ProfessionalID != nil && b.ProfessionalID != *f.ProfessionalID {
		return false
	}
	if f.AdminID != nil && b.AdminID != *f.AdminID {
		return false
	}
	return true
}

// IsDayBlocked returns true if any whole-day block exists for the date and professional
func IsDayBlocked(blocks []*Block, dateKey DateKey, professionalID string) bool {
	for _, b := range blocks {
		if b.IsWholeDay() && b.DateKey == dateKey && b.ProfessionalID == professionalID {
			return true
		}
	}
	return false
}
