package catalog

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// fileCatalog структура TOML-файла справочника
type fileCatalog struct {
	Services []struct {
		ID              string  `toml:"id"`
		Name            string  `toml:"name"`
		DurationMinutes int     `toml:"duration_minutes"`
		Price           float64 `toml:"price"`
	} `toml:"services"`
	Professionals []struct {
		ID          string   `toml:"id"`
		Name        string   `toml:"name"`
		Avatar      string   `toml:"avatar"`
		Specialties []string `toml:"specialties"`
	} `toml:"professionals"`
	Slots []struct {
		ID            string `toml:"id"`
		Time          string `toml:"time"`
		BaseAvailable *bool  `toml:"base_available"` // по умолчанию true
	} `toml:"slots"`
}

// LoadFile загружает справочник из TOML-файла
func LoadFile(path string) (*Catalog, error) {
	var fc fileCatalog
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFile, path, err)
	}

	services := make([]domain.Service, len(fc.Services))
	for i, s := range fc.Services {
		services[i] = domain.Service{ID: s.ID, Name: s.Name, DurationMinutes: s.DurationMinutes, Price: s.Price}
	}

	professionals := make([]domain.Professional, len(fc.Professionals))
	for i, p := range fc.Professionals {
		professionals[i] = domain.Professional{ID: p.ID, Name: p.Name, Avatar: p.Avatar, Specialties: p.Specialties}
	}

	slots := make([]domain.CanonicalSlot, len(fc.Slots))
	for i, s := range fc.Slots {
		baseAvailable := true
		if s.BaseAvailable != nil {
			baseAvailable = *s.BaseAvailable
		}
		slots[i] = domain.CanonicalSlot{ID: s.ID, Time: s.Time, BaseAvailable: baseAvailable}
	}

	return New(services, professionals, slots)
}
