package catalog

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// Default справочник барбершопа по умолчанию
// Слоты "3" (09:00) и "6" (10:30) выведены из оборота
func Default() *Catalog {
	c, err := New(
		[]domain.Service{
			{ID: "1", Name: "Corte de Cabelo", DurationMinutes: 30, Price: 25},
			{ID: "2", Name: "Barba", DurationMinutes: 20, Price: 15},
			{ID: "3", Name: "Corte + Barba", DurationMinutes: 45, Price: 35},
			{ID: "4", Name: "Bigode", DurationMinutes: 15, Price: 10},
		},
		[]domain.Professional{
			{ID: "1", Name: "João Silva", Avatar: "👨‍🦲", Specialties: []string{"Corte Clássico", "Barba"}},
			{ID: "2", Name: "Carlos Santos", Avatar: "👨‍🦱", Specialties: []string{"Corte Moderno", "Degradê"}},
			{ID: "3", Name: "Rafael Costa", Avatar: "👨‍🦳", Specialties: []string{"Barba", "Bigode"}},
		},
		[]domain.CanonicalSlot{
			{ID: "1", Time: "08:00", BaseAvailable: true},
			{ID: "2", Time: "08:30", BaseAvailable: true},
			{ID: "3", Time: "09:00", BaseAvailable: false},
			{ID: "4", Time: "09:30", BaseAvailable: true},
			{ID: "5", Time: "10:00", BaseAvailable: true},
			{ID: "6", Time: "10:30", BaseAvailable: false},
			{ID: "7", Time: "11:00", BaseAvailable: true},
			{ID: "8", Time: "14:00", BaseAvailable: true},
			{ID: "9", Time: "14:30", BaseAvailable: true},
			{ID: "10", Time: "15:00", BaseAvailable: true},
		},
	)
	if err != nil {
		// встроенные данные валидны, ошибка здесь - ошибка разработчика
		panic(err)
	}
	return c
}
