package memory

import (
	"sort"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// sortByDateAndID повторяет ORDER BY date_key ASC, id ASC postgres-репозиториев
func sortByDateAndID[T any](items []T, key func(T) (domain.DateKey, int64)) {
	sort.SliceStable(items, func(i, j int) bool {
		di, ii := key(items[i])
		dj, ij := key(items[j])
		if di != dj {
			return di < dj
		}
		return ii < ij
	})
}
