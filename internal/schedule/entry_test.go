package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortEntriesByDateThenTime(t *testing.T) {
	entries := []Entry{
		{ID: 1, Date: "2025-01-11", Time: "09:00"},
		{ID: 2, Date: "2025-01-10", Time: "18:30"},
		{ID: 3, Date: "2025-01-10", Time: "09:00"},
		{ID: 4, Date: "2025-01-10", Time: "09:00"},
	}

	SortEntries(entries)

	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		ok := prev.Date < cur.Date || (prev.Date == cur.Date && prev.Time <= cur.Time)
		assert.True(t, ok, "Записи %d и %d не упорядочены по (дата, время)", i-1, i)
	}
	assert.Equal(t, uint(1), entries[3].ID, "Запись с поздней датой должна быть последней")
	// Сортировка стабильна: записи с равным ключом сохраняют порядок.
	assert.Equal(t, uint(3), entries[0].ID)
	assert.Equal(t, uint(4), entries[1].ID)
}

func TestFilterKeepsOnlyRequestedType(t *testing.T) {
	entries := []Entry{
		{ID: 1, Type: TypeGroup},
		{ID: 2, Type: TypeIndividual},
		{ID: 3, Type: TypeGroup},
	}

	group := Filter(entries, TypeGroup)
	assert.Len(t, group, 2)
	for _, e := range group {
		assert.Equal(t, TypeGroup, e.Type)
	}

	individual := Filter(entries, TypeIndividual)
	assert.Len(t, individual, 1)
	assert.Equal(t, uint(2), individual[0].ID)

	// Фильтр не меняет исходный список.
	assert.Len(t, entries, 3)
}

func TestFilterEmptyResultIsNotNil(t *testing.T) {
	filtered := Filter([]Entry{{ID: 1, Type: TypeGroup}}, TypeIndividual)
	assert.NotNil(t, filtered)
	assert.Len(t, filtered, 0)
}
