package schedule

import (
	"sort"

	"sport_school/internal/models"
)

// TrainingType — тип занятия в расписании.
type TrainingType string

const (
	TypeIndividual TrainingType = "individual"
	TypeGroup      TrainingType = "group"
)

// Подстановочные подписи для отсутствующих связей. Используются только
// при сборке Entry, внутри разрешение связей работает с указателями.
const (
	NoCoachLabel = "Тренер не назначен"
	NoHallLabel  = "Зал не указан"
)

// Entry — одна тренировка в собранном расписании спортсмена или тренера.
type Entry struct {
	ID           uint         `json:"id"`
	Type         TrainingType `json:"type"`
	Title        string       `json:"title"`
	Time         string       `json:"time"`     // HH:MM начала
	Location     string       `json:"location"` // имя зала или NoHallLabel
	Date         string       `json:"date"`     // YYYY-MM-DD начала
	Coach        string       `json:"coach"`    // ФИО тренера или NoCoachLabel
	Participants int          `json:"participants"`
}

func trainingType(t models.Training) TrainingType {
	if t.IsGroupTraining {
		return TypeGroup
	}
	return TypeIndividual
}

// less сравнивает записи по составному ключу (дата, время). Строкового
// сравнения достаточно: оба формата фиксированной ширины с нулями.
func less(a, b Entry) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return a.Time < b.Time
}

// SortEntries сортирует расписание по возрастанию (дата, время).
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})
}

// Filter возвращает записи заданного типа. Фильтр применяется к уже
// собранному и отсортированному списку, а не при выборке из базы.
func Filter(entries []Entry, t TrainingType) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Type == t {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
