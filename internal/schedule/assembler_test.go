package schedule

import (
	"testing"

	"sport_school/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestForAthleteSortedAndEnriched(t *testing.T) {
	db := setupTestDB(t)
	coachID := seedCoach(t, db, "Иванова Анна Сергеевна")

	sport := models.SportType{Name: "Плавание", Description: "Техника плавания"}
	assert.NoError(t, db.Create(&sport).Error)
	assert.NoError(t, db.Create(&models.CoachSportType{CoachID: coachID, SportTypeID: sport.ID}).Error)

	hall := seedHall(t, db, "Бассейн 1")
	group := seedGroup(t, db, "Юниоры, плавание", coachID, 6)
	athleteID := seedAthlete(t, db, "Тестовый спортсмен")
	assert.NoError(t, db.Create(&models.GroupAthlete{GroupID: group.ID, AthleteID: athleteID}).Error)

	// Вставка нарочно не в хронологическом порядке.
	seedTraining(t, db, group.ID, hall.ID, ts(t, "2025-01-12T09:00:00Z"), ts(t, "2025-01-12T10:30:00Z"), true)
	seedTraining(t, db, group.ID, hall.ID, ts(t, "2025-01-10T18:00:00Z"), ts(t, "2025-01-10T19:30:00Z"), true)
	seedTraining(t, db, group.ID, hall.ID, ts(t, "2025-01-10T09:00:00Z"), ts(t, "2025-01-10T10:30:00Z"), true)

	entries, err := ForAthlete(db, athleteID)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)

	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		ok := prev.Date < cur.Date || (prev.Date == cur.Date && prev.Time <= cur.Time)
		assert.True(t, ok, "Расписание должно быть отсортировано по (дата, время)")
	}
	assert.Equal(t, "2025-01-10", entries[0].Date)
	assert.Equal(t, "09:00", entries[0].Time)
	assert.Equal(t, "18:00", entries[1].Time)
	assert.Equal(t, "2025-01-12", entries[2].Date)

	for _, e := range entries {
		assert.Equal(t, TypeGroup, e.Type)
		assert.Equal(t, "Тренировка: Плавание", e.Title)
		assert.Equal(t, "Бассейн 1", e.Location)
		assert.Equal(t, "Иванова Анна Сергеевна", e.Coach)
		// Число участников одинаково для всех тренировок группы:
		// 6 из фикстуры плюс добавленный спортсмен.
		assert.Equal(t, 7, e.Participants)
	}
}

func TestForAthleteSentinelsWhenRelationsMissing(t *testing.T) {
	db := setupTestDB(t)
	group := seedGroup(t, db, "Группа без тренера", 0, 1)
	athleteID := seedAthlete(t, db, "Одиночка")
	assert.NoError(t, db.Create(&models.GroupAthlete{GroupID: group.ID, AthleteID: athleteID}).Error)

	// Тренировка без связи с залом.
	seedTraining(t, db, group.ID, 0, ts(t, "2025-01-10T09:00:00Z"), ts(t, "2025-01-10T10:00:00Z"), false)

	entries, err := ForAthlete(db, athleteID)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, NoCoachLabel, entries[0].Coach, "Отсутствующий тренер — подстановочная подпись, не ошибка")
	assert.Equal(t, NoHallLabel, entries[0].Location)
	assert.Equal(t, "Групповая тренировка", entries[0].Title)
	assert.Equal(t, TypeIndividual, entries[0].Type)
}

func TestForAthleteUnknownIDGivesEmptySchedule(t *testing.T) {
	db := setupTestDB(t)

	entries, err := ForAthlete(db, 12345)
	assert.NoError(t, err, "Несуществующий спортсмен — не ошибка")
	assert.NotNil(t, entries)
	assert.Len(t, entries, 0)
}

func TestForAthleteAcrossSeveralGroups(t *testing.T) {
	db := setupTestDB(t)
	coachID := seedCoach(t, db, "Орлов Андрей Викторович")
	hall := seedHall(t, db, "Зал бокса")

	groupA := seedGroup(t, db, "Бокс", coachID, 2)
	groupB := seedGroup(t, db, "Борьба", coachID, 4)
	athleteID := seedAthlete(t, db, "Универсал")
	assert.NoError(t, db.Create(&models.GroupAthlete{GroupID: groupA.ID, AthleteID: athleteID}).Error)
	assert.NoError(t, db.Create(&models.GroupAthlete{GroupID: groupB.ID, AthleteID: athleteID}).Error)

	seedTraining(t, db, groupA.ID, hall.ID, ts(t, "2025-01-11T09:00:00Z"), ts(t, "2025-01-11T10:00:00Z"), true)
	seedTraining(t, db, groupB.ID, hall.ID, ts(t, "2025-01-10T09:00:00Z"), ts(t, "2025-01-10T10:00:00Z"), true)

	entries, err := ForAthlete(db, athleteID)
	assert.NoError(t, err)
	assert.Len(t, entries, 2, "Расписание объединяет тренировки всех групп спортсмена")
	assert.Equal(t, "2025-01-10", entries[0].Date)

	// Участники считаются на момент вызова для каждой группы отдельно.
	assert.Equal(t, 5, entries[0].Participants, "Группа Борьба: 4 + добавленный")
	assert.Equal(t, 3, entries[1].Participants, "Группа Бокс: 2 + добавленный")
}

func TestForCoachUsesOwnName(t *testing.T) {
	db := setupTestDB(t)
	coachID := seedCoach(t, db, "Никитин Сергей Петрович")
	hall := seedHall(t, db, "Бассейн 1")
	group := seedGroup(t, db, "Юниоры", coachID, 3)

	seedTraining(t, db, group.ID, hall.ID, ts(t, "2025-01-10T09:00:00Z"), ts(t, "2025-01-10T10:30:00Z"), true)
	seedTraining(t, db, group.ID, hall.ID, ts(t, "2025-01-11T09:00:00Z"), ts(t, "2025-01-11T10:30:00Z"), true)

	entries, err := ForCoach(db, coachID)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "Никитин Сергей Петрович", e.Coach)
		assert.Equal(t, 3, e.Participants)
	}

	entries, err = ForCoach(db, coachID+100)
	assert.NoError(t, err)
	assert.Len(t, entries, 0, "Несуществующий тренер — пустое расписание")
}
