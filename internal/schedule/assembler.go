package schedule

import (
	"fmt"

	"sport_school/internal/models"

	"gorm.io/gorm"
)

// Подпись группового занятия без специализации тренера.
const genericTitle = "Групповая тренировка"

// coachRef — тренер группы, разрешённый один раз на группу.
type coachRef struct {
	CoachID  uint
	FullName string
}

// ForAthlete собирает расписание спортсмена: группы, в которых он состоит,
// тренировки этих групп, обогащённые залом, тренером, заголовком и числом
// участников. Несуществующий id даёт пустое расписание, а не ошибку.
func ForAthlete(db *gorm.DB, athleteID uint) ([]Entry, error) {
	var groups []models.Group
	if err := db.
		Joins("JOIN group_athletes ON group_athletes.group_id = groups.id").
		Where("group_athletes.athlete_id = ?", athleteID).
		Order("groups.id").
		Find(&groups).Error; err != nil {
		return nil, err
	}

	entries := []Entry{}
	for _, group := range groups {
		coach, err := groupCoach(db, group.ID)
		if err != nil {
			return nil, err
		}

		var coachName *string
		title := genericTitle
		if coach != nil {
			coachName = &coach.FullName
			title, err = coachTitle(db, coach.CoachID)
			if err != nil {
				return nil, err
			}
		}

		items, err := groupEntries(db, group.ID, title, coachName)
		if err != nil {
			return nil, err
		}
		entries = append(entries, items...)
	}

	SortEntries(entries)
	return entries, nil
}

// ForCoach собирает расписание тренера по его группам. Поле coach всегда
// содержит имя самого тренера, без повторного разрешения на каждую группу.
func ForCoach(db *gorm.DB, coachID uint) ([]Entry, error) {
	var coachName *string
	var fullName string
	res := db.Table("users").
		Select("users.full_name").
		Joins("JOIN coaches ON coaches.user_id = users.id").
		Where("coaches.user_id = ?", coachID).
		Limit(1).
		Scan(&fullName)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		coachName = &fullName
	}

	title, err := coachTitle(db, coachID)
	if err != nil {
		return nil, err
	}

	var groups []models.Group
	if err := db.
		Joins("JOIN group_coaches ON group_coaches.group_id = groups.id").
		Where("group_coaches.coach_id = ?", coachID).
		Order("groups.id").
		Find(&groups).Error; err != nil {
		return nil, err
	}

	entries := []Entry{}
	for _, group := range groups {
		items, err := groupEntries(db, group.ID, title, coachName)
		if err != nil {
			return nil, err
		}
		entries = append(entries, items...)
	}

	SortEntries(entries)
	return entries, nil
}

// groupEntries строит записи всех тренировок одной группы. Число участников
// считается один раз на группу: оно одинаково для всех её тренировок.
func groupEntries(db *gorm.DB, groupID uint, title string, coachName *string) ([]Entry, error) {
	participants, err := GroupMemberCount(db, groupID)
	if err != nil {
		return nil, err
	}

	var trainings []models.Training
	if err := db.
		Joins("JOIN training_groups ON training_groups.training_id = trainings.id").
		Where("training_groups.group_id = ?", groupID).
		Find(&trainings).Error; err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(trainings))
	for _, training := range trainings {
		hallName, err := trainingHallName(db, training.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, buildEntry(training, title, coachName, hallName, participants))
	}
	return entries, nil
}

// buildEntry — граница представления: здесь и только здесь отсутствующие
// связи превращаются в подстановочные подписи.
func buildEntry(t models.Training, title string, coachName, hallName *string, participants int) Entry {
	coach := NoCoachLabel
	if coachName != nil {
		coach = *coachName
	}
	location := NoHallLabel
	if hallName != nil {
		location = *hallName
	}
	start := t.StartTime.UTC()
	return Entry{
		ID:           t.ID,
		Type:         trainingType(t),
		Title:        title,
		Time:         start.Format("15:04"),
		Location:     location,
		Date:         start.Format("2006-01-02"),
		Coach:        coach,
		Participants: participants,
	}
}

// groupCoach возвращает первого закреплённого за группой тренера,
// nil — если тренер не назначен (это допустимое состояние, не ошибка).
func groupCoach(db *gorm.DB, groupID uint) (*coachRef, error) {
	var ref coachRef
	res := db.Table("group_coaches").
		Select("group_coaches.coach_id, users.full_name").
		Joins("JOIN users ON users.id = group_coaches.coach_id").
		Where("group_coaches.group_id = ?", groupID).
		Order("group_coaches.coach_id").
		Limit(1).
		Scan(&ref)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &ref, nil
}

// coachTitle строит заголовок занятия по первой специализации тренера.
func coachTitle(db *gorm.DB, coachID uint) (string, error) {
	specs, err := CoachSpecializations(db, coachID)
	if err != nil {
		return "", err
	}
	if len(specs) == 0 {
		return genericTitle, nil
	}
	return fmt.Sprintf("Тренировка: %s", specs[0]), nil
}

// CoachSpecializations возвращает названия видов спорта тренера.
func CoachSpecializations(db *gorm.DB, coachID uint) ([]string, error) {
	var names []string
	err := db.Table("sport_types").
		Select("sport_types.name").
		Joins("JOIN coach_sport_types ON coach_sport_types.sport_type_id = sport_types.id").
		Where("coach_sport_types.coach_id = ?", coachID).
		Order("sport_types.id").
		Scan(&names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// GroupMemberCount — число спортсменов в группе на момент вызова.
func GroupMemberCount(db *gorm.DB, groupID uint) (int, error) {
	var count int64
	err := db.Model(&models.GroupAthlete{}).
		Where("group_id = ?", groupID).
		Count(&count).Error
	return int(count), err
}

func trainingHallName(db *gorm.DB, trainingID uint) (*string, error) {
	var name string
	res := db.Table("halls").
		Select("halls.name").
		Joins("JOIN training_halls ON training_halls.hall_id = halls.id").
		Where("training_halls.training_id = ?", trainingID).
		Limit(1).
		Scan(&name)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &name, nil
}
