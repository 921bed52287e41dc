package schedule

import (
	"time"

	"sport_school/internal/models"

	"gorm.io/gorm"
)

// ResourceKind — вид ресурса, для которого запрещено двойное бронирование.
type ResourceKind string

const (
	ResourceHall  ResourceKind = "hall"
	ResourceCoach ResourceKind = "coach"
)

// Два полуоткрытых интервала [s1,e1) и [s2,e2) пересекаются тогда и только
// тогда, когда s1 < e2 и e1 > s2. Стык интервалов (e1 == s2) пересечением
// не считается.

// HallAvailable проверяет, свободен ли зал в интервале [start, end).
// Проверка выполняется одним запросом существования, чтобы не вычитывать
// все тренировки в память.
func HallAvailable(db *gorm.DB, hallID uint, start, end time.Time) (bool, error) {
	if !start.Before(end) {
		return false, ErrInvalidInterval
	}

	var count int64
	err := db.Model(&models.Training{}).
		Joins("JOIN training_halls ON training_halls.training_id = trainings.id").
		Where("training_halls.hall_id = ? AND trainings.start_time < ? AND trainings.end_time > ?",
			hallID, end, start).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// CoachAvailable проверяет, свободен ли тренер в интервале [start, end).
// Занятость тренера выводится транзитивно: тренер → его группы → тренировки
// этих групп.
func CoachAvailable(db *gorm.DB, coachID uint, start, end time.Time) (bool, error) {
	if !start.Before(end) {
		return false, ErrInvalidInterval
	}

	var count int64
	err := db.Model(&models.Training{}).
		Joins("JOIN training_groups ON training_groups.training_id = trainings.id").
		Joins("JOIN group_coaches ON group_coaches.group_id = training_groups.group_id").
		Where("group_coaches.coach_id = ? AND trainings.start_time < ? AND trainings.end_time > ?",
			coachID, end, start).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// IsResourceAvailable — общая точка входа проверки доступности ресурса.
func IsResourceAvailable(db *gorm.DB, kind ResourceKind, id uint, start, end time.Time) (bool, error) {
	switch kind {
	case ResourceCoach:
		return CoachAvailable(db, id, start, end)
	default:
		return HallAvailable(db, id, start, end)
	}
}
