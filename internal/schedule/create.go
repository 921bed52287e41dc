package schedule

import (
	"errors"
	"fmt"
	"time"

	"sport_school/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateResult — итог успешного создания тренировки.
type CreateResult struct {
	TrainingID uint
	IsGroup    bool
	Message    string
}

// CreateTraining — единственная точка создания тренировок. Проверка
// доступности зала и тренера и вставка строк выполняются в одной
// транзакции; строки зала и тренера блокируются SELECT ... FOR UPDATE,
// поэтому два конкурентных создания на один ресурс сериализуются и
// второе видит тренировку первого.
//
// Порядок проверок фиксирован: сначала зал, затем тренер — при двойном
// конфликте сообщение называет зал.
func CreateTraining(db *gorm.DB, start, end time.Time, groupID, hallID uint) (*CreateResult, error) {
	if !start.Before(end) {
		return nil, ErrInvalidInterval
	}
	start = start.UTC()
	end = end.UTC()

	var result CreateResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var hall models.Hall
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&hall, hallID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Kind: "зал", ID: hallID}
			}
			return err
		}

		free, err := HallAvailable(tx, hall.ID, start, end)
		if err != nil {
			return err
		}
		if !free {
			return &ConflictError{
				Resource: hall.Name,
				Message:  fmt.Sprintf("Зал «%s» уже занят в указанное время", hall.Name),
			}
		}

		var group models.Group
		if err := tx.First(&group, groupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Kind: "группа", ID: groupID}
			}
			return err
		}

		coach, err := groupCoach(tx, group.ID)
		if err != nil {
			return err
		}
		if coach != nil {
			var coachRow models.Coach
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&coachRow, "user_id = ?", coach.CoachID).Error; err != nil {
				return err
			}

			free, err := CoachAvailable(tx, coach.CoachID, start, end)
			if err != nil {
				return err
			}
			if !free {
				return &ConflictError{
					Resource: coach.FullName,
					Message:  fmt.Sprintf("Тренер %s уже занят в указанное время", coach.FullName),
				}
			}
		}

		participants, err := GroupMemberCount(tx, group.ID)
		if err != nil {
			return err
		}

		training := models.Training{
			StartTime:       start,
			EndTime:         end,
			IsGroupTraining: participants > 1,
		}
		// Create заполняет training.ID; связи вставляются только после этого,
		// в той же транзакции — тренировка без связей наружу не выходит.
		if err := tx.Create(&training).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.TrainingGroup{TrainingID: training.ID, GroupID: group.ID}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.TrainingHall{TrainingID: training.ID, HallID: hall.ID}).Error; err != nil {
			return err
		}

		kind := "индивидуальная"
		if training.IsGroupTraining {
			kind = "групповая"
		}
		result = CreateResult{
			TrainingID: training.ID,
			IsGroup:    training.IsGroupTraining,
			Message:    fmt.Sprintf("Тренировка %d создана (%s)", training.ID, kind),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
