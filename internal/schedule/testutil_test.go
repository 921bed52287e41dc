package schedule

import (
	"fmt"
	"os"
	"testing"
	"time"

	"sport_school/internal/models"
	"sport_school/internal/storage"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		_ = godotenv.Load("../../.env")
	}

	storage.ConnectTestingDatabase()

	if err := storage.DB.AutoMigrate(models.All()...); err != nil {
		t.Fatal("Ошибка при миграции... ", err.Error())
	}
	storage.DB.Exec("TRUNCATE TABLE users, athletes, coaches, sport_types, coach_sport_types, groups, group_athletes, group_coaches, halls, trainings, training_groups, training_halls RESTART IDENTITY CASCADE;")

	return storage.DB
}

var seedSeq int

func seedUser(t *testing.T, db *gorm.DB, fullName string) models.User {
	seedSeq++
	user := models.User{
		FullName:     fullName,
		Phone:        fmt.Sprintf("+7999000%04d", seedSeq),
		Email:        fmt.Sprintf("user%d_%d@example.com", seedSeq, time.Now().UnixNano()),
		PasswordHash: "hashed123",
	}
	assert.NoError(t, db.Create(&user).Error, "Ошибка создания пользователя")
	return user
}

func seedCoach(t *testing.T, db *gorm.DB, fullName string) uint {
	user := seedUser(t, db, fullName)
	coach := models.Coach{UserID: user.ID, ExperienceYears: 5, Bio: "Тестовый тренер"}
	assert.NoError(t, db.Create(&coach).Error, "Ошибка создания тренера")
	return user.ID
}

func seedAthlete(t *testing.T, db *gorm.DB, fullName string) uint {
	user := seedUser(t, db, fullName)
	assert.NoError(t, db.Create(&models.Athlete{UserID: user.ID}).Error, "Ошибка создания спортсмена")
	return user.ID
}

func seedHall(t *testing.T, db *gorm.DB, name string) models.Hall {
	hall := models.Hall{Name: name, Capacity: 30}
	assert.NoError(t, db.Create(&hall).Error, "Ошибка создания зала")
	return hall
}

// seedGroup создает группу с тренером (coachID > 0) и заданным числом спортсменов.
func seedGroup(t *testing.T, db *gorm.DB, name string, coachID uint, athletes int) models.Group {
	group := models.Group{Name: name}
	assert.NoError(t, db.Create(&group).Error, "Ошибка создания группы")
	if coachID > 0 {
		assert.NoError(t, db.Create(&models.GroupCoach{GroupID: group.ID, CoachID: coachID}).Error)
	}
	for i := 0; i < athletes; i++ {
		athleteID := seedAthlete(t, db, fmt.Sprintf("Спортсмен %s %d", name, i+1))
		assert.NoError(t, db.Create(&models.GroupAthlete{GroupID: group.ID, AthleteID: athleteID}).Error)
	}
	return group
}

// seedTraining вставляет тренировку со связями напрямую, минуя оркестратор:
// фикстуры для проверок самого оркестратора и проверок доступности.
func seedTraining(t *testing.T, db *gorm.DB, groupID, hallID uint, start, end time.Time, isGroup bool) models.Training {
	training := models.Training{StartTime: start.UTC(), EndTime: end.UTC(), IsGroupTraining: isGroup}
	assert.NoError(t, db.Create(&training).Error, "Ошибка создания тренировки")
	if groupID > 0 {
		assert.NoError(t, db.Create(&models.TrainingGroup{TrainingID: training.ID, GroupID: groupID}).Error)
	}
	if hallID > 0 {
		assert.NoError(t, db.Create(&models.TrainingHall{TrainingID: training.ID, HallID: hallID}).Error)
	}
	return training
}

func ts(t *testing.T, value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	assert.NoError(t, err, "Ошибка разбора времени в тесте")
	return parsed
}
