package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"sport_school/internal/models"
	"sport_school/internal/response"
	"sport_school/internal/schedule"
	"sport_school/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedCoachesHandler заполняет базу тестовыми тренерами
// @Summary		Тестовые данные: тренеры
// @Description	Создает виды спорта, тренеров и их специализации, если их еще нет
// @Tags			tests
// @Produce		json
// @Success		200	{object}	response.SuccessResponse	"Данные добавлены или уже существуют"
// @Failure		500	{object}	response.ErrorResponse		"Ошибка сервера (DB_ERROR)"
// @Router			/tests/coaches [post]
func SeedCoachesHandler(c *gin.Context) {
	err := storage.DB.Transaction(func(tx *gorm.DB) error {
		var sportTypeRows int64
		tx.Model(&models.SportType{}).Count(&sportTypeRows)
		if sportTypeRows == 0 {
			sportTypes := []models.SportType{
				{Name: "Плавание", Description: "Отработка техники плавания, развитие выносливости"},
				{Name: "Борьба", Description: "Изучение техник единоборств, работа в партере и стойке"},
				{Name: "Легкая атлетика", Description: "Беговые дисциплины, прыжки, метания"},
				{Name: "Гимнастика", Description: "Спортивная и художественная гимнастика"},
				{Name: "Бокс", Description: "Освоение ударной техники, тренировки на снарядах"},
				{Name: "Кроссфит", Description: "Высокоинтенсивные функциональные тренировки"},
				{Name: "Йога", Description: "Практика асан и дыхательных упражнений"},
			}
			if err := tx.Create(&sportTypes).Error; err != nil {
				return err
			}
			log.Println("Виды спорта добавлены")
		} else {
			log.Println("Виды спорта уже существуют в базе данных")
		}

		var coachRows int64
		tx.Model(&models.Coach{}).Count(&coachRows)
		if coachRows > 0 {
			log.Println("Тренеры уже существуют в базе данных")
			return nil
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		coaches := []struct {
			FullName        string
			Phone           string
			Email           string
			ExperienceYears int
			Bio             string
			Sports          []string
		}{
			{"Иванова Анна Сергеевна", "+79991112233", "ivanova@example.com", 8, "Сертифицированный тренер по плаванию", []string{"Плавание", "Йога"}},
			{"Никитин Сергей Петрович", "+79991112238", "nikitin@example.com", 10, "Тренер по плаванию и аквааэробике", []string{"Плавание"}},
			{"Орлов Андрей Викторович", "+79991112240", "orlov@example.com", 12, "Эксперт по боевым искусствам", []string{"Бокс", "Борьба"}},
			{"Морозова Ольга Дмитриевна", "+79991112237", "morozova@example.com", 3, "Специалист по кроссфиту и HIIT", []string{"Кроссфит"}},
			{"Семенов Павел Геннадьевич", "+79991112242", "semenov@example.com", 9, "Специалист по тренировкам для старшего возраста", []string{"Йога"}},
		}

		for _, data := range coaches {
			user := models.User{
				FullName:     data.FullName,
				Phone:        data.Phone,
				Email:        data.Email,
				PasswordHash: string(passwordHash),
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.Coach{
				UserID:          user.ID,
				ExperienceYears: data.ExperienceYears,
				Bio:             data.Bio,
			}).Error; err != nil {
				return err
			}
			for _, sportName := range data.Sports {
				var sportType models.SportType
				if err := tx.Where("name = ?", sportName).First(&sportType).Error; err != nil {
					return err
				}
				if err := tx.Create(&models.CoachSportType{
					CoachID:     user.ID,
					SportTypeID: sportType.ID,
				}).Error; err != nil {
					return err
				}
			}
		}
		log.Println("Тренеры и специализации добавлены")
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка заполнения тестовых данных",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Тестовые данные успешно добавлены"})
}

// SeedTrainingsHandler заполняет базу тестовым расписанием
// @Summary		Тестовые данные: тренировки
// @Description	Создает залы, группы, спортсменов и тренировки; тренировки создаются через общий механизм с проверкой доступности
// @Tags			tests
// @Produce		json
// @Success		200	{object}	response.SuccessResponse	"Данные добавлены или уже существуют"
// @Failure		400	{object}	response.ErrorResponse		"Сначала добавьте тренеров (NO_COACHES)"
// @Failure		500	{object}	response.ErrorResponse		"Ошибка сервера (DB_ERROR)"
// @Router			/tests/trainings [post]
func SeedTrainingsHandler(c *gin.Context) {
	var trainingRows int64
	storage.DB.Model(&models.Training{}).Count(&trainingRows)
	if trainingRows > 0 {
		c.JSON(http.StatusOK, response.SuccessResponse{
			Message: "Тестовые данные о тренировках уже существуют в базе данных",
		})
		return
	}

	var coaches []models.Coach
	if err := storage.DB.Order("user_id").Find(&coaches).Error; err != nil || len(coaches) == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "NO_COACHES",
			Message: "Тренеры не найдены, сначала добавьте тренеров",
		})
		return
	}

	err := storage.DB.Transaction(func(tx *gorm.DB) error {
		halls := []models.Hall{
			{Name: "Бассейн 1", Capacity: 30},
			{Name: "Зал №2", Capacity: 40},
			{Name: "Зал бокса", Capacity: 20},
		}
		if err := tx.Create(&halls).Error; err != nil {
			return err
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		groups := []models.Group{
			{Name: "Юниоры, плавание"},
			{Name: "Бокс, взрослые"},
			{Name: "Индивидуальная подготовка"},
		}
		if err := tx.Create(&groups).Error; err != nil {
			return err
		}

		// Первая группа — 4 спортсмена, вторая — 3, третья — 1 (индивидуальная).
		memberCounts := []int{4, 3, 1}
		athleteSeq := 0
		for i, group := range groups {
			coach := coaches[i%len(coaches)]
			if err := tx.Create(&models.GroupCoach{GroupID: group.ID, CoachID: coach.UserID}).Error; err != nil {
				return err
			}
			for j := 0; j < memberCounts[i]; j++ {
				athleteSeq++
				user := models.User{
					FullName:     fmt.Sprintf("Спортсмен %d", athleteSeq),
					Phone:        fmt.Sprintf("+7999200%04d", athleteSeq),
					Email:        fmt.Sprintf("athlete%d@example.com", athleteSeq),
					PasswordHash: string(passwordHash),
				}
				if err := tx.Create(&user).Error; err != nil {
					return err
				}
				if err := tx.Create(&models.Athlete{UserID: user.ID}).Error; err != nil {
					return err
				}
				if err := tx.Create(&models.GroupAthlete{GroupID: group.ID, AthleteID: user.ID}).Error; err != nil {
					return err
				}
			}
		}

		// Тренировки — только через общий механизм создания.
		base := time.Now().UTC().AddDate(0, 0, 1).Truncate(24 * time.Hour)
		seedSlots := []struct {
			Group uint
			Hall  uint
			Start time.Time
			End   time.Time
		}{
			{groups[0].ID, halls[0].ID, base.Add(9 * time.Hour), base.Add(10*time.Hour + 30*time.Minute)},
			{groups[1].ID, halls[2].ID, base.Add(11 * time.Hour), base.Add(12*time.Hour + 30*time.Minute)},
			{groups[2].ID, halls[1].ID, base.Add(14 * time.Hour), base.Add(15 * time.Hour)},
			{groups[0].ID, halls[0].ID, base.Add(24 * time.Hour).Add(9 * time.Hour), base.Add(24 * time.Hour).Add(10*time.Hour + 30*time.Minute)},
		}
		for _, slot := range seedSlots {
			if _, err := schedule.CreateTraining(tx, slot.Start, slot.End, slot.Group, slot.Hall); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка заполнения тестового расписания",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{
		Message: "Тестовые данные о тренировках успешно добавлены",
	})
}
