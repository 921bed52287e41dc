package tasks

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"sport_school/internal/models"
	"sport_school/internal/storage"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var taskCtx = context.Background()

// CleanOldTrainings удаляет тренировки, закончившиеся больше 30 дней назад,
// вместе со строками связей — в одной транзакции, чтобы не оставить
// связь без тренировки.
func CleanOldTrainings() {
	threshold := time.Now().Add(-30 * 24 * time.Hour)

	var stale []models.Training
	if err := storage.DB.Where("end_time < ?", threshold).Find(&stale).Error; err != nil {
		log.Println("Ошибка поиска устаревших тренировок:", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	ids := make([]uint, 0, len(stale))
	for _, training := range stale {
		ids = append(ids, training.ID)
	}

	err := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("training_id IN ?", ids).Delete(&models.TrainingHall{}).Error; err != nil {
			return err
		}
		if err := tx.Where("training_id IN ?", ids).Delete(&models.TrainingGroup{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.Training{}).Error
	})
	if err != nil {
		log.Println("Ошибка при удалении устаревших тренировок:", err)
	} else {
		log.Printf("Удалено устаревших тренировок: %d\n", len(ids))
	}
}

// RefreshDirectoryCache прогревает кэш справочника залов в Redis.
func RefreshDirectoryCache() {
	if storage.RedisClient == nil {
		return
	}

	var halls []models.Hall
	if err := storage.DB.Order("id").Find(&halls).Error; err != nil {
		log.Println("Ошибка загрузки залов для кэша:", err)
		return
	}

	type hallItem struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		Capacity int    `json:"capacity"`
	}
	items := make([]hallItem, 0, len(halls))
	for _, hall := range halls {
		items = append(items, hallItem{ID: hall.ID, Name: hall.Name, Capacity: hall.Capacity})
	}

	payload, err := json.Marshal(items)
	if err != nil {
		log.Println("Ошибка сериализации кэша залов:", err)
		return
	}
	if err := storage.RedisClient.Set(taskCtx, "halls_all", string(payload), 6*time.Hour).Err(); err != nil {
		log.Println("Ошибка записи кэша залов в Redis:", err)
	}
}

// InitScheduler инициализирует планировщик cron-задач.
func InitScheduler() *cron.Cron {
	c := cron.New(cron.WithSeconds())

	// Прогрев кэша справочников каждые 6 часов.
	_, err := c.AddFunc("0 0 */6 * * *", RefreshDirectoryCache)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи RefreshDirectoryCache:", err)
	}

	// Очистка давно прошедших тренировок каждый день в 03:00.
	_, err = c.AddFunc("0 0 3 * * *", CleanOldTrainings)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи CleanOldTrainings:", err)
	}

	c.Start()
	log.Println("Cron-планировщик запущен.")
	return c
}
