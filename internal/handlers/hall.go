package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"sport_school/internal/models"
	"sport_school/internal/response"
	"sport_school/internal/storage"

	"github.com/gin-gonic/gin"
)

var cacheCtx = context.Background()

const hallsCacheKey = "halls_all"

type HallItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// GetHallsHandler обрабатывает запрос на получение списка залов
// @Summary		Список залов
// @Description	Возвращает все залы школы, кэширует результат в Redis
// @Tags			halls
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		HallItem				"Список залов"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/halls [get]
func GetHallsHandler(c *gin.Context) {
	redisClient := storage.RedisClient

	// Проверка кэша
	if redisClient != nil {
		cached, err := redisClient.Get(cacheCtx, hallsCacheKey).Result()
		if err == nil && cached != "" {
			var halls []HallItem
			if err := json.Unmarshal([]byte(cached), &halls); err == nil {
				c.JSON(http.StatusOK, halls)
				return
			}
		}
	}

	var halls []models.Hall
	if err := storage.DB.Order("id").Find(&halls).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки списка залов",
			Details: err.Error(),
		})
		return
	}

	items := make([]HallItem, 0, len(halls))
	for _, hall := range halls {
		items = append(items, HallItem{ID: hall.ID, Name: hall.Name, Capacity: hall.Capacity})
	}

	// Кэширование результата: справочник залов меняется редко.
	if redisClient != nil {
		if payload, err := json.Marshal(items); err == nil {
			redisClient.Set(cacheCtx, hallsCacheKey, string(payload), 6*time.Hour)
		}
	}

	c.JSON(http.StatusOK, items)
}
