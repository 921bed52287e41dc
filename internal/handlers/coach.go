package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"sport_school/internal/models"
	"sport_school/internal/response"
	"sport_school/internal/schedule"
	"sport_school/internal/storage"

	"github.com/gin-gonic/gin"
)

const coachesCacheKey = "coaches_all"

type CoachItem struct {
	ID              uint     `json:"id"`
	FullName        string   `json:"full_name"`
	Email           string   `json:"email"`
	ExperienceYears int      `json:"experience_years"`
	Bio             string   `json:"bio"`
	Specializations []string `json:"specializations"`
}

// CoachCardResponse — карточка тренера с его расписанием.
type CoachCardResponse struct {
	Trainer  CoachItem        `json:"trainer"`
	Schedule []schedule.Entry `json:"schedule"`
}

func coachItem(coach models.Coach) (CoachItem, error) {
	specs, err := schedule.CoachSpecializations(storage.DB, coach.UserID)
	if err != nil {
		return CoachItem{}, err
	}
	return CoachItem{
		ID:              coach.UserID,
		FullName:        coach.User.FullName,
		Email:           coach.User.Email,
		ExperienceYears: coach.ExperienceYears,
		Bio:             coach.Bio,
		Specializations: specs,
	}, nil
}

// GetCoachesHandler обрабатывает запрос на получение списка тренеров
// @Summary		Список тренеров
// @Description	Возвращает всех тренеров со специализациями, кэширует результат в Redis
// @Tags			coaches
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		CoachItem				"Список тренеров"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/coaches [get]
func GetCoachesHandler(c *gin.Context) {
	redisClient := storage.RedisClient

	if redisClient != nil {
		cached, err := redisClient.Get(cacheCtx, coachesCacheKey).Result()
		if err == nil && cached != "" {
			var items []CoachItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				c.JSON(http.StatusOK, items)
				return
			}
		}
	}

	var coaches []models.Coach
	if err := storage.DB.Preload("User").Order("user_id").Find(&coaches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки списка тренеров",
			Details: err.Error(),
		})
		return
	}

	items := make([]CoachItem, 0, len(coaches))
	for _, coach := range coaches {
		item, err := coachItem(coach)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Code:    "DB_ERROR",
				Message: "Ошибка загрузки специализаций тренера",
				Details: err.Error(),
			})
			return
		}
		items = append(items, item)
	}

	if redisClient != nil {
		if payload, err := json.Marshal(items); err == nil {
			redisClient.Set(cacheCtx, coachesCacheKey, string(payload), time.Hour)
		}
	}

	c.JSON(http.StatusOK, items)
}

// GetCoachHandler возвращает карточку тренера с расписанием
// @Summary		Карточка тренера
// @Description	Возвращает данные тренера и его собранное расписание
// @Tags			coaches
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int	true	"ID тренера"
// @Success		200	{object}	CoachCardResponse		"Карточка тренера"
// @Failure		400	{object}	response.ErrorResponse	"Неверный идентификатор (INVALID_COACH_ID)"
// @Failure		404	{object}	response.ErrorResponse	"Тренер не найден (COACH_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/coaches/{id} [get]
func GetCoachHandler(c *gin.Context) {
	coachID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_COACH_ID",
			Message: "Неверный идентификатор тренера",
		})
		return
	}

	var coach models.Coach
	if err := storage.DB.Preload("User").First(&coach, "user_id = ?", coachID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "COACH_NOT_FOUND",
			Message: "Тренер не найден",
		})
		return
	}

	item, err := coachItem(coach)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки специализаций тренера",
			Details: err.Error(),
		})
		return
	}

	entries, err := schedule.ForCoach(storage.DB, coach.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка сборки расписания тренера",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, CoachCardResponse{Trainer: item, Schedule: entries})
}
