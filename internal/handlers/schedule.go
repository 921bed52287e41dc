package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"sport_school/internal/response"
	"sport_school/internal/schedule"
	"sport_school/internal/storage"
	"sport_school/internal/ws"

	"github.com/gin-gonic/gin"
)

// GetScheduleHandler возвращает расписание текущего спортсмена
// @Summary		Расписание спортсмена
// @Description	Собирает расписание по группам текущего пользователя; query-параметр type фильтрует по типу занятия
// @Tags			schedule
// @Produce		json
// @Security		BearerAuth
// @Param			type	query		string	false	"Тип тренировки: individual или group"
// @Success		200		{array}		schedule.Entry			"Отсортированное расписание"
// @Failure		400		{object}	response.ErrorResponse	"Неверный тип тренировки (INVALID_TYPE)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/schedule [get]
func GetScheduleHandler(c *gin.Context) {
	userID := c.GetUint("userID")

	entries, err := schedule.ForAthlete(storage.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка сборки расписания",
			Details: err.Error(),
		})
		return
	}

	// Фильтр применяется к уже собранному списку.
	switch t := c.Query("type"); t {
	case "":
	case string(schedule.TypeIndividual), string(schedule.TypeGroup):
		entries = schedule.Filter(entries, schedule.TrainingType(t))
	default:
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_TYPE",
			Message: "Тип тренировки должен быть individual или group",
		})
		return
	}

	c.JSON(http.StatusOK, entries)
}

type CreateTrainingRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	GroupID   uint   `json:"group_id" binding:"required"`
	HallID    uint   `json:"hall_id" binding:"required"`
}

// CreateTrainingHandler создает тренировку для группы в зале
// @Summary		Создание тренировки
// @Description	Проверяет доступность зала и тренера и атомарно создает тренировку со связями
// @Tags			schedule
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			training	body		CreateTrainingRequest			true	"Интервал, группа и зал"
// @Success		201			{object}	response.CreateTrainingResponse	"Тренировка создана"
// @Failure		400			{object}	response.CreateTrainingResponse	"Неверный интервал или формат времени"
// @Failure		404			{object}	response.CreateTrainingResponse	"Группа или зал не найдены"
// @Failure		409			{object}	response.CreateTrainingResponse	"Зал или тренер заняты"
// @Failure		500			{object}	response.CreateTrainingResponse	"Ошибка сервера"
// @Router			/schedule [post]
func CreateTrainingHandler(c *gin.Context) {
	var req CreateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.CreateTrainingResponse{
			Success: false,
			Message: "Ошибка валидации данных: " + err.Error(),
		})
		return
	}

	// RFC3339 требует явного смещения часового пояса; время без пояса
	// отклоняется здесь, до обращения к базе.
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.CreateTrainingResponse{
			Success: false,
			Message: "start_time должен быть в формате RFC3339 со смещением",
		})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.CreateTrainingResponse{
			Success: false,
			Message: "end_time должен быть в формате RFC3339 со смещением",
		})
		return
	}

	result, err := schedule.CreateTraining(storage.DB, start, end, req.GroupID, req.HallID)
	if err != nil {
		var notFound *schedule.NotFoundError
		var conflict *schedule.ConflictError
		switch {
		case errors.Is(err, schedule.ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, response.CreateTrainingResponse{
				Success: false,
				Message: err.Error(),
			})
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, response.CreateTrainingResponse{
				Success: false,
				Message: err.Error(),
			})
		case errors.As(err, &conflict):
			c.JSON(http.StatusConflict, response.CreateTrainingResponse{
				Success: false,
				Message: err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, response.CreateTrainingResponse{
				Success: false,
				Message: "Внутренняя ошибка при создании тренировки",
			})
		}
		return
	}

	ws.HubInstance.BroadcastEvent(strconv.Itoa(int(req.GroupID)), ws.Event{
		EventType: "training_created",
		GroupID:   strconv.Itoa(int(req.GroupID)),
		Data: map[string]interface{}{
			"training_id": result.TrainingID,
			"is_group":    result.IsGroup,
			"start_time":  start.UTC().Format(time.RFC3339),
			"end_time":    end.UTC().Format(time.RFC3339),
		},
	})

	c.JSON(http.StatusCreated, response.CreateTrainingResponse{
		Success: true,
		Message: result.Message,
	})
}
