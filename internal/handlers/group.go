package handlers

import (
	"net/http"

	"sport_school/internal/models"
	"sport_school/internal/response"
	"sport_school/internal/schedule"
	"sport_school/internal/storage"

	"github.com/gin-gonic/gin"
)

type GroupItem struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	AthleteCount int    `json:"athlete_count"`
}

// GetGroupsHandler обрабатывает запрос на получение списка групп
// @Summary		Список групп
// @Description	Возвращает все тренировочные группы с числом спортсменов
// @Tags			groups
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		GroupItem				"Список групп"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/groups [get]
func GetGroupsHandler(c *gin.Context) {
	var groups []models.Group
	if err := storage.DB.Order("id").Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки списка групп",
			Details: err.Error(),
		})
		return
	}

	// Состав групп меняется, поэтому счётчик не кэшируется.
	items := make([]GroupItem, 0, len(groups))
	for _, group := range groups {
		count, err := schedule.GroupMemberCount(storage.DB, group.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Code:    "DB_ERROR",
				Message: "Ошибка подсчёта участников группы",
				Details: err.Error(),
			})
			return
		}
		items = append(items, GroupItem{ID: group.ID, Name: group.Name, AthleteCount: count})
	}

	c.JSON(http.StatusOK, items)
}
