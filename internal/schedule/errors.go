package schedule

import (
	"errors"
	"fmt"
)

// ErrInvalidInterval — начало интервала не раньше конца. Отклоняется до
// любого обращения к базе.
var ErrInvalidInterval = errors.New("начало тренировки должно быть раньше окончания")

// NotFoundError — запрошенный id (группа, зал, тренер, спортсмен) не существует.
type NotFoundError struct {
	Kind string // "группа", "зал", ...
	ID   uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("не найдено: %s id=%d", e.Kind, e.ID)
}

// ConflictError — интервал пересекается с существующей тренировкой ресурса.
// Message называет конкретный занятый ресурс.
type ConflictError struct {
	Resource string // имя зала или тренера
	Message  string
}

func (e *ConflictError) Error() string {
	return e.Message
}
