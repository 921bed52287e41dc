package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FullName     string `gorm:"not null"`
	Phone        string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// Athlete — роль пользователя. Отдельная строка-расширение с тем же id,
// а не наследование: роль определяется наличием записи.
type Athlete struct {
	UserID uint `gorm:"primaryKey"`
	User   User `gorm:"foreignKey:UserID"`
}

// Coach — роль пользователя с данными тренера.
type Coach struct {
	UserID          uint   `gorm:"primaryKey"`
	User            User   `gorm:"foreignKey:UserID"`
	ExperienceYears int    `gorm:"not null"`
	Bio             string `gorm:"not null"`
}

type SportType struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"not null"`
}

// CoachSportType — специализации тренера (многие-ко-многим).
type CoachSportType struct {
	CoachID     uint `gorm:"primaryKey"`
	SportTypeID uint `gorm:"primaryKey"`
}

type Group struct {
	gorm.Model
	Name string `gorm:"not null"`
}

// GroupAthlete — членство спортсмена в группе.
type GroupAthlete struct {
	GroupID   uint `gorm:"primaryKey"`
	AthleteID uint `gorm:"primaryKey"`
}

// GroupCoach — закрепление тренера за группой. На практике у группы один
// тренер, модель допускает несколько; везде берётся первый.
type GroupCoach struct {
	GroupID uint `gorm:"primaryKey"`
	CoachID uint `gorm:"primaryKey"`
}

type Hall struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Capacity int    `gorm:"not null"`
}

// Training — занятие с полуоткрытым интервалом [StartTime, EndTime).
// Создаётся только через schedule.CreateTraining, чтобы инвариант
// отсутствия пересечений проверялся в одной точке.
type Training struct {
	gorm.Model
	StartTime       time.Time `gorm:"index;not null"`
	EndTime         time.Time `gorm:"not null"`
	IsGroupTraining bool      `gorm:"not null"`
}

// TrainingGroup — связь тренировки с группой (используется 1:1).
type TrainingGroup struct {
	TrainingID uint `gorm:"primaryKey"`
	GroupID    uint `gorm:"primaryKey"`
}

// TrainingHall — связь тренировки с залом (используется 1:1).
type TrainingHall struct {
	TrainingID uint `gorm:"primaryKey"`
	HallID     uint `gorm:"primaryKey"`
}

// All перечисляет модели для AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{}, &Athlete{}, &Coach{},
		&SportType{}, &CoachSportType{},
		&Group{}, &GroupAthlete{}, &GroupCoach{},
		&Hall{}, &Training{}, &TrainingGroup{}, &TrainingHall{},
	}
}
