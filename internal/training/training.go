// Package training считает статистику тренировок по данным датчиков:
// дистанцию, среднюю скорость и потраченные калории.
package training

import (
	"fmt"
	"math"
)

const (
	LenStep = 0.65 // длина шага в метрах
	MInKm   = 1000 // количество метров в километре
	MinInH  = 60   // количество минут в часе
)

// Calculator реализуют все виды тренировок.
//
// Distance и MeanSpeed по умолчанию берутся из Training; вид тренировки,
// который считает их иначе, объявляет собственные методы, и они перекрывают
// встроенные. У SpentCalories реализации по умолчанию нет.
type Calculator interface {
	TrainingType() string
	Hours() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
}

// zeroDivisor сообщает, что один из делителей формул тренировки равен нулю.
type zeroDivisor interface {
	hasZeroDivisor() bool
}

// Training содержит показания, общие для всех видов тренировок.
type Training struct {
	Action   int     // шаги или гребки
	Duration float64 // часы
	Weight   float64 // килограммы
}

// Hours возвращает длительность тренировки в часах.
func (t Training) Hours() float64 {
	return t.Duration
}

// Distance возвращает дистанцию в километрах при длине шага LenStep.
func (t Training) Distance() float64 {
	return float64(t.Action) * LenStep / MInKm
}

// MeanSpeed возвращает среднюю скорость в км/ч.
func (t Training) MeanSpeed() float64 {
	return t.Distance() / t.Duration
}

func (t Training) hasZeroDivisor() bool {
	return t.Duration == 0
}

// ShowTrainingInfo собирает результаты тренировки в InfoMessage.
// Если дистанция, скорость или калории не являются конечным числом,
// возвращается ErrZeroDivision при нулевом делителе и ErrNotFinite
// в остальных случаях.
func ShowTrainingInfo(c Calculator) (InfoMessage, error) {
	info := InfoMessage{
		TrainingType: c.TrainingType(),
		Duration:     c.Hours(),
		Distance:     c.Distance(),
		Speed:        c.MeanSpeed(),
		Calories:     c.SpentCalories(),
	}

	for _, v := range []float64{info.Distance, info.Speed, info.Calories} {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			continue
		}
		if zeroDivision(c) {
			return InfoMessage{}, fmt.Errorf("%w: %s", ErrZeroDivision, info.TrainingType)
		}
		return InfoMessage{}, fmt.Errorf("%w: %s", ErrNotFinite, info.TrainingType)
	}
	return info, nil
}

func zeroDivision(c Calculator) bool {
	if d, ok := c.(zeroDivisor); ok {
		return d.hasZeroDivisor()
	}
	return c.Hours() == 0
}
