package training

import "math"

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// SportsWalking описывает спортивную ходьбу. Только ей нужен рост спортсмена.
type SportsWalking struct {
	Training
	Height int // сантиметры
}

// NewSportsWalking возвращает тренировку ходьбой по показаниям датчиков.
func NewSportsWalking(action int, duration, weight float64, height int) SportsWalking {
	return SportsWalking{
		Training: Training{Action: action, Duration: duration, Weight: weight},
		Height:   height,
	}
}

func (w SportsWalking) TrainingType() string {
	return "SportsWalking"
}

// SpentCalories возвращает количество потраченных калорий.
// Квадрат скорости делится на рост с округлением вниз.
func (w SportsWalking) hasZeroDivisor() bool {
	return w.Duration == 0 || w.Height == 0
}

func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingCaloriesWeightMultiplier*w.Weight +
		floorDiv(speed*speed, float64(w.Height))*walkingSpeedHeightMultiplier*w.Weight) *
		(w.Duration * MinInH)
}

// floorDiv делит x на y с округлением к минус бесконечности.
//
// Частное получается через math.Mod, а не math.Floor(x/y): x/y округляется
// до взятия целой части и может попасть на следующее целое (1 / 0.1 даёт 10,
// а целая часть частного равна 9). При нулевом y результат NaN.
func floorDiv(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div -= 1.0
	}

	if div == 0 {
		return math.Copysign(0, x/y)
	}

	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor += 1.0
	}
	return floor
}
