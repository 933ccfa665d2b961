package training

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

// Running описывает бег. Дистанция и скорость считаются по умолчанию.
type Running struct {
	Training
}

// NewRunning возвращает тренировку бегом по показаниям датчиков.
func NewRunning(action int, duration, weight float64) Running {
	return Running{Training: Training{Action: action, Duration: duration, Weight: weight}}
}

func (r Running) TrainingType() string {
	return "Running"
}

// SpentCalories возвращает количество потраченных калорий.
func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) *
		r.Weight / MInKm * (r.Duration * MinInH)
}
