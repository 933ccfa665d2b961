package training

const (
	swimmingLenStep                  = 1.38 // длина гребка в метрах
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming описывает плавание в бассейне. Action считает гребки.
type Swimming struct {
	Training
	LengthPool int // длина бассейна в метрах
	CountPool  int // сколько раз переплыл бассейн
}

// NewSwimming возвращает тренировку плаванием по показаниям датчиков.
func NewSwimming(action int, duration, weight float64, lengthPool, countPool int) Swimming {
	return Swimming{
		Training:   Training{Action: action, Duration: duration, Weight: weight},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

func (s Swimming) TrainingType() string {
	return "Swimming"
}

// Distance возвращает дистанцию в километрах при длине гребка 1.38 м.
func (s Swimming) Distance() float64 {
	return float64(s.Action) * swimmingLenStep / MInKm
}

// MeanSpeed считается по длине бассейна и числу заплывов, гребки не учитываются.
func (s Swimming) MeanSpeed() float64 {
	return float64(s.LengthPool) * float64(s.CountPool) / MInKm / s.Duration
}

// SpentCalories возвращает количество потраченных калорий.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.Weight
}
