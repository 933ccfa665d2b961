package random

import (
	"math"

	"github.com/Yandex-Practicum/go-ftracker/internal/training"
)

// Диапазоны показаний такие же, как у реальных трекеров на тренировке.
const (
	minAction, maxAction         = 1000, 10000
	minWeight, maxWeight         = 80, 140
	minHeight, maxHeight         = 150, 220
	minLengthPool, maxLengthPool = 10, 50
	minCountPool, maxCountPool   = 1, 10
)

// TrainingCode returns one of the known training type codes.
func TrainingCode() string {
	codes := training.Codes()
	return codes[rnd.Intn(len(codes))]
}

// Duration returns positive duration in hours rounded to minutes, below 3 hours.
func Duration() float64 {
	minutes := Between(1, 3*training.MinInH)
	return math.Round(float64(minutes)/training.MinInH*1000) / 1000
}

// TrainingData returns positional readings accepted by training.ReadPackage
// for the given code, or nil for an unknown code.
func TrainingData(code string) []any {
	data := []any{
		Between(minAction, maxAction),
		Duration(),
		float64(Between(minWeight, maxWeight)),
	}

	switch code {
	case training.CodeRunning:
		return data
	case training.CodeWalking:
		return append(data, Between(minHeight, maxHeight))
	case training.CodeSwimming:
		return append(data, Between(minLengthPool, maxLengthPool), Between(minCountPool, maxCountPool))
	}
	return nil
}
