package training_test

import "math"

// Формулы повторены независимо от пакета, чтобы тесты не сверяли код сам с собой.
const (
	lenStep = 0.65
	mInKm   = 1000
	minInH  = 60

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2

	tolerance = 1e-9
)

func distance(action int) float64 {
	return float64(action) * lenStep / mInKm
}

func meanSpeed(action int, duration float64) float64 {
	return distance(action) / duration
}

func swimmingDistance(action int) float64 {
	return float64(action) * swimmingLenStep / mInKm
}

func swimmingMeanSpeed(lengthPool, countPool int, duration float64) float64 {
	return float64(lengthPool) * float64(countPool) / mInKm / duration
}

func runningSpentCalories(action int, duration, weight float64) float64 {
	speed := meanSpeed(action, duration)
	return (runningCaloriesMeanSpeedMultiplier*speed - runningCaloriesMeanSpeedShift) * weight / mInKm * (duration * minInH)
}

// При целом росте math.Floor(x/y) совпадает с floorDiv, расхождения на
// дробных делителях проверяются в floordiv_test.go.
func walkingSpentCalories(action int, duration, weight float64, height int) float64 {
	speed := meanSpeed(action, duration)
	return (walkingCaloriesWeightMultiplier*weight + math.Floor(speed*speed/float64(height))*walkingSpeedHeightMultiplier*weight) * (duration * minInH)
}

func swimmingSpentCalories(lengthPool, countPool int, duration, weight float64) float64 {
	speed := swimmingMeanSpeed(lengthPool, countPool, duration)
	return (speed + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * weight
}
