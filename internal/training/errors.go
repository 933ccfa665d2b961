package training

import "errors"

var (
	// ErrUnknownTraining возвращает ReadPackage для неизвестного кода тренировки.
	ErrUnknownTraining = errors.New("неизвестный тип тренировки")
	// ErrArgsMismatch возвращает ReadPackage, когда показания не подходят виду тренировки.
	ErrArgsMismatch = errors.New("данные не соответствуют типу тренировки")
	// ErrZeroDivision возвращается при нулевой длительности или нулевом росте.
	ErrZeroDivision = errors.New("деление на ноль")
	// ErrNotFinite возвращается, когда результат вышел за пределы float64.
	ErrNotFinite = errors.New("результат не является конечным числом")
)
