package training

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Коды типов тренировок, которые присылает трекер.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

type factory struct {
	arity int
	build func(r *argReader) Calculator
}

var trainings = map[string]factory{
	CodeSwimming: {arity: 5, build: func(r *argReader) Calculator {
		action, duration, weight := r.int(), r.float(), r.float()
		lengthPool, countPool := r.int(), r.int()
		return NewSwimming(action, duration, weight, lengthPool, countPool)
	}},
	CodeRunning: {arity: 3, build: func(r *argReader) Calculator {
		action, duration, weight := r.int(), r.float(), r.float()
		return NewRunning(action, duration, weight)
	}},
	CodeWalking: {arity: 4, build: func(r *argReader) Calculator {
		action, duration, weight := r.int(), r.float(), r.float()
		height := r.int()
		return NewSportsWalking(action, duration, weight, height)
	}},
}

// Codes возвращает известные коды тренировок в отсортированном порядке.
func Codes() []string {
	codes := make([]string, 0, len(trainings))
	for code := range trainings {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Arity возвращает число показаний, которое ожидает тренировка с данным кодом.
func Arity(workoutType string) (int, bool) {
	f, ok := trainings[workoutType]
	return f.arity, ok
}

// ReadPackage создаёт тренировку по показаниям, присланным трекером.
// Показания идут по порядку: действия, длительность, вес, затем значения
// конкретного вида (рост для WLK; длина бассейна и число заплывов для SWM).
func ReadPackage(workoutType string, data []any) (Calculator, error) {
	f, ok := trainings[workoutType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTraining, workoutType)
	}
	if len(data) != f.arity {
		return nil, fmt.Errorf("%w: %s ожидает %d значений, получено %d", ErrArgsMismatch, workoutType, f.arity, len(data))
	}

	r := &argReader{data: data}
	c := f.build(r)
	if r.err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrArgsMismatch, workoutType, r.err)
	}
	return c, nil
}

// argReader разбирает показания по порядку и запоминает первую ошибку.
type argReader struct {
	data []any
	pos  int
	err  error
}

func (r *argReader) next() (any, int) {
	pos := r.pos
	r.pos++
	return r.data[pos], pos
}

func (r *argReader) int() int {
	v, pos := r.next()
	if r.err != nil {
		return 0
	}
	n, ok := toInt(v)
	if !ok {
		r.err = fmt.Errorf("значение #%d (%v) должно быть целым числом", pos+1, v)
	}
	return n
}

func (r *argReader) float() float64 {
	v, pos := r.next()
	if r.err != nil {
		return 0
	}
	f, ok := toFloat(v)
	if !ok {
		r.err = fmt.Errorf("значение #%d (%v) должно быть числом", pos+1, v)
	}
	return f
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	if i, ok := toInt(v); ok {
		return float64(i), true
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return intFromInt64(n)
	case uint:
		return intFromUint64(uint64(n))
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return intFromUint64(uint64(n))
	case uint64:
		return intFromUint64(n)
	case float32:
		return intFromFloat(float64(n))
	case float64:
		return intFromFloat(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return intFromInt64(i)
		}
		if f, err := n.Float64(); err == nil {
			return intFromFloat(f)
		}
	}
	return 0, false
}

func intFromInt64(n int64) (int, bool) {
	if n > math.MaxInt || n < math.MinInt {
		return 0, false
	}
	return int(n), true
}

func intFromUint64(n uint64) (int, bool) {
	if n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

// intFromFloat принимает только целые значения: 25.0 подходит как длина
// бассейна, а 25.5 нет.
func intFromFloat(f float64) (int, bool) {
	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return intFromInt64(int64(f))
}
