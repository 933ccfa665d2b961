package a

import (
	"fmt"
	"reflect"
)

type Training interface {
	Distance() float64
}

type Swimming struct{}

func (Swimming) Distance() float64 { return 1.38 }

func byReflectName(t Training) float64 {
	if reflect.TypeOf(t).Name() == "Swimming" { // want `type name compared with "Swimming"; use a method instead`
		return 1.38
	}
	return 0.65
}

func byReflectString(t Training) bool {
	return "a.Swimming" != reflect.TypeOf(t).String() // want `type name compared with "a.Swimming"; use a method instead`
}

func bySprintf(t Training) bool {
	name := "Swimming"
	return fmt.Sprintf("%T", t) == name // want `type name compared with a string; use a method instead`
}

func bySwitch(t Training) float64 {
	switch reflect.TypeOf(t).Name() { // want `switch on type name; use a method or a type switch instead`
	case "Swimming":
		return 1.38
	}
	return 0.65
}

func byMethod(t Training) float64 {
	return t.Distance()
}

func byTypeSwitch(t Training) float64 {
	switch t.(type) {
	case Swimming:
		return 1.38
	}
	return 0.65
}

func unrelated(t Training) bool {
	return fmt.Sprintf("%v", t) == "{}" && reflect.TypeOf(t).Kind() == reflect.Struct
}
