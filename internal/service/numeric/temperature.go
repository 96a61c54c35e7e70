package numeric

import (
	"errors"
	"math"
	"strings"
)

var ErrUnknownScale = errors.New("unknown scale")

const (
	Fahrenheit = "F"
	Celsius    = "C"
)

func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func FahrenheitToCelsius(t float64) float64 {
	return Round2((t - 32) * 5 / 9)
}

func CelsiusToFahrenheit(t float64) float64 {
	return Round2(t*9/5 + 32)
}

// Convert converts t from scale to the other one and returns the target scale.
func Convert(t float64, scale string) (float64, string, error) {
	switch strings.ToUpper(scale) {
	case Fahrenheit:
		return FahrenheitToCelsius(t), Celsius, nil
	case Celsius:
		return CelsiusToFahrenheit(t), Fahrenheit, nil
	}
	return 0, "", ErrUnknownScale
}
