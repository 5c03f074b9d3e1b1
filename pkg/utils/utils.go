package utils

import "strings"

// BMI returns the body mass index for height in cm and weight in kg.
// Returns 0 for non-positive height.
func BMI(heightCM, weightKG float64) float64 {
	if heightCM <= 0 {
		return 0
	}
	heightM := heightCM / 100
	return weightKG / (heightM * heightM)
}

// BMIStatus classifies a BMI value using the standard WHO bands.
func BMIStatus(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// NormalizeCode prepares user-entered license codes for the registry, which
// matches case-sensitively against uppercase codes.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
