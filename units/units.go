// Package units converts biometric values between the canonical storage
// units (kilograms, centimeters) and their imperial display equivalents.
// Every function is pure; callers validate that inputs are numeric and
// non-negative before converting.
package units

import "math"

// Conversion factors.
const (
	LbsToKgFactor    = 0.453592
	KgToLbsFactor    = 2.20462
	CmToInchesFactor = 0.393701
	InchesToCmFactor = 2.54
)

func LbsToKg(lbs float64) float64 {
	return lbs * LbsToKgFactor
}

func KgToLbs(kg float64) float64 {
	return kg * KgToLbsFactor
}

func CmToInches(cm float64) float64 {
	return cm * CmToInchesFactor
}

func InchesToCm(inches float64) float64 {
	return inches * InchesToCmFactor
}

// CmToFeetAndInches splits a metric height into whole feet and rounded
// inches. Rounding happens before the carry: a result such as 5 ft 12 in is
// normalized to 6 ft 0 in.
func CmToFeetAndInches(cm float64) (feet, inches int) {
	totalInches := CmToInches(cm)
	feet = int(math.Floor(totalInches / 12))
	inches = int(math.Round(math.Mod(totalInches, 12)))

	if inches == 12 {
		feet++
		inches = 0
	}
	return feet, inches
}

func FeetAndInchesToCm(feet, inches float64) float64 {
	return InchesToCm(feet*12 + inches)
}
