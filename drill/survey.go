package drill

import (
	"fmt"
	"math"
)

// DoglegReference is the course length DLS is normalized to (degrees-equivalent per 100 ft).
const DoglegReference = 100.0

// SurveyConvention selects how azimuth, inclination and measured depth are derived from
// station coordinates.
type SurveyConvention string

const (
	// ConventionAbsolute derives angles and MD from each station's absolute coordinates,
	// measured from the coordinate origin.
	ConventionAbsolute SurveyConvention = "absolute"
	// ConventionDelta derives angles from the course between consecutive stations and MD as
	// the cumulative course length.
	ConventionDelta SurveyConvention = "delta"
)

var validConventions = map[SurveyConvention]bool{
	ConventionAbsolute: true,
	ConventionDelta:    true,
	"":                 true, // empty defaults to absolute
}

// IsValidConvention returns true if the given string names a survey convention.
func IsValidConvention(name string) bool {
	return validConventions[SurveyConvention(name)]
}

// ParseConvention maps a convention name to a SurveyConvention, defaulting to absolute.
func ParseConvention(name string) (SurveyConvention, error) {
	if !IsValidConvention(name) {
		return "", fmt.Errorf("%w: unknown survey convention %q; valid: absolute, delta", ErrInvalidConfig, name)
	}
	if name == "" {
		return ConventionAbsolute, nil
	}
	return SurveyConvention(name), nil
}

// SurveyStation is one survey point along a trajectory. Angles are in radians.
type SurveyStation struct {
	Position      Point3D `json:"position" yaml:"position"`
	MeasuredDepth float64 `json:"md" yaml:"md"`
	Inclination   float64 `json:"inclination" yaml:"inclination"`
	Azimuth       float64 `json:"azimuth" yaml:"azimuth"`
	DLS           float64 `json:"dls" yaml:"dls"`
}

// AzimuthInclination returns the azimuth (from north, towards east) and inclination (from
// vertical) of p seen from the coordinate origin.
// Inclination lies in [0, π] and azimuth in [-π, π].
func AzimuthInclination(p Point3D) (azimuth, inclination float64) {
	inclination = math.Atan2(math.Hypot(p.East, p.North), p.TVD)
	azimuth = math.Atan2(p.East, p.North)
	return azimuth, inclination
}

// MeasuredDepth returns the straight-line distance of p from the coordinate origin.
func MeasuredDepth(p Point3D) float64 {
	return p.Norm()
}

// DoglegSeverity returns the change in direction between two survey points per
// DoglegReference units of measured depth. A zero MD interval yields 0.
func DoglegSeverity(prevMD, md, prevAzimuth, azimuth, prevInclination, inclination float64) float64 {
	deltaMD := md - prevMD
	if deltaMD == 0 {
		return 0
	}
	cosAngle := math.Cos(prevInclination)*math.Cos(inclination) +
		math.Sin(prevInclination)*math.Sin(inclination)*math.Cos(azimuth-prevAzimuth)
	// rounding can push the cosine just outside [-1, 1]
	cosAngle = math.Max(-1, math.Min(1, cosAngle))
	return (DoglegReference / deltaMD) * math.Acos(cosAngle)
}

// Orientation returns the azimuth and inclination of cur under the given convention.
// prev is only consulted by ConventionDelta.
func Orientation(prev, cur Point3D, convention SurveyConvention) (azimuth, inclination float64) {
	if convention == ConventionDelta {
		return AzimuthInclination(cur.Sub(prev))
	}
	return AzimuthInclination(cur)
}

// Survey derives survey stations for an ordered list of positions.
// DLS is measured against the previous station; the first station is measured against a
// vertical, zero-depth reference.
func Survey(points []Point3D, convention SurveyConvention) []SurveyStation {
	stations := make([]SurveyStation, len(points))
	var prevMD, prevAz, prevInc float64
	for i, p := range points {
		var md, az, inc float64
		if convention == ConventionDelta {
			prev := p
			if i > 0 {
				prev = points[i-1]
			}
			md = prevMD + p.Distance(prev)
			az, inc = Orientation(prev, p, convention)
		} else {
			md = MeasuredDepth(p)
			az, inc = AzimuthInclination(p)
		}
		stations[i] = SurveyStation{
			Position:      p,
			MeasuredDepth: md,
			Inclination:   inc,
			Azimuth:       az,
			DLS:           DoglegSeverity(prevMD, md, prevAz, az, prevInc, inc),
		}
		prevMD, prevAz, prevInc = md, az, inc
	}
	return stations
}
