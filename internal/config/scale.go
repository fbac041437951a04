package config

// Scale describes the closed response scale of the questionnaire.
type Scale struct {
	Min    int `json:"min" yaml:"min"`
	Max    int `json:"max" yaml:"max"`
	Center int `json:"center" yaml:"center"`
}

// DefaultScale is the 1-7 agreement scale centered on 4.
func DefaultScale() Scale {
	return Scale{Min: 1, Max: 7, Center: 4}
}

// NewScale builds a scale from its bounds, centering on the integer midpoint.
func NewScale(min, max int) Scale {
	return Scale{Min: min, Max: max, Center: (min + max) / 2}
}

// Valid reports whether the bounds describe a usable scale
func (s Scale) Valid() bool {
	return s.Min < s.Max && s.Center >= s.Min && s.Center <= s.Max
}

// Contains reports whether v lies within the closed range [Min, Max].
func (s Scale) Contains(v int) bool {
	return v >= s.Min && v <= s.Max
}
