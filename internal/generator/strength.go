package generator

// Strength is a qualitative password rating.
type Strength int

const (
	Low Strength = iota
	Medium
	High
	VeryHigh
)

func (s Strength) String() string {
	switch s {
	case Medium:
		return "Medium"
	case High:
		return "High"
	case VeryHigh:
		return "Very High"
	default:
		return "Low"
	}
}

// MarshalText lets Strength serialize by name in JSON responses.
func (s Strength) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Rate scores p by how many of these hold: the length reaches
// MinStrongLength, more than one group is used, more than two are used.
func Rate(p Params) Strength {
	score := 0
	if p.Length >= MinStrongLength {
		score++
	}
	if len(p.Groups) > 1 {
		score++
	}
	if len(p.Groups) > 2 {
		score++
	}
	return Strength(score)
}
