package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Fraction returns Current/Max clamped to [0, 1].
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := h.Current / h.Max
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

var Health = donburi.NewComponentType[HealthData]()
