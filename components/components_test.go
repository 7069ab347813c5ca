package components

import "testing"

func TestBestRunBeats(t *testing.T) {
	tests := []struct {
		name  string
		run   BestRun
		other BestRun
		want  bool
	}{
		{"first run", BestRun{Collected: 1, Survived: 5}, BestRun{}, true},
		{"more treats", BestRun{Collected: 10, Survived: 20}, BestRun{Collected: 9, Survived: 90}, true},
		{"fewer treats", BestRun{Collected: 9, Survived: 90}, BestRun{Collected: 10, Survived: 20}, false},
		{"same treats longer", BestRun{Collected: 10, Survived: 31}, BestRun{Collected: 10, Survived: 30}, true},
		{"tie", BestRun{Collected: 10, Survived: 30}, BestRun{Collected: 10, Survived: 30}, false},
		{"empty run", BestRun{}, BestRun{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run.Beats(tt.other); got != tt.want {
				t.Errorf("Beats() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHealthFraction(t *testing.T) {
	tests := []struct {
		h    HealthData
		want float64
	}{
		{HealthData{Current: 50, Max: 100}, 0.5},
		{HealthData{Current: -10, Max: 100}, 0},
		{HealthData{Current: 120, Max: 100}, 1},
		{HealthData{Current: 10, Max: 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.h.Fraction(); got != tt.want {
			t.Errorf("%+v.Fraction() = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestInputEdges(t *testing.T) {
	var in InputData
	in.Current[1] = true
	if !in.JustPressed(1) || in.JustReleased(1) {
		t.Error("expected a press edge")
	}
	in.Previous = in.Current
	in.Current[1] = false
	if in.JustPressed(1) || !in.JustReleased(1) {
		t.Error("expected a release edge")
	}
}
