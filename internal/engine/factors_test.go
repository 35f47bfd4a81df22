package engine

import (
	"testing"
)

func TestExtractFactors_Struggling(t *testing.T) {
	risk, protective := ExtractFactors(strugglingSnapshot())

	if len(risk) != MaxFactorsPerKind {
		t.Errorf("risk factors = %d, want capped at %d", len(risk), MaxFactorsPerKind)
	}
	if len(protective) != 0 {
		t.Errorf("protective factors = %v, want none for struggling metrics", protective)
	}

	// Ranked by weight descending.
	for i := 1; i < len(risk); i++ {
		if risk[i].Weight > risk[i-1].Weight {
			t.Errorf("risk factors not sorted: %v before %v", risk[i-1], risk[i])
		}
	}

	if risk[0].Label != "Low daily engagement" {
		t.Errorf("top risk factor = %q, want low daily engagement", risk[0].Label)
	}
}

func TestExtractFactors_Healthy(t *testing.T) {
	risk, protective := ExtractFactors(healthySnapshot())

	if len(risk) != 0 {
		t.Errorf("risk factors = %v, want none for healthy metrics", risk)
	}
	if len(protective) == 0 {
		t.Error("expected protective factors for healthy metrics")
	}
	if len(protective) > MaxFactorsPerKind {
		t.Errorf("protective factors = %d, want capped at %d", len(protective), MaxFactorsPerKind)
	}

	for _, f := range protective {
		if f.Category == "" || f.Label == "" {
			t.Errorf("factor missing category or label: %+v", f)
		}
	}
}

func TestExtractFactors_BothKindsCanCoexist(t *testing.T) {
	// Strong engagement but dissatisfied with progress.
	m := healthySnapshot()
	m.SatisfactionScore = 3
	m.PlateauDurationDays = 21

	risk, protective := ExtractFactors(m)
	if len(risk) == 0 {
		t.Error("expected risk factors for dissatisfaction and plateau")
	}
	if len(protective) == 0 {
		t.Error("expected protective factors for strong engagement")
	}
	for _, f := range risk {
		if f.Category != "progress" {
			t.Errorf("unexpected risk category %q in %+v", f.Category, f)
		}
	}
}

func TestExtractFactors_ShortDropoutHistory(t *testing.T) {
	m := healthySnapshot()
	short := 14.0
	m.AvgDropoutDays = &short

	risk, _ := ExtractFactors(m)
	found := false
	for _, f := range risk {
		if f.Label == "Short time-to-dropout in past programs" {
			found = true
		}
	}
	if !found {
		t.Errorf("risk factors = %v, want short dropout history flagged", risk)
	}
}
