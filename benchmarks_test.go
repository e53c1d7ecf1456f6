package nsga2

import "testing"

func TestZDT1AtOrigin(t *testing.T) {
	f := ZDT1(MOGenome{0, 0})
	if f.F0 != 0 {
		t.Errorf("expected F0 = 0, got %f", f.F0)
	}

	if f.F1 != 1 {
		t.Errorf("expected F1 = 1 at g=1, f0=0, got %f", f.F1)
	}
}

func TestZDT1OnParetoFront(t *testing.T) {
	f := ZDT1(MOGenome{0.25, 0})
	want := 1 - 0.5 // sqrt(0.25) = 0.5, g = 1
	if f.F1 != want {
		t.Errorf("expected F1 = %f, got %f", want, f.F1)
	}
}

func TestZDT2NonConvexShape(t *testing.T) {
	f := ZDT2(MOGenome{0.5, 0})
	want := 1 - 0.25 // (f0/g)^2 = 0.25 at g=1
	if f.F1 != want {
		t.Errorf("expected F1 = %f, got %f", want, f.F1)
	}
}

func TestZDTObjectivesMinimizeBoth(t *testing.T) {
	mo := ZDTObjectives()

	a := MOFitness{F0: 0.1, F1: 0.2}
	b := MOFitness{F0: 0.2, F1: 0.3}

	if mo.Domination(a, b, mo.AllIndices(), nil) != Less {
		t.Errorf("expected a to dominate b on both minimized objectives")
	}
}
