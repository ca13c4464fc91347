package quote

import "testing"

func TestSimulateDiscountBoundaries(t *testing.T) {
	q := New(KindEngineeringProject, "boundaries", d("40"), 4, 3, d("200"))

	assertDecimal(t, "0% discount", q.SimulateDiscount(d("0")), q.FinalPrice().String())
	assertDecimal(t, "100% discount", q.SimulateDiscount(d("100")), "0")
}

func TestSimulateDiscountPassesThroughOutOfRange(t *testing.T) {
	q := New(KindEngineeringProject, "pass-through", d("40"), 4, 3, d("200"))

	assertDecimal(t, "-10% discount", q.SimulateDiscount(d("-10")), "14168")
	assertDecimal(t, "150% discount", q.SimulateDiscount(d("150")), "-6440")
}

func TestSimulateUrgencyWithCurrentValueIsNoop(t *testing.T) {
	for _, k := range Kinds() {
		q := New(k, "noop", d("33"), 2, 4, d("120"))
		if got := q.SimulateUrgency(q.Urgency()); !got.Equal(q.FinalPrice()) {
			t.Errorf("%s: SimulateUrgency(current) = %s, FinalPrice = %s", k, got, q.FinalPrice())
		}
	}
}

func TestSimulateUrgencyClamps(t *testing.T) {
	q := New(KindLegalConsulting, "clamp", d("25"), 3, 5, d("300"))

	assertDecimal(t, "urgency -3", q.SimulateUrgency(-3), q.SimulateUrgency(1).String())
	assertDecimal(t, "urgency 42", q.SimulateUrgency(42), q.FinalPrice().String())
	if q.Urgency() != 5 {
		t.Errorf("Stored urgency changed: %d", q.Urgency())
	}
}

func TestSimulatorInterface(t *testing.T) {
	var s Simulator = New(KindTechnologyAnalysis, "iface", d("80"), 5, 4, d("150"))
	assertDecimal(t, "via interface", s.SimulateUrgency(2), "19800")
}
