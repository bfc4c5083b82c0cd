package vizkit

import "testing"

func TestDataPointNum(t *testing.T) {
	p := DataPoint{"y": 0.5, "name": "checkout", "gap": nil}

	if v, ok := p.Num("y"); !ok || v != 0.5 {
		t.Errorf("Num(y) = %g, %v", v, ok)
	}
	for _, k := range []string{"name", "gap", "missing"} {
		if _, ok := p.Num(k); ok {
			t.Errorf("Num(%s) ok, want absent", k)
		}
	}
}

func TestDecodeRows(t *testing.T) {
	raw := []byte(`[{
		"data": [{"y": 0.42}],
		"metadata": {
			"color": "#a35ebf",
			"groups": [
				{"type": "function", "value": "percentage", "displayName": "Slow transactions"},
				{"type": "facet", "value": "us", "displayName": "region"}
			],
			"units_data": {"y": "PERCENTAGE"}
		}
	}]`)

	rows, err := DecodeRows(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	r := rows[0]
	if y, ok := r.Y(); !ok || y != 0.42 {
		t.Errorf("Y = %g, %v", y, ok)
	}
	if g, ok := r.FunctionGroup(); !ok || g.Identity() != "Slow transactions" {
		t.Errorf("FunctionGroup = %+v, %v", g, ok)
	}
	if fv := r.FacetValues(); len(fv) != 1 || fv[0] != "us" {
		t.Errorf("FacetValues = %v", fv)
	}
	if r.YUnit() != UnitPercentage {
		t.Errorf("YUnit = %q", r.YUnit())
	}
}
