package classify

import "testing"

func TestRules_FirstMatchWins(t *testing.T) {
	t.Parallel()

	rules := New(
		Rule{Value: "garden", Keywords: []string{"vườn", "cây giống"}},
		Rule{Value: "agriculture", Keywords: []string{"nông sản", "vườn", "rau"}},
	)

	got, ok := rules.Classify("Rau sạch từ vườn nhà")
	if !ok {
		t.Fatalf("expected a match")
	}
	if got != "garden" {
		t.Fatalf("expected earlier rule to win, got %q", got)
	}

	got, ok = rules.Classify("Rau muống")
	if !ok || got != "agriculture" {
		t.Fatalf("expected agriculture, got %q (ok=%t)", got, ok)
	}
}

func TestRules_MatchesExtraWordsAndSpacing(t *testing.T) {
	t.Parallel()

	rules := New(Rule{Value: "sold", Keywords: []string{"đã bán", "sold"}})

	for _, input := range []string{"DaBan", "đã bán rồi nhé", "SOLD OUT", "Đã  Bán"} {
		if got := rules.ClassifyOr(input, "available"); got != "sold" {
			t.Fatalf("input %q: expected sold, got %q", input, got)
		}
	}
	if got := rules.ClassifyOr("Còn hàng", "available"); got != "available" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := rules.ClassifyOr("", "available"); got != "available" {
		t.Fatalf("expected fallback for empty input, got %q", got)
	}
}

func TestRules_ValuesKeepOrder(t *testing.T) {
	t.Parallel()

	rules := New(
		Rule{Value: "b", Keywords: []string{"x"}},
		Rule{Value: "a", Keywords: []string{"y"}},
		Rule{Value: "b", Keywords: []string{"z"}},
	)
	values := rules.Values()
	if len(values) != 2 || values[0] != "b" || values[1] != "a" {
		t.Fatalf("unexpected values: %v", values)
	}
	if got := rules.ClassifyOr("z", ""); got != "b" {
		t.Fatalf("expected duplicate value rule to classify, got %q", got)
	}
}
