package catalog

import "testing"

func TestBuiltinOrdering(t *testing.T) {
	c := Builtin()
	list := c.List()
	if len(list) == 0 {
		t.Fatalf("builtin catalog is empty")
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Order > list[i].Order {
			t.Fatalf("modules out of order at %d: %d > %d", i, list[i-1].Order, list[i].Order)
		}
	}
	for _, s := range list {
		if s.Title == "" || s.Description == "" {
			t.Fatalf("module %d missing metadata: %+v", s.ID, s)
		}
	}
}

func TestGetUnknownReturnsNil(t *testing.T) {
	c := Builtin()
	if m := c.Get(9999); m != nil {
		t.Fatalf("expected nil for unknown id, got %+v", m.ModuleSummary)
	}
	if title := c.Title(9999); title != "" {
		t.Fatalf("expected empty title for unknown id, got %q", title)
	}
}

func TestQuizAnswersInRange(t *testing.T) {
	c := Builtin()
	for _, s := range c.List() {
		m := c.Get(s.ID)
		if m == nil {
			t.Fatalf("listed module %d not retrievable", s.ID)
		}
		for qi, q := range m.Quiz {
			if q.Answer < 0 || q.Answer >= len(q.Options) {
				t.Fatalf("module %d quiz %d: answer index %d out of range", s.ID, qi, q.Answer)
			}
		}
	}
}

func TestNewSortsByOrder(t *testing.T) {
	c := New([]*Module{
		{ModuleSummary: ModuleSummary{ID: 2, Title: "b", Order: 2}},
		{ModuleSummary: ModuleSummary{ID: 1, Title: "a", Order: 1}},
	})
	list := c.List()
	if list[0].ID != 1 || list[1].ID != 2 {
		t.Fatalf("unexpected order: %+v", list)
	}
}
