package domain

import "testing"

func TestNewOrderDefaults(t *testing.T) {
	order := NewOrder(4, []int{1, 2, 3})

	if order.UserID != 4 {
		t.Errorf("UserID = %d, want 4", order.UserID)
	}
	if order.Quantity != DefaultQuantity {
		t.Errorf("Quantity = %d, want %d", order.Quantity, DefaultQuantity)
	}
	if order.Status != OrderStatusPending {
		t.Errorf("Status = %q, want %q", order.Status, OrderStatusPending)
	}
}

func TestNewOrderCollapsesRepeatedIDs(t *testing.T) {
	order := NewOrder(4, []int{1, 1, 2, 3, 2})

	want := []int{1, 2, 3}
	if len(order.MealIDs) != len(want) {
		t.Fatalf("MealIDs = %v, want %v", order.MealIDs, want)
	}
	for i, id := range want {
		if order.MealIDs[i] != id {
			t.Errorf("MealIDs[%d] = %d, want %d", i, order.MealIDs[i], id)
		}
	}
}

func TestUniqueIDs(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"no duplicates", []int{1, 2, 3}, []int{1, 2, 3}},
		{"adjacent duplicate", []int{1, 1, 2}, []int{1, 2}},
		{"keeps first occurrence", []int{3, 1, 3, 2, 1}, []int{3, 1, 2}},
		{"empty", []int{}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UniqueIDs(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("UniqueIDs(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("UniqueIDs(%v)[%d] = %d, want %d", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDuplicateOf(t *testing.T) {
	tests := []struct {
		name     string
		existing []int
		incoming []int
		policy   DedupPolicy
		want     bool
	}{
		{"exact same set", []int{1, 2, 3}, []int{1, 2, 3}, DedupExact, true},
		{"exact different order", []int{3, 1, 2}, []int{1, 2, 3}, DedupExact, true},
		{"exact subset", []int{1, 2, 3}, []int{1, 2}, DedupExact, false},
		{"exact disjoint", []int{1, 2}, []int{3, 4}, DedupExact, false},
		{"exact partial overlap", []int{1, 2}, []int{2, 3}, DedupExact, false},
		{"exact repeated ids collapse", []int{1, 1, 2}, []int{1, 2, 2}, DedupExact, true},
		{"overlap shared id", []int{1, 2}, []int{2, 3}, DedupOverlap, true},
		{"overlap subset", []int{1, 2, 3}, []int{2}, DedupOverlap, true},
		{"overlap disjoint", []int{1, 2}, []int{3, 4}, DedupOverlap, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{MealIDs: tt.existing}
			if got := o.DuplicateOf(tt.incoming, tt.policy); got != tt.want {
				t.Errorf("DuplicateOf(%v, %s) = %v, want %v", tt.incoming, tt.policy, got, tt.want)
			}
		})
	}
}

func TestDedupPolicyValid(t *testing.T) {
	if !DedupExact.Valid() || !DedupOverlap.Valid() {
		t.Error("known policies should be valid")
	}
	if DedupPolicy("fuzzy").Valid() {
		t.Error("unknown policy should be invalid")
	}
}
