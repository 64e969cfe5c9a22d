package http

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMealIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    mealIDsOutcome
		wantIDs []int
	}{
		{"valid list", `[1, 2, 3]`, mealIDsOK, []int{1, 2, 3}},
		{"single id", `[5]`, mealIDsOK, []int{5}},
		{"empty list", `[]`, mealIDsEmpty, nil},
		{"absent field", ``, mealIDsEmpty, nil},
		{"null", `null`, mealIDsEmpty, nil},
		{"scalar string", `"wrong"`, mealIDsNotList, nil},
		{"scalar number", `3`, mealIDsNotList, nil},
		{"object", `{"id": 1}`, mealIDsNotList, nil},
		{"string element", `[1, 2, "3"]`, mealIDsNotNumbers, nil},
		{"float element", `[1, 2.5]`, mealIDsNotNumbers, nil},
		{"bool element", `[true]`, mealIDsNotNumbers, nil},
		{"null element", `[1, null]`, mealIDsNotNumbers, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, outcome := validateMealIDs(json.RawMessage(tt.raw))
			assert.Equal(t, tt.want, outcome)
			if tt.want == mealIDsOK {
				assert.Equal(t, tt.wantIDs, ids)
			}
		})
	}
}

func TestValidateQty(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    qtyOutcome
		wantQty int
	}{
		{"integer", `3`, qtyOK, 3},
		{"zero", `0`, qtyEmpty, 0},
		{"negative", `-1`, qtyOK, -1},
		{"absent field", ``, qtyEmpty, 0},
		{"empty string", `""`, qtyEmpty, 0},
		{"null", `null`, qtyEmpty, 0},
		{"numeric string", `"3"`, qtyNotNumber, 0},
		{"word", `"three"`, qtyNotNumber, 0},
		{"float", `3.5`, qtyNotNumber, 0},
		{"bool", `true`, qtyNotNumber, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qty, outcome := validateQty(json.RawMessage(tt.raw))
			assert.Equal(t, tt.want, outcome)
			if tt.want == qtyOK {
				assert.Equal(t, tt.wantQty, qty)
			}
		})
	}
}
