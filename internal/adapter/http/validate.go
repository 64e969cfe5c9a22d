package http

import "encoding/json"

// Shape validation of loosely-typed request fields. Each field validates to
// a tagged outcome so handlers can map it to the exact client message.

type mealIDsOutcome int

const (
	mealIDsOK mealIDsOutcome = iota
	mealIDsEmpty
	mealIDsNotList
	mealIDsNotNumbers
)

// validateMealIDs inspects the raw meal_ids value. An absent field counts as
// empty; a non-array value is rejected as not-a-list; array elements must be
// JSON integers.
func validateMealIDs(raw json.RawMessage) ([]int, mealIDsOutcome) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, mealIDsEmpty
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, mealIDsNotList
	}
	if len(elems) == 0 {
		return nil, mealIDsEmpty
	}

	ids := make([]int, len(elems))
	for i, elem := range elems {
		// Unmarshal of a JSON null into an int is a silent no-op.
		if string(elem) == "null" {
			return nil, mealIDsNotNumbers
		}
		if err := json.Unmarshal(elem, &ids[i]); err != nil {
			return nil, mealIDsNotNumbers
		}
	}
	return ids, mealIDsOK
}

type qtyOutcome int

const (
	qtyOK qtyOutcome = iota
	qtyEmpty
	qtyNotNumber
)

// validateQty inspects the raw qty value. Absent, null, "", and 0 count as
// empty; anything but a JSON integer (a quoted number included) is rejected.
func validateQty(raw json.RawMessage) (int, qtyOutcome) {
	if len(raw) == 0 || string(raw) == "null" || string(raw) == `""` {
		return 0, qtyEmpty
	}

	var qty int
	if err := json.Unmarshal(raw, &qty); err != nil {
		return 0, qtyNotNumber
	}
	if qty == 0 {
		return 0, qtyEmpty
	}
	return qty, qtyOK
}
