package merge

import "maps"

// Responses merges model-extracted responses with pre-filled values.
//
// With no pre-filled values the model responses are returned unchanged (an
// empty map when both inputs are absent). With no model responses the
// pre-filled values are returned unchanged. Otherwise the union is returned,
// with the pre-filled entry winning for any field id present in both: an
// authoritative value is never overwritten by model output, even when the
// model was (incorrectly) asked to produce that field.
func Responses(model, preFilled map[string]any) map[string]any {
	if len(preFilled) == 0 {
		if model == nil {
			return map[string]any{}
		}
		return model
	}
	if len(model) == 0 {
		return preFilled
	}

	merged := make(map[string]any, len(model)+len(preFilled))
	maps.Copy(merged, model)
	maps.Copy(merged, preFilled)
	return merged
}
