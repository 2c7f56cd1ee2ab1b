// Package merge combines model-extracted responses with caller-supplied
// pre-filled values under a single precedence rule: pre-filled values are
// authoritative and always win on conflicting field ids.
//
// The merge is pure, total, and type-agnostic. It never inspects values;
// type and option conformance is the validator's concern.
package merge
