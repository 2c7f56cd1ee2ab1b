// Package recovery turns raw LLM output text into a parsed JSON object,
// tolerating the markdown wrapping and minor syntax damage models routinely
// produce.
//
// Recovery is an ordered, short-circuiting pipeline of strategies: direct
// parse of the whole text, then the first ```json-tagged fence, then the
// first bare fence. Each candidate gets one repair attempt (jsonrepair)
// before its parse is considered failed. Once a fence has been located, a
// parse failure inside it is terminal: later strategies are not attempted.
// When nothing can be recovered, [Object] returns an error wrapping
// [ErrMalformedResponse] and the underlying parse error.
package recovery
