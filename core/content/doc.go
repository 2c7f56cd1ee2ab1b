// Package content normalizes raw job content before it is placed into an
// extraction prompt. Transcripts and OCR text pass through untouched; HTML
// payloads are converted to Markdown so the model sees prose instead of
// markup. A modality prefix ("MODALITY: audio" etc.) identifies the source
// medium to the model and is attached here when the upstream event did not
// already carry one.
package content
