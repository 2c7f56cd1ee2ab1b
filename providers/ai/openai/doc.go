// Package openai implements [ai.Provider] over the OpenAI-compatible
// /chat/completions API. Because the endpoint shape is shared by many
// hosted and local inference servers, pointing [Provider.WithBaseURL] at a
// compatible server is all that is needed to switch backends.
package openai
