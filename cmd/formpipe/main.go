// Command formpipe runs the extraction pipeline from the command line:
// it reads content and an optional form schema from files, sends the
// extraction prompt to an OpenAI-compatible endpoint, and prints the
// recovered, merged, validated record as JSON.
//
// Configuration comes from flags plus the environment (a .env file is
// loaded automatically): OPENAI_API_KEY, OPENAI_API_BASE_URL,
// FORMPIPE_LOG_LEVEL.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
