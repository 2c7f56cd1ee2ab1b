package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/formpipe/formpipe/core/extractor"
	"github.com/formpipe/formpipe/core/schema"
	"github.com/formpipe/formpipe/providers/ai/openai"
	slogobs "github.com/formpipe/formpipe/providers/observability/slog"
	"github.com/formpipe/formpipe/providers/store"
	"github.com/formpipe/formpipe/providers/store/inmemory"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "formpipe",
		Short:         "Schema-driven structured data extraction from unstructured content",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newExtractCmd())
	return root
}

type extractFlags struct {
	contentPath     string
	schemaPath      string
	prefillPath     string
	definitionsPath string
	modality        string
	model           string
	timeout         time.Duration
}

func newExtractCmd() *cobra.Command {
	flags := extractFlags{}

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract a structured record from a content file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.contentPath, "content", "c", "", "path to the content file (transcript, OCR text, HTML)")
	cmd.Flags().StringVarP(&flags.schemaPath, "schema", "s", "", "path to a form schema document (JSON or YAML); omit for the built-in media-analysis schema")
	cmd.Flags().StringVarP(&flags.prefillPath, "prefill", "p", "", "path to a JSON object of pre-filled field values")
	cmd.Flags().StringVarP(&flags.definitionsPath, "definitions", "d", "", "path to a file of industry-specific definitions")
	cmd.Flags().StringVar(&flags.modality, "modality", "", "source medium of the content (audio, video, document, image)")
	cmd.Flags().StringVarP(&flags.model, "model", "m", "", "model identifier to use for extraction")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 2*time.Minute, "per-call timeout for the LLM request")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func runExtract(ctx context.Context, flags extractFlags) error {
	rawContent, err := os.ReadFile(flags.contentPath)
	if err != nil {
		return fmt.Errorf("failed to read content file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogobs.GetLogLevelFromEnv(),
	}))

	job := store.NewJob()
	job.Modality = flags.modality

	if flags.schemaPath != "" {
		document, err := os.ReadFile(flags.schemaPath)
		if err != nil {
			return fmt.Errorf("failed to read schema file: %w", err)
		}
		// Fail on a broken schema now, not halfway through the run.
		if _, err := schema.Load(document); err != nil {
			return err
		}
		job.FormSchema = string(document)
	}
	if flags.prefillPath != "" {
		document, err := os.ReadFile(flags.prefillPath)
		if err != nil {
			return fmt.Errorf("failed to read prefill file: %w", err)
		}
		job.PreFilledValues = string(document)
	}
	if flags.definitionsPath != "" {
		document, err := os.ReadFile(flags.definitionsPath)
		if err != nil {
			return fmt.Errorf("failed to read definitions file: %w", err)
		}
		job.Definitions = string(document)
	}

	jobs := inmemory.NewJobStore()
	objects := inmemory.NewObjectStore()
	if err := jobs.Put(ctx, job); err != nil {
		return err
	}

	config := extractor.Config{Model: flags.model}
	pipeline, err := extractor.New(
		openai.New(),
		extractor.WithConfig(config),
		extractor.WithStores(jobs, objects),
		extractor.WithObserver(slogobs.New(logger)),
		extractor.WithMiddlewares(
			extractor.NewLoggingMiddleware(logger),
			extractor.NewTimeoutMiddleware(flags.timeout),
		),
	)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(ctx, job.ID, string(rawContent))
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(result.Object, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))

	if !result.Valid {
		fmt.Fprintln(os.Stderr, "validation errors:")
		for _, message := range result.ValidationErrors {
			fmt.Fprintf(os.Stderr, "  - %s\n", message)
		}
	}
	return nil
}
