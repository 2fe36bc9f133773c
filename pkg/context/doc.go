// Package context provides context utilities for the mdchunk library.
//
// It extends the standard context package with typed values for passing
// metadata throughout the chunking pipeline, particularly document identity
// and logging.
//
// # FileInfo
//
// FileInfo holds document metadata:
//
//	type FileInfo struct {
//	    Path  string // Logical document path (e.g., "docs/guide.md")
//	    Title string // Document title, if known ahead of analysis
//	}
//
// Store and retrieve file info from context:
//
//	ctx = context.WithFileInfo(ctx, context.FileInfo{
//	    Path: "docs/guide.md",
//	})
//
//	info, ok := context.FileInfoFrom(ctx)
//	if ok {
//	    fmt.Println(info.Path)
//	}
//
// # Logging
//
// The package provides access to structured logging via slog:
//
//	logger := context.Logger(ctx)
//	logger.Info("chunking document",
//	    slog.String("path", path),
//	    slog.Int("chunks", count))
//
// If no logger is configured in the context, a default logger is returned.
//
// # Usage in the pipeline
//
// Context flows through every stage of the chunking pipeline: the line
// scanner, the content analyzer, the selected strategy, the overlap
// annotator, the metadata enricher, the hierarchy builder and the validator
// all accept a context.Context and use it for cancellation checks and
// structured logging, without threading file identity through every
// function signature.
package context
