// Package pipeline provides the core radar pipeline for blipradar.
//
// This package implements the complete build → place → render pipeline
// used by the CLI, the watch mode, and the HTTP host. Centralizing it
// keeps behaviour consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: Turn tabular rows into the hierarchical radar model
//  2. Place: Assign sector wedges, ring bands, and blip coordinates
//  3. Render: Generate output in various formats (SVG, PNG, JSON)
//
// Rendered artifacts are cached by a content hash covering the rows,
// the resolved sector colours, and the render options. Building and
// placement always run; they are cheap and their output is needed for
// the result either way.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Formats: []string{"svg"},
//	    Seed:    7,
//	}
//	result, err := runner.Execute(ctx, dataset, colours, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline
