// Package report implements the pixel color reporter.
//
// A Reporter loads one image, samples its top-left pixel and renders the
// outcome as a single line:
//
//	Color detected: #rrggbb
//
// or, when the image cannot be opened, decoded or sampled:
//
//	Error: <description>
//
// Failures are not distinguished by kind. Whatever the underlying error says
// becomes the description, and the error line is written to the same writer
// as the success line.
package report
