// Package report generates personalized patient report PDFs by overlaying
// per-record text and an image onto a fixed single-page PDF template.
//
// The template page is imported as-is and painted first; the dynamic
// overlay (nine text fields, the patient photo, a generation timestamp)
// is drawn on top at positions supplied by the layout package. Each
// record yields one standalone single-page PDF.
//
// Main entry points:
//
// - NewComposer: loads a template and snapshots field positions
// - Composer.Compose: renders one record to PDF bytes
// - GenerateAll: runs a whole batch, isolating per-record failures
package report
