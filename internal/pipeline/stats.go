package pipeline

// RunStats tracks counters across one run, for the operator-facing summary.
type RunStats struct {
	Found        int   // Eligible image files discovered.
	Placed       int   // Source tiles pasted into the sheet.
	Placeholders int   // Transparent cells left for missing indices.
	Excluded     int   // Files skipped for lacking a numeric index.
	Created      int   // Placeholder files written to disk (Fill mode).
	OutputBytes  int64 // Size of the written tilesheet.
}
