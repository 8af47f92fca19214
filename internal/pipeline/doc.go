// Package pipeline orchestrates a single run over one directory snapshot:
// discover eligible image files, analyze the numbering sequence, and either
// compose the tilesheet (Compose) or materialize placeholder tiles for the
// missing indices in place (Fill).
//
// Processing is strictly sequential; each source image is opened, copied
// into the destination, and released before the next one is touched.
package pipeline
