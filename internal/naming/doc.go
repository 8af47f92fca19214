// Package naming provides tile filename analysis: extracting the trailing
// numeric index from a filename, deriving the shared prefix used to
// synthesize placeholder filenames, and natural-order comparison of
// filenames with embedded numbers.
//
// All functions are pure string operations with no filesystem access, so
// they can be exercised without fixtures.
package naming
