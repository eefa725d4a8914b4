// Package filelist reads the newline-delimited lists that drive a run: the
// list of GIR documents to process and the exclusion lists.
//
// File list rules:
//   - blank lines and lines starting with "#" are ignored
//   - "$CWD" is replaced with the working directory
//   - only entries ending in ".gir" are accepted; others are reported as skipped
//   - duplicates are processed once, in first-seen order
//   - every accepted entry must exist and be a regular file
package filelist
