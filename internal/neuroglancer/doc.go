// Package neuroglancer reads saved Neuroglancer viewer-state files and pulls
// out the two values the slicing pipeline needs: the path annotation drawn
// on a named annotation layer, and the source URL of a named image layer.
//
// The state file is parsed into a Value tree. Extractors walk that tree
// through type-checked accessors, so a missing key or unexpected type is
// reported as a StructuralError naming the offending path instead of a panic.
//
// All functions are pure apart from LoadState, which reads one file.
package neuroglancer
