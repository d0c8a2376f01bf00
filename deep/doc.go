/*
Package deep provides recursive operations over dynamically typed document
trees: the map[string]any / []any values produced by decoding JSON or YAML.

  - [Clone] copies a tree so that no map or slice is shared with the source.
  - [Merge] overlays one mapping onto another in place; [Combine] does the
    same on a copy.
  - [Equal] compares two trees structurally.
  - [Diff] reports the keys whose value was added or changed.

Only map[string]any and []any are walked. Every other value, including
pointers and typed slices, is treated as a leaf and copied as-is. Cyclic
trees are not supported.
*/
package deep
