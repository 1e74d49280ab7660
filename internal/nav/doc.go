// Package nav holds the navigation configuration of a documentation portal: the top
// navigation bar, the path-scoped sidebars, UI chrome labels and site metadata.
//
// A Store is built once from a Spec literal (or from a loaded configuration file, see
// package config) and is immutable afterwards. Build rejects malformed entries, invalid
// links and cyclic navigation trees with a validation error naming the offending entry
// path; everything that only affects presentation degrades gracefully instead. In
// particular a page path that matches no sidebar prefix yields an empty sidebar.
//
// Sidebar selection uses the longest registered prefix of the page path. The prefix
// table is compiled at construction time and ordered by specificity, so lookups never
// depend on map iteration order.
package nav
