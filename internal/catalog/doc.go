package catalog

// Package catalog loads the static list of creos from a JSON or YAML data file
// and resolves their icons. A loaded Catalog is immutable; entries keep the
// order they have in the file and the reserved "metadata" key is surfaced
// separately instead of as an entry.
