package deed

import "sort"

// Templates maps a deed type to its ordered list of required documents.
// The set of documents for a case is fixed by the template at creation time;
// there is no add/remove-document operation afterwards.
type Templates map[string][]string

// For returns the required documents for a deed type, in template order.
// Unrecognized types yield an empty list - they are valid cases with no
// tracked documents, matching registry practice for ad-hoc deed types.
func (t Templates) For(deedType string) []string {
	docs := t[deedType]
	out := make([]string, len(docs))
	copy(out, docs)
	return out
}

// Types returns the recognized deed types.
func (t Templates) Types() []string {
	types := make([]string, 0, len(t))
	for name := range t {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}
