package cache

import (
	"sort"
	"strings"
)

// Filter is one query filter contributing to a cache key.
type Filter struct {
	Field string
	Value string
}

// Key identifies one cached read: [resourceName, ...filters in stable order].
// Filters are sorted by field name at construction, so two keys built from
// structurally-equal filter sets are equal regardless of argument order.
type Key struct {
	resource string
	filters  []Filter
}

func NewKey(resource string, filters ...Filter) Key {
	sorted := make([]Filter, len(filters))
	copy(sorted, filters)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Field == sorted[j].Field {
			return sorted[i].Value < sorted[j].Value
		}
		return sorted[i].Field < sorted[j].Field
	})
	return Key{resource: resource, filters: sorted}
}

func (k Key) Resource() string { return k.resource }

func (k Key) String() string {
	var b strings.Builder
	b.WriteString(k.resource)
	for _, f := range k.filters {
		b.WriteByte(':')
		b.WriteString(f.Field)
		b.WriteByte('=')
		b.WriteString(f.Value)
	}
	return b.String()
}

// Prefix returns the invalidation prefix covering every key of a resource,
// the entity keys included.
func Prefix(resource string) string { return resource }
