// Package query derives read-only views over an entity collection: text
// search, status filter, stable keyed sort and pagination. The fixed
// evaluation order is filter, then sort, then paginate. Nothing in this
// package mutates its input.
package query

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// SortSpec is the (key, direction) sort configuration. The key is a field
// name as rendered in the record's JSON form.
type SortSpec struct {
	Key        string `json:"key"`
	Descending bool   `json:"descending"`
}

// Toggle returns the spec resulting from the user choosing key: the same
// key flips direction, a new key always starts ascending.
func Toggle(spec SortSpec, key string) SortSpec {
	if spec.Key == key {
		return SortSpec{Key: key, Descending: !spec.Descending}
	}
	return SortSpec{Key: key}
}

// Search retains records where term appears, case-insensitively, in the
// string rendering of any field value. An empty term retains everything.
func Search[T any](items []T, term string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(renderFields(item), term) {
			out = append(out, item)
		}
	}
	return out
}

// FilterStatus retains records whose status accessor equals status. An
// empty status retains everything. Combined with Search the two filters
// are conjunctive.
func FilterStatus[T any](items []T, status string, get func(T) string) []T {
	if status == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if get(item) == status {
			out = append(out, item)
		}
	}
	return out
}

// Sort returns a new ordering by the spec's field value. Equal keys keep
// their relative input order.
func Sort[T any](items []T, spec SortSpec) []T {
	if spec.Key == "" {
		return items
	}

	out := make([]T, len(items))
	copy(out, items)

	keys := make([]any, len(out))
	for i, item := range out {
		keys[i] = fieldValue(item, spec.Key)
	}

	// Sort an index view so the key extraction runs once per record.
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		c := compare(keys[idx[a]], keys[idx[b]])
		if spec.Descending {
			return c > 0
		}
		return c < 0
	})

	sorted := make([]T, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}

// Paginate returns the 1-based page of the given size, clipped to the
// collection length. Out-of-range pages yield an empty slice, not an
// error.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}

	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Pages returns ceil(total/size), minimum 1.
func Pages(total, size int) int {
	if size < 1 || total <= size {
		return 1
	}
	return (total + size - 1) / size
}

// renderFields flattens a record into one lowercase searchable string.
func renderFields(item any) string {
	raw, err := json.Marshal(item)
	if err != nil {
		return ""
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return ""
	}

	var b strings.Builder
	appendValue(&b, decoded)
	return strings.ToLower(b.String())
}

func appendValue(b *strings.Builder, v any) {
	switch value := v.(type) {
	case nil:
	case map[string]any:
		for _, nested := range value {
			appendValue(b, nested)
		}
	case []any:
		for _, nested := range value {
			appendValue(b, nested)
		}
	case string:
		b.WriteString(value)
		b.WriteByte(' ')
	default:
		fmt.Fprintf(b, "%v ", value)
	}
}

// fieldValue extracts a record's top-level field by its JSON name.
func fieldValue(item any, key string) any {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	return fields[key]
}

// compare is a total order over the comparable field kinds: numbers,
// dates (RFC 3339 strings) and strings. Missing values sort last.
func compare(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return 1
	}
	if b == nil {
		return -1
	}

	if fa, ok := a.(float64); ok {
		if fb, ok := b.(float64); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}

	sa := fmt.Sprintf("%v", a)
	sb := fmt.Sprintf("%v", b)

	if ta, err := time.Parse(time.RFC3339, sa); err == nil {
		if tb, err := time.Parse(time.RFC3339, sb); err == nil {
			switch {
			case ta.Before(tb):
				return -1
			case ta.After(tb):
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(strings.ToLower(sa), strings.ToLower(sb))
}
