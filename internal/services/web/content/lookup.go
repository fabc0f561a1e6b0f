package content

// Entry is implemented by every registry row.
type Entry interface {
	EntrySlug() string
}

// FindBySlug returns the entry whose slug equals slug exactly.
func FindBySlug[E Entry](list []E, slug string) (E, bool) {
	for _, entry := range list {
		if entry.EntrySlug() == slug {
			return entry, true
		}
	}
	var zero E
	return zero, false
}

// Neighbors returns the entries before and after slug in list order.
// The ends do not wrap. ok is false when slug is not in list.
func Neighbors[E Entry](list []E, slug string) (prev, next *E, ok bool) {
	for i := range list {
		if list[i].EntrySlug() != slug {
			continue
		}
		if i > 0 {
			p := list[i-1]
			prev = &p
		}
		if i < len(list)-1 {
			n := list[i+1]
			next = &n
		}
		return prev, next, true
	}
	return nil, nil, false
}

// Related returns up to n entries in list order, skipping slug.
func Related[E Entry](list []E, slug string, n int) []E {
	if n <= 0 {
		return nil
	}
	out := make([]E, 0, n)
	for _, entry := range list {
		if entry.EntrySlug() == slug {
			continue
		}
		out = append(out, entry)
		if len(out) == n {
			break
		}
	}
	return out
}

// First returns up to n leading entries.
func First[E any](list []E, n int) []E {
	if n < 0 {
		n = 0
	}
	if n > len(list) {
		n = len(list)
	}
	out := make([]E, n)
	copy(out, list[:n])
	return out
}
