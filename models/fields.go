package models

// Fields is the set of top-level document fields written by a partial update.
type Fields map[string]any

func (f Fields) setString(key string, v *string) {
	if v != nil {
		f[key] = *v
	}
}

func (f Fields) setStrings(key string, v *[]string) {
	if v != nil {
		f[key] = orEmpty(*v)
	}
}

func (f Fields) setBool(key string, v *bool) {
	if v != nil {
		f[key] = *v
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
