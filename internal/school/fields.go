// Package school provides typed access into a generic department
// document tree. A lookup never fails hard: a missing key, a non-object
// container or a value of the wrong type all read as absence.
package school

// Field returns the raw value stored under key, if obj is an object
// and the key exists.
func Field(obj any, key string) (any, bool) {
	object, ok := obj.(map[string]any)
	if !ok {
		return nil, false
	}

	value, ok := object[key]
	return value, ok
}

// StringField returns the value under key only when it is a string.
func StringField(obj any, key string) (string, bool) {
	value, ok := Field(obj, key)
	if !ok {
		return "", false
	}

	s, ok := value.(string)
	return s, ok
}

// ObjectField returns the value under key only when it is an object.
func ObjectField(obj any, key string) (map[string]any, bool) {
	value, ok := Field(obj, key)
	if !ok {
		return nil, false
	}

	object, ok := value.(map[string]any)
	return object, ok
}

// ArrayField returns the value under key only when it is an array.
func ArrayField(obj any, key string) ([]any, bool) {
	value, ok := Field(obj, key)
	if !ok {
		return nil, false
	}

	array, ok := value.([]any)
	return array, ok
}
