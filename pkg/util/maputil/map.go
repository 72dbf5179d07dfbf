package maputil

// CopyMap returns a fresh map with the same entries as the input.
// Builders hand out copies so callers can keep mutating their own maps
// without the built objects changing underneath them.
func CopyMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for key, value := range src {
		dst[key] = value
	}

	return dst
}

// MergeMap merges the given maps into a new map, later maps win on conflict.
func MergeMap(maps ...map[string]string) map[string]string {
	merged := map[string]string{}
	for _, m := range maps {
		for key, value := range m {
			merged[key] = value
		}
	}

	return merged
}
