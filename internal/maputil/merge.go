// Package maputil holds helpers for the nested map values used to compose request options.
package maputil

// DeepMerge returns a new map holding the keys of dst overlaid with the keys of src.
//
// When both sides hold a map[string]interface{} for the same key the two maps are
// merged recursively. Any other value in src (scalars, slices, nil) replaces the
// value in dst. Neither argument is modified.
func DeepMerge(dst, src map[string]interface{}) map[string]interface{} {
	merged := Clone(dst)
	if merged == nil {
		merged = make(map[string]interface{}, len(src))
	}

	for key, srcValue := range src {
		srcMap, srcIsMap := srcValue.(map[string]interface{})
		dstMap, dstIsMap := merged[key].(map[string]interface{})

		if srcIsMap && dstIsMap {
			merged[key] = DeepMerge(dstMap, srcMap)

			continue
		}

		if srcIsMap {
			merged[key] = Clone(srcMap)

			continue
		}

		merged[key] = srcValue
	}

	return merged
}

// Clone copies m, descending into nested maps. Slices are shared.
func Clone(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}

	out := make(map[string]interface{}, len(m))

	for key, value := range m {
		if nested, ok := value.(map[string]interface{}); ok {
			out[key] = Clone(nested)

			continue
		}

		out[key] = value
	}

	return out
}

// MergeStrings overlays src onto a copy of dst.
func MergeStrings(dst, src map[string]string) map[string]string {
	out := make(map[string]string, len(dst)+len(src))

	for key, value := range dst {
		out[key] = value
	}

	for key, value := range src {
		out[key] = value
	}

	return out
}
