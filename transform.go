package formvalidation

import "maps"

// ApplyDataTransformations returns a shallow copy of data in which every
// field named in transforms holds the transformed value. Names absent from
// data are ignored; data itself is left untouched.
func ApplyDataTransformations(data FieldMapping, transforms map[string]Transformer) FieldMapping {
	out := maps.Clone(data)
	if out == nil {
		out = FieldMapping{}
	}
	for k, t := range transforms {
		v, ok := data[k]
		if !ok || t == nil {
			continue
		}
		out[k] = t.Transform(v)
	}
	return out
}
