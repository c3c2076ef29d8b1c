package neuroglancer

// LayerRef identifies a layer by type and name.
type LayerRef struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// ListLayers returns the image and annotation layers that have a non-empty
// name, in document order. Layers of other types, and layers without a
// usable type or name, are skipped. Only a missing or non-array "layers"
// is an error.
func ListLayers(doc Value) (images, annotations []LayerRef, err error) {
	layers, err := root(doc).arrayField("layers")
	if err != nil {
		return nil, nil, &Error{Kind: StructuralError, Msg: msgLayersFailed, Err: err}
	}

	images = []LayerRef{}
	annotations = []LayerRef{}
	for _, layer := range layers {
		t, err := layer.stringField("type")
		if err != nil || (t != LayerTypeImage && t != LayerTypeAnnotation) {
			continue
		}

		name, err := layer.stringField("name")
		if err != nil || name == "" {
			continue
		}

		ref := LayerRef{Type: t, Name: name}
		if t == LayerTypeImage {
			images = append(images, ref)
		} else {
			annotations = append(annotations, ref)
		}
	}

	return images, annotations, nil
}
