package neuroglancer

import "github.com/AaronLay10/ngstate/internal/config"

// ExtractSource resolves the source URL of the first image layer named
// opts.ImageLayer. The source may be a plain string or an object with a
// "url" field. The URL is returned verbatim.
func ExtractSource(doc Value, opts config.ExtractionOptions) (string, error) {
	layers, err := root(doc).arrayField("layers")
	if err != nil {
		return "", sourceFailed(err)
	}

	for _, layer := range layers {
		ok, err := layer.layerMatches(LayerTypeImage, opts.ImageLayer)
		if err != nil {
			return "", sourceFailed(err)
		}
		if !ok {
			continue
		}

		src, err := layer.field("source")
		if err != nil {
			return "", sourceFailed(err)
		}

		switch s := src.v.(type) {
		case String:
			return string(s), nil
		case Object:
			url, err := src.stringField("url")
			if err != nil {
				return "", sourceFailed(err)
			}
			return url, nil
		default:
			return "", &Error{Kind: InvalidSourceShape, Msg: msgInvalidSource}
		}
	}

	return "", &Error{Kind: NoMatchingLayer, Msg: msgNoSource}
}

func sourceFailed(err error) error {
	return &Error{Kind: StructuralError, Msg: msgSourceFailed, Err: err}
}
