package neuroglancer

import "github.com/AaronLay10/ngstate/internal/config"

const (
	LayerTypeAnnotation = "annotation"
	LayerTypeImage      = "image"

	AnnotationTypePoint = "point"
)

// Point is a 3D coordinate in the viewer's global coordinate space.
type Point [3]float64

// ExtractAnnotation collects the point annotations of the first annotation
// layer named opts.AnnotationLayer, in document order.
//
// Only the first matching layer is consulted. If it carries no point
// annotations the result is an empty slice and a nil error.
func ExtractAnnotation(doc Value, opts config.ExtractionOptions) ([]Point, error) {
	points, found, err := findAnnotation(root(doc), opts.AnnotationLayer)
	if err != nil {
		return nil, &Error{Kind: StructuralError, Msg: msgAnnotationFailed, Err: err}
	}
	if !found {
		return nil, &Error{Kind: NoMatchingLayer, Msg: msgNoAnnotations}
	}
	return points, nil
}

func findAnnotation(doc node, name string) ([]Point, bool, error) {
	layers, err := doc.arrayField("layers")
	if err != nil {
		return nil, false, err
	}

	for _, layer := range layers {
		ok, err := layer.layerMatches(LayerTypeAnnotation, name)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			continue
		}

		points, err := collectPoints(layer)
		if err != nil {
			return nil, false, err
		}
		return points, true, nil
	}

	return nil, false, nil
}

func collectPoints(layer node) ([]Point, error) {
	annotations, err := layer.arrayField("annotations")
	if err != nil {
		return nil, err
	}

	points := []Point{}
	for _, a := range annotations {
		t, err := a.stringField("type")
		if err != nil {
			return nil, err
		}
		if t != AnnotationTypePoint {
			continue
		}

		pf, err := a.field("point")
		if err != nil {
			return nil, err
		}
		p, err := pf.point()
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}
