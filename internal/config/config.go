package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExtractionOptions names the layers to pull out of a Neuroglancer state file.
// Names are matched exactly (case-sensitive, byte-exact).
type ExtractionOptions struct {
	AnnotationLayer string `yaml:"neuroglancer_annotation_layer" mapstructure:"neuroglancer_annotation_layer"`
	ImageLayer      string `yaml:"neuroglancer_image_layer" mapstructure:"neuroglancer_image_layer"`
}

// OptionsFile is the on-disk layout of an options YAML file.
type OptionsFile struct {
	Version int               `yaml:"version"`
	Options ExtractionOptions `yaml:",inline"`
}

// Validate reports which layer names are missing, if any.
func (o ExtractionOptions) Validate() error {
	var errs []error
	if o.AnnotationLayer == "" {
		errs = append(errs, errors.New("neuroglancer_annotation_layer is required"))
	}
	if o.ImageLayer == "" {
		errs = append(errs, errors.New("neuroglancer_image_layer is required"))
	}
	return errors.Join(errs...)
}

func LoadOptions(path string) (*ExtractionOptions, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f OptionsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, err
	}

	if f.Version != 1 {
		return nil, fmt.Errorf("unsupported options file version: %d", f.Version)
	}

	return &f.Options, nil
}
