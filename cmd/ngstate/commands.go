package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AaronLay10/ngstate/internal/config"
	"github.com/AaronLay10/ngstate/internal/events"
	"github.com/AaronLay10/ngstate/internal/neuroglancer"
)

func newPointsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "points <state.json>",
		Short: "Print the path annotation points as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := extractionOptions(v)
			if err != nil {
				return err
			}
			if opts.AnnotationLayer == "" {
				return errors.New("annotation layer name is required (--annotation-layer)")
			}

			doc, err := loadState(args[0])
			if err != nil {
				return err
			}

			points, err := extractPoints(doc, opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), points)
		},
	}
}

func newSourceCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "source <state.json>",
		Short: "Print the image layer source URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := extractionOptions(v)
			if err != nil {
				return err
			}
			if opts.ImageLayer == "" {
				return errors.New("image layer name is required (--image-layer)")
			}

			doc, err := loadState(args[0])
			if err != nil {
				return err
			}

			url, err := extractSource(doc, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		},
	}
}

type layersOutput struct {
	Images      []neuroglancer.LayerRef `json:"image_layers"`
	Annotations []neuroglancer.LayerRef `json:"annotation_layers"`
}

func newLayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layers <state.json>",
		Short: "List named image and annotation layers as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadState(args[0])
			if err != nil {
				return err
			}

			images, annotations, err := neuroglancer.ListLayers(doc)
			if err != nil {
				_ = events.Emit("error", "layers.failed", err.Error(), nil)
				return err
			}
			_ = events.Emit("debug", "layers.listed", "", map[string]interface{}{
				"image_layers":      len(images),
				"annotation_layers": len(annotations),
			})
			return writeJSON(cmd.OutOrStdout(), layersOutput{Images: images, Annotations: annotations})
		},
	}
}

func newExtractCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <state.json>",
		Short: "Print both the path points and the image source URL as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := extractionOptions(v)
			if err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			doc, err := loadState(args[0])
			if err != nil {
				return err
			}

			points, err := extractPoints(doc, opts)
			if err != nil {
				return err
			}
			url, err := extractSource(doc, opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), neuroglancer.Extraction{Points: points, SourceURL: url})
		},
	}
}

func loadState(path string) (neuroglancer.Value, error) {
	doc, err := neuroglancer.LoadState(path)
	if err != nil {
		_ = events.Emit("error", "state.failed", err.Error(), map[string]interface{}{"path": path})
		return nil, err
	}
	_ = events.Emit("debug", "state.loaded", "", map[string]interface{}{"path": path})
	return doc, nil
}

func extractPoints(doc neuroglancer.Value, opts config.ExtractionOptions) ([]neuroglancer.Point, error) {
	points, err := neuroglancer.ExtractAnnotation(doc, opts)
	if err != nil {
		_ = events.Emit("error", "annotation.failed", err.Error(), map[string]interface{}{
			"layer": opts.AnnotationLayer,
		})
		return nil, err
	}
	if len(points) == 0 {
		_ = events.Emit("warn", "annotation.extracted", "annotation layer has no point annotations", map[string]interface{}{
			"layer": opts.AnnotationLayer,
		})
	} else {
		_ = events.Emit("debug", "annotation.extracted", "", map[string]interface{}{
			"layer":  opts.AnnotationLayer,
			"points": len(points),
		})
	}
	return points, nil
}

func extractSource(doc neuroglancer.Value, opts config.ExtractionOptions) (string, error) {
	url, err := neuroglancer.ExtractSource(doc, opts)
	if err != nil {
		_ = events.Emit("error", "source.failed", err.Error(), map[string]interface{}{
			"layer": opts.ImageLayer,
		})
		return "", err
	}
	_ = events.Emit("debug", "source.extracted", "", map[string]interface{}{
		"layer": opts.ImageLayer,
		"url":   url,
	})
	return url, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
