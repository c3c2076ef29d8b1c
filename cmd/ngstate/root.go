package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/AaronLay10/ngstate/internal/config"
	"github.com/AaronLay10/ngstate/internal/events"
	"github.com/AaronLay10/ngstate/internal/version"
)

const (
	keyAnnotationLayer = "neuroglancer_annotation_layer"
	keyImageLayer      = "neuroglancer_image_layer"
	keyVerbose         = "verbose"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var optionsFile string

	root := &cobra.Command{
		Use:   "ngstate",
		Short: "Extract path annotations and image sources from Neuroglancer state files",
		Long: `ngstate reads a saved Neuroglancer viewer state (JSON) and extracts the
points of a named annotation layer and the source URL of a named image layer.

Layer names come from flags, NGSTATE_* environment variables (a .env file in
the working directory is honoured), or a YAML options file, in that order.`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, optionsFile); err != nil {
				return err
			}
			events.InitLogger(v.GetBool(keyVerbose), cmd.ErrOrStderr())
			return events.Emit("debug", "system.startup", "ngstate starting", map[string]interface{}{
				"command": cmd.Name(),
				"version": version.Version,
			})
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&optionsFile, "options", "", "YAML options file naming the layers")
	flags.String("annotation-layer", "", "name of the annotation layer holding the path")
	flags.String("image-layer", "", "name of the image layer to stream from")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	bindFlags(v, flags)

	root.AddCommand(
		newPointsCmd(v),
		newSourceCmd(v),
		newLayersCmd(),
		newExtractCmd(v),
	)
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	_ = v.BindPFlag(keyAnnotationLayer, flags.Lookup("annotation-layer"))
	_ = v.BindPFlag(keyImageLayer, flags.Lookup("image-layer"))
	_ = v.BindPFlag(keyVerbose, flags.Lookup("verbose"))
}

// initConfig layers env vars over the options file. Flags win over both.
func initConfig(v *viper.Viper, optionsFile string) error {
	// a missing .env is fine
	_ = godotenv.Load()

	v.SetEnvPrefix("NGSTATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if optionsFile != "" {
		opts, err := config.LoadOptions(optionsFile)
		if err != nil {
			return fmt.Errorf("failed to load options file: %w", err)
		}
		v.SetDefault(keyAnnotationLayer, opts.AnnotationLayer)
		v.SetDefault(keyImageLayer, opts.ImageLayer)
	}
	return nil
}

func extractionOptions(v *viper.Viper) (config.ExtractionOptions, error) {
	var opts config.ExtractionOptions
	if err := v.Unmarshal(&opts); err != nil {
		return opts, fmt.Errorf("failed to decode options: %w", err)
	}
	return opts, nil
}
