package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"acopack/internal/app"
)

type inspectOptions struct {
	OutputDir string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect build manifests in an output directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("build manifests: %d\n", len(result.Artifacts))
	for _, artifact := range result.Artifacts {
		fmt.Printf("- %s %s-%s (tag=%s commit=%s)\n",
			artifact.Package, artifact.Version, artifact.Release, artifact.Tag, artifact.ShortCommit)
		fmt.Printf("  artifact: %s\n", artifact.Artifact)
		fmt.Printf("  prefix: %s files: %d scripts: %d\n",
			artifact.Prefix, artifact.FileCount, artifact.ScriptCount)
	}
	return nil
}
