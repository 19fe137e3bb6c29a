package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"acopack/internal/app"
)

type pruneOptions struct {
	OutputDir       string
	KeepLast        int
	ProtectVersions []string
	DryRun          bool
}

func newPruneCommand() *cobra.Command {
	opts := pruneOptions{}
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Prune accumulated artifacts based on retention policy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrune(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	cmd.Flags().IntVar(&opts.KeepLast, "keep-last", 0, "Keep last N artifacts per package")
	cmd.Flags().StringSliceVar(&opts.ProtectVersions, "protect", nil, "Protect versions from pruning")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", true, "Only report prune actions without deleting")

	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("keep_last", cmd.Flags().Lookup("keep-last"))
	_ = viper.BindPFlag("protect_versions", cmd.Flags().Lookup("protect"))
	_ = viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runPrune(ctx context.Context, cmd *cobra.Command, opts pruneOptions) error {
	service := newAppService()
	result, err := service.PruneArtifacts(ctx, app.PruneRequest{
		OutputDir:       resolveString(cmd, opts.OutputDir, "output", "output"),
		KeepLast:        resolveInt(cmd, opts.KeepLast, "keep_last", "keep-last"),
		ProtectVersions: resolveStrings(cmd, opts.ProtectVersions, "protect_versions", "protect"),
		DryRun:          resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
	})
	if err != nil {
		return err
	}
	if result.DryRun {
		fmt.Printf("dry-run: keep=%d delete=%d\n", result.KeepCount, result.DeleteCount)
		return nil
	}
	fmt.Printf("pruned artifacts: %d\n", result.DeleteCount)
	return nil
}
