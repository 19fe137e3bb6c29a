package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"acopack/internal/app"
	"acopack/internal/types"
)

type resolveOptions struct {
	Spec         string
	Repo         string
	OnUnresolved string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve TAG",
		Short: "Resolve a release tag to its commit on the upstream remote",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd, opts, positionalTag(args))
		},
	}

	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Package spec path")
	cmd.Flags().StringVar(&opts.Repo, "repo", "", "Upstream repository URL")
	cmd.Flags().StringVar(&opts.OnUnresolved, "on-unresolved", "", "Unresolved tag policy (fail or placeholder)")

	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("repo", cmd.Flags().Lookup("repo"))
	_ = viper.BindPFlag("on_unresolved", cmd.Flags().Lookup("on-unresolved"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions, tag string) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		Tag:          tag,
		SpecPath:     resolveString(cmd, opts.Spec, "spec", "spec"),
		Repo:         resolveString(cmd, opts.Repo, "repo", "repo"),
		OnUnresolved: types.UnresolvedPolicy(resolveString(cmd, opts.OnUnresolved, "on_unresolved", "on-unresolved")),
	})
	if err != nil {
		return err
	}
	fmt.Printf("repository: %s\n", result.Repo)
	fmt.Printf("tag: %s\n", result.Tag)
	fmt.Printf("commit: %s\n", result.ShortCommit)
	fmt.Printf("version: %s\n", result.Version)
	return nil
}

// positionalTag leaves the missing-argument case to the app layer so the
// usage error carries the same code as every other validation failure.
func positionalTag(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
