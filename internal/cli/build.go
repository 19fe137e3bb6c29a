package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"acopack/internal/app"
	"acopack/internal/types"
)

type buildOptions struct {
	Spec         string
	Repo         string
	Package      string
	Prefix       string
	Summary      string
	License      string
	URL          string
	Requires     []string
	Dist         string
	OutputDir    string
	Emitter      string
	Python       string
	OnUnresolved string
	KeepWork     bool
}

func newBuildCommand() *cobra.Command {
	opts := buildOptions{}
	cmd := &cobra.Command{
		Use:   "build TAG",
		Short: "Resolve, fetch, verify, and package a tagged release",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), cmd, opts, positionalTag(args))
		},
	}

	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Package spec path")
	cmd.Flags().StringVar(&opts.Repo, "repo", "", "Upstream repository URL")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Package name")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "Install prefix owned by the package")
	cmd.Flags().StringVar(&opts.Summary, "summary", "", "Package summary")
	cmd.Flags().StringVar(&opts.License, "license", "", "License identifier")
	cmd.Flags().StringVar(&opts.URL, "url", "", "Upstream project URL")
	cmd.Flags().StringSliceVar(&opts.Requires, "requires", nil, "Runtime dependencies")
	cmd.Flags().StringVar(&opts.Dist, "dist", "", "Distribution suffix for the release string (e.g. .el9)")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	cmd.Flags().StringVar(&opts.Emitter, "emitter", "", "Artifact emitter (native or rpmbuild)")
	cmd.Flags().StringVar(&opts.Python, "python", "", "Python interpreter used for script verification")
	cmd.Flags().StringVar(&opts.OnUnresolved, "on-unresolved", "", "Unresolved tag policy (fail or placeholder)")
	cmd.Flags().BoolVar(&opts.KeepWork, "keep-work", false, "Keep the build workspace for debugging")

	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("repo", cmd.Flags().Lookup("repo"))
	_ = viper.BindPFlag("package", cmd.Flags().Lookup("package"))
	_ = viper.BindPFlag("prefix", cmd.Flags().Lookup("prefix"))
	_ = viper.BindPFlag("summary", cmd.Flags().Lookup("summary"))
	_ = viper.BindPFlag("license", cmd.Flags().Lookup("license"))
	_ = viper.BindPFlag("url", cmd.Flags().Lookup("url"))
	_ = viper.BindPFlag("requires", cmd.Flags().Lookup("requires"))
	_ = viper.BindPFlag("dist", cmd.Flags().Lookup("dist"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("emitter", cmd.Flags().Lookup("emitter"))
	_ = viper.BindPFlag("python", cmd.Flags().Lookup("python"))
	_ = viper.BindPFlag("on_unresolved", cmd.Flags().Lookup("on-unresolved"))
	_ = viper.BindPFlag("keep_work", cmd.Flags().Lookup("keep-work"))

	return cmd
}

func runBuild(ctx context.Context, cmd *cobra.Command, opts buildOptions, tag string) error {
	service := newAppService()
	result, err := service.Build(ctx, app.BuildRequest{
		Tag:          tag,
		SpecPath:     resolveString(cmd, opts.Spec, "spec", "spec"),
		Repo:         resolveString(cmd, opts.Repo, "repo", "repo"),
		Package:      resolveString(cmd, opts.Package, "package", "package"),
		Prefix:       resolveString(cmd, opts.Prefix, "prefix", "prefix"),
		Summary:      resolveString(cmd, opts.Summary, "summary", "summary"),
		License:      resolveString(cmd, opts.License, "license", "license"),
		URL:          resolveString(cmd, opts.URL, "url", "url"),
		Requires:     resolveStrings(cmd, opts.Requires, "requires", "requires"),
		Dist:         resolveString(cmd, opts.Dist, "dist", "dist"),
		OutputDir:    resolveString(cmd, opts.OutputDir, "output", "output"),
		Emitter:      types.EmitterKind(resolveString(cmd, opts.Emitter, "emitter", "emitter")),
		Python:       resolveString(cmd, opts.Python, "python", "python"),
		OnUnresolved: types.UnresolvedPolicy(resolveString(cmd, opts.OnUnresolved, "on_unresolved", "on-unresolved")),
		KeepWork:     resolveBool(cmd, opts.KeepWork, "keep_work", "keep-work"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("built artifact: %s\n", result.ArtifactPath)
	fmt.Printf("manifest: %s\n", result.ManifestPath)
	fmt.Printf("version: %s release: %s commit: %s\n", result.Version, result.Release, result.ShortCommit)
	return nil
}
