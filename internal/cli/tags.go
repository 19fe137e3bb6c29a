package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"acopack/internal/app"
)

type tagsOptions struct {
	Spec   string
	Repo   string
	Latest bool
}

func newTagsCommand() *cobra.Command {
	opts := tagsOptions{}
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the remote's release tags ordered by version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTags(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Package spec path")
	cmd.Flags().StringVar(&opts.Repo, "repo", "", "Upstream repository URL")
	cmd.Flags().BoolVar(&opts.Latest, "latest", false, "Print only the newest tag")

	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("repo", cmd.Flags().Lookup("repo"))
	_ = viper.BindPFlag("latest", cmd.Flags().Lookup("latest"))

	return cmd
}

func runTags(ctx context.Context, cmd *cobra.Command, opts tagsOptions) error {
	service := newAppService()
	result, err := service.Tags(ctx, app.TagsRequest{
		SpecPath: resolveString(cmd, opts.Spec, "spec", "spec"),
		Repo:     resolveString(cmd, opts.Repo, "repo", "repo"),
		Latest:   resolveBool(cmd, opts.Latest, "latest", "latest"),
	})
	if err != nil {
		return err
	}
	for _, entry := range result.Entries {
		fmt.Printf("%s %s %s\n", entry.Tag, entry.Version, entry.ShortCommit)
	}
	return nil
}
