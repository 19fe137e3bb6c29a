package adapters

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"acopack/internal/core"
	"acopack/internal/ports"
	"acopack/internal/shared"
)

// RPMBuildAdapter generates a classic spec file and shells out to
// rpmbuild.  The spec requires the git_tag and git_commit macros, which
// are passed with --define: an invocation without them is a build error
// before anything is staged.
type RPMBuildAdapter struct{}

func NewRPMBuildAdapter() RPMBuildAdapter {
	return RPMBuildAdapter{}
}

func (a RPMBuildAdapter) Emit(ctx context.Context, req ports.EmitRequest) (ports.EmitResult, error) {
	topDir, err := os.MkdirTemp("", "acopack-rpmbuild-")
	if err != nil {
		return ports.EmitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create rpmbuild topdir").
			WithCause(err)
	}
	defer os.RemoveAll(topDir)

	specPath := filepath.Join(topDir, req.Package+".spec")
	if err := os.WriteFile(specPath, []byte(buildSpecFile(req)), 0o644); err != nil {
		return ports.EmitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write spec file").
			WithCause(err)
	}

	cmd := exec.CommandContext(ctx, "rpmbuild", "-bb", specPath,
		"--define", fmt.Sprintf("_topdir %s", topDir),
		"--define", fmt.Sprintf("git_tag %s", req.Tag),
		"--define", fmt.Sprintf("git_commit %s", req.ShortCommit),
		"--define", fmt.Sprintf("_acopack_buildroot %s", req.BuildRoot),
		"--define", "_buildhost acopack",
		"--define", fmt.Sprintf("_builddate %d", req.SourceTime.Unix()),
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return ports.EmitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("rpmbuild failed").
			WithCause(shared.CommandError(output, err))
	}

	artifactName := core.ArtifactFileName(req.Package, req.Version, req.Release)
	built := filepath.Join(topDir, "RPMS", core.ArtifactArch, artifactName)
	artifactPath := filepath.Join(req.OutputDir, artifactName)
	if err := shared.CopyFile(built, artifactPath, 0o644); err != nil {
		return ports.EmitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to collect rpmbuild artifact").
			WithCause(err)
	}
	return ports.EmitResult{ArtifactPath: artifactPath}, nil
}

func buildSpecFile(req ports.EmitRequest) string {
	var spec strings.Builder
	spec.WriteString("%{!?git_tag:%{error:git_tag macro must be defined}}\n")
	spec.WriteString("%{!?git_commit:%{error:git_commit macro must be defined}}\n")
	spec.WriteString("\n")
	spec.WriteString(fmt.Sprintf("Name:           %s\n", req.Package))
	spec.WriteString(fmt.Sprintf("Version:        %s\n", req.Version))
	spec.WriteString(fmt.Sprintf("Release:        1.git%%{git_commit}%s\n", req.Dist))
	spec.WriteString(fmt.Sprintf("Summary:        %s\n", req.Summary))
	if req.License != "" {
		spec.WriteString(fmt.Sprintf("License:        %s\n", req.License))
	}
	if req.URL != "" {
		spec.WriteString(fmt.Sprintf("URL:            %s\n", req.URL))
	}
	spec.WriteString(fmt.Sprintf("BuildArch:      %s\n", core.ArtifactArch))
	for _, entry := range req.Requires {
		spec.WriteString(fmt.Sprintf("Requires:       %s\n", entry))
	}
	spec.WriteString("\n%description\n")
	spec.WriteString(req.Description)
	spec.WriteString("\n")
	spec.WriteString("\n%install\n")
	spec.WriteString("rm -rf %{buildroot}\n")
	spec.WriteString(fmt.Sprintf("mkdir -p %%{buildroot}%s\n", filepath.Dir(req.Prefix)))
	spec.WriteString(fmt.Sprintf("cp -a %%{_acopack_buildroot}%s %%{buildroot}%s\n", req.Prefix, req.Prefix))
	spec.WriteString("\n%files\n")
	spec.WriteString(req.Prefix)
	spec.WriteString("\n")
	return spec.String()
}

var _ ports.ArtifactEmitterPort = RPMBuildAdapter{}
