package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"acopack/internal/types"
)

type SpecChecker struct{}

var validUnresolvedPolicies = map[types.UnresolvedPolicy]struct{}{
	types.UnresolvedFail:        {},
	types.UnresolvedPlaceholder: {},
}

var validEmitters = map[types.EmitterKind]struct{}{
	types.EmitterNative:   {},
	types.EmitterRPMBuild: {},
}

func NewSpecChecker() SpecChecker {
	return SpecChecker{}
}

// ValidateSpec checks a package spec after defaults have been applied.
// Package and repo come from user input and produce errors; the
// defaulted fields are asserted because defaulting guarantees them.
func (c SpecChecker) ValidateSpec(ctx context.Context, spec types.PackageSpec) error {
	pkg := strings.TrimSpace(spec.Package)
	if pkg == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	if strings.ContainsAny(pkg, " /") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package name %q must not contain spaces or slashes", pkg))
	}
	if strings.TrimSpace(spec.Repo) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository url is required")
	}
	assert.NotEmpty(ctx, spec.Prefix, "prefix must be set after defaulting")
	assert.NotEmpty(ctx, spec.Python, "python interpreter must be set after defaulting")
	if !strings.HasPrefix(spec.Prefix, "/") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("prefix %q must be an absolute path", spec.Prefix))
	}
	if strings.TrimSuffix(spec.Prefix, "/") == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("prefix must not be the filesystem root")
	}
	for _, req := range spec.Requires {
		if strings.TrimSpace(req) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("requires entries must not be empty")
		}
	}
	if _, ok := validUnresolvedPolicies[spec.OnUnresolved]; !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("on_unresolved must be fail or placeholder, got %q", spec.OnUnresolved))
	}
	if _, ok := validEmitters[spec.Emitter]; !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("emitter must be native or rpmbuild, got %q", spec.Emitter))
	}
	if spec.Dist != "" && !strings.HasPrefix(spec.Dist, ".") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("dist suffix %q must start with a dot", spec.Dist))
	}
	return nil
}
