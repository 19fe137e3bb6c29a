package app

import (
	"context"

	"acopack/internal/core"
	"acopack/internal/types"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	spec, err := s.loadEffectiveSpec(req.SpecPath, types.PackageSpec{})
	if err != nil {
		return ValidateResult{}, err
	}
	checker := core.NewSpecChecker()
	if err := checker.ValidateSpec(ctx, spec); err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{Package: spec.Package}, nil
}
