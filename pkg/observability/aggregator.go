package observability

import (
	"context"

	"github.com/aretw0/balance/pkg/domain"
)

// Combine merges several hook sets into one. Hooks run in argument order; nil hooks are skipped.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var steps, verdicts, resets []func(context.Context, *domain.StepEvent)
	for _, h := range sets {
		if h.OnStep != nil {
			steps = append(steps, h.OnStep)
		}
		if h.OnVerdict != nil {
			verdicts = append(verdicts, h.OnVerdict)
		}
		if h.OnReset != nil {
			resets = append(resets, h.OnReset)
		}
	}
	return domain.LifecycleHooks{
		OnStep:    fanOut(steps),
		OnVerdict: fanOut(verdicts),
		OnReset:   fanOut(resets),
	}
}

func fanOut(fns []func(context.Context, *domain.StepEvent)) func(context.Context, *domain.StepEvent) {
	switch len(fns) {
	case 0:
		return nil
	case 1:
		return fns[0]
	}
	return func(ctx context.Context, e *domain.StepEvent) {
		for _, fn := range fns {
			fn(ctx, e)
		}
	}
}
