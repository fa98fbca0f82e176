package runner

import (
	"context"

	"github.com/reusee/bff/bffvm"
	"github.com/reusee/bff/configs"
	"github.com/reusee/bff/logs"
	"golang.org/x/sync/errgroup"
)

type Settings = configs.Settings

type Result struct {
	Tape   []byte
	Steps  int
	Halt   bffvm.Halt
	Cached bool
}

// RunMany runs tapes concurrently. Results are in input order.
type RunMany func(ctx context.Context, tapes [][]byte) ([]Result, error)

func (Module) RunMany(
	logger logs.Logger,
	newSpan logs.NewSpan,
	settings Settings,
	cache *Cache,
) RunMany {
	return func(ctx context.Context, tapes [][]byte) ([]Result, error) {
		ctx, _ = newSpan(ctx, "batch")
		logger.InfoContext(ctx, "run batch",
			"tapes", len(tapes),
			"limit", settings.Limit,
			"workers", settings.Workers,
		)

		results := make([]Result, len(tapes))
		g, gctx := errgroup.WithContext(ctx)
		if settings.Workers > 0 {
			g.SetLimit(settings.Workers)
		}

		for i, tape := range tapes {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = run(gctx, logger, cache, settings.Limit, tape)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		if err := ctx.Err(); err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		return results, nil
	}
}

func run(ctx context.Context, logger logs.Logger, cache *Cache, limit int, tape []byte) Result {
	if res, ok := cache.get(limit, tape); ok {
		logger.DebugContext(ctx, "cached run",
			"cells", len(tape),
			"steps", res.Steps,
			"halt", res.Halt.String(),
		)
		return res
	}

	vm := bffvm.NewVM(tape, limit)
	vm.Run()
	res := Result{
		Tape:  vm.Tape,
		Steps: vm.Steps,
		Halt:  vm.Halt(),
	}
	cache.add(limit, tape, res)

	logger.DebugContext(ctx, "run",
		"cells", len(tape),
		"steps", res.Steps,
		"halt", res.Halt.String(),
	)
	return res
}
