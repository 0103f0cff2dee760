package srtree

import (
	"io"

	"github.com/patrikhermansson/srtree/core"
	"github.com/schollz/progressbar/v3"
)

// BuildOption configures an optional aspect of tree construction that does
// not change the resulting tree's shape or query results.
type BuildOption func(*buildConfig)

type buildConfig struct {
	progress *progressbar.ProgressBar
}

// WithProgress renders a progress bar to w while the tree is being built,
// tracked in leaves created. It is strictly opt-in: a Tree built without it
// prints nothing, matching the library's default silence on the success
// path. Intended for hosts bulk-loading very large point sets from a CLI
// context where build time is visible to an operator.
func WithProgress(w io.Writer) BuildOption {
	return func(c *buildConfig) {
		c.progress = progressbar.NewOptions64(-1,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("building tree"),
			progressbar.OptionShowCount(),
		)
	}
}

// BuildWithOptions is like Build but accepts BuildOptions for ancillary
// construction behavior (currently just progress reporting).
func BuildWithOptions(coords [][]float64, params Params, metric core.Metric, opts ...BuildOption) (*Tree, error) {
	cfg := &buildConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	t, err := buildWithConfig(coords, params, metric, cfg)
	if cfg.progress != nil {
		_ = cfg.progress.Finish()
	}
	return t, err
}
