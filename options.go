package media

// ContextOption configures a ColorContext during creation.
//
// Example:
//
//	// Profiles from the default fetcher (files, file://, http(s)://)
//	ctx, err := media.NewColorContext("/usr/share/color/icc/cmyk.icc")
//
//	// Custom fetcher (dependency injection)
//	ctx, err := media.NewColorContext("asset://print.icc", media.WithFetcher(assets))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for ColorContext creation.
type contextOptions struct {
	fetcher     ProfileFetcher
	transformer ColorTransformer
}

// defaultContextOptions returns the options used when none are given.
// Nil collaborators resolve to the process-wide ones at use time.
func defaultContextOptions() contextOptions {
	return contextOptions{}
}

func applyContextOptions(opts []ContextOption) contextOptions {
	o := defaultContextOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithFetcher sets the fetcher used to load the profile bytes.
// Standard contexts created with a custom fetcher are not cached.
//
// Example:
//
//	ctx, err := media.NewColorContextFromPixelFormat(media.PixelFormatBgra32,
//		media.WithFetcher(media.ProfileFetcherFunc(openFromBundle)))
func WithFetcher(f ProfileFetcher) ContextOption {
	return func(o *contextOptions) {
		o.fetcher = f
	}
}

// WithTransformer binds a color transformer to the context. Colors that
// carry the context convert their native values with it instead of the
// process-wide transformer set by SetColorTransformer.
func WithTransformer(t ColorTransformer) ContextOption {
	return func(o *contextOptions) {
		o.transformer = t
	}
}
