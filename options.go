package kbchat

// Options collects per-request settings for a chat call. Providers
// read it through ApplyOptions; zero values mean "use the provider's
// default".
type Options struct {
	Model       string
	MaxTokens   int
	Temperature *float64
	Tools       []Tool
	ToolChoice  ToolChoice
}

// Option configures a single chat request.
type Option func(*Options)

// ApplyOptions folds options into a fresh Options value.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithModel overrides the provider's default model for this request.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithMaxTokens caps the generated output length.
func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = &t
	}
}

// WithTools offers tools to the model for this request.
func WithTools(tools []Tool) Option {
	return func(o *Options) {
		o.Tools = tools
	}
}

// WithToolChoice steers how the model selects among offered tools.
func WithToolChoice(choice ToolChoice) Option {
	return func(o *Options) {
		o.ToolChoice = choice
	}
}
