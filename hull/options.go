package hull

// Config is the four-switch builder. The zero value matches a
// certified-vertex, affine, facets-only, no-triangulation run; use the With*
// options to opt into the other behaviors.
type Config struct {
	expectRedundant   bool
	forCone           bool
	makeTriangulation bool
	computeVertices   bool
	debugLevel        DebugLevel
}

// Option mutates a Config being built by NewConfig.
type Option func(*Config)

// WithExpectRedundant allows the input to contain interior, duplicate, or
// collinear points. Without it, any such point is a fatal
// UnexpectedRedundantPointError.
func WithExpectRedundant() Option { return func(c *Config) { c.expectRedundant = true } }

// WithForCone declares the polyhedron a cone rooted at the origin: all input
// rows are rays, and the "far hyperplane" is not preserved when computing
// low-dimensional facet normals.
func WithForCone() Option { return func(c *Config) { c.forCone = true } }

// WithMakeTriangulation populates and returns the placing triangulation.
// Without it, all simplex bookkeeping is skipped.
func WithMakeTriangulation() Option { return func(c *Config) { c.makeTriangulation = true } }

// WithComputeVertices declares the input to be inequalities and the desired
// output vertices/rays (the dual problem). Without it, the input is points
// and the desired output is facets.
func WithComputeVertices() Option { return func(c *Config) { c.computeVertices = true } }

// NewConfig resolves a Config from zero or more Option setters, applied in
// order.
func NewConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// ExpectRedundant reports the configured value of the same-named switch.
func (c Config) ExpectRedundant() bool { return c.expectRedundant }

// ForCone reports the configured value of the same-named switch.
func (c Config) ForCone() bool { return c.forCone }

// MakeTriangulation reports the configured value of the same-named switch.
func (c Config) MakeTriangulation() bool { return c.makeTriangulation }

// ComputeVertices reports the configured value of the same-named switch.
func (c Config) ComputeVertices() bool { return c.computeVertices }

// DebugLevel reports the configured diagnostic verbosity.
func (c Config) DebugLevel() DebugLevel { return c.debugLevel }
