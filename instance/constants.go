package instance

// Generator names, used to prefix errors.
const (
	MethodUniform   = "Uniform"
	MethodCircle    = "Circle"
	MethodGrid      = "Grid"
	MethodClustered = "Clustered"
)

// Size minimums. The solver needs two cities; a circle needs three to be one.
const (
	MinUniformCities   = 2
	MinCircleCities    = 3
	MinGridCities      = 2
	MinClusteredCities = 2
	MinClusters        = 1
)

// Default bounding box and noise.
const (
	DefaultMinX   = 0.0
	DefaultMinY   = 0.0
	DefaultMaxX   = 100.0
	DefaultMaxY   = 100.0
	DefaultSpread = 5.0
)
