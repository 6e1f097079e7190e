package parameter

// Projectile defaults, solid sphere in sea-level air
const (
	// ProjectileMass is the default projectile mass in kg
	ProjectileMass = 1.0

	// ProjectileRadius is the default projectile radius in metres
	ProjectileRadius = 0.1

	// ProjectileDragCoefficient is Cd for a smooth sphere
	ProjectileDragCoefficient = 0.47

	// AirDensity is rho at sea level in kg/m^3
	AirDensity = 1.225
)

// Clamp floors applied by every parameter setter
const (
	// MinMass keeps the drag/mass division well-defined
	MinMass = 1e-4

	// MinRadius keeps cross-sectional area non-degenerate
	MinRadius = 1e-4

	// MaxRadius bounds the radius so the cross-sectional area stays finite
	MaxRadius = 1e6

	// MinDragCoefficient and MinAirDensity allow exactly zero drag
	MinDragCoefficient = 0.0
	MinAirDensity      = 0.0
)

// Integration
const (
	// SpeedEpsilon is the relative speed below which drag is skipped
	SpeedEpsilon = 1e-6

	// MinStepCount is the shortest trajectory, a two-point line
	MinStepCount = 2

	// MinTimeStep replaces non-positive or NaN time steps
	MinTimeStep = 1e-6

	// GravityY is standard gravity along world Y
	GravityY = -9.81
)

// Preview
const (
	// PreviewPointsCount is the number of samples drawn per preview line
	PreviewPointsCount = 60

	// PreviewTimeStep is seconds between preview samples
	PreviewTimeStep = 0.02
)

// Live projectiles
const (
	// ProjectileMaxAge is seconds a fired projectile lives before despawn
	ProjectileMaxAge = 10.0
)
