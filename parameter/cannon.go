package parameter

// Cannon movement
const (
	// CannonMoveSpeed is ground translation speed in m/s
	CannonMoveSpeed = 5.0

	// CannonYawSpeed is yaw rate in degrees/s
	CannonYawSpeed = 90.0

	// CannonPitchSpeed is muzzle elevation rate in degrees/s
	CannonPitchSpeed = 45.0

	// CannonMinPitch and CannonMaxPitch bound muzzle elevation in degrees
	CannonMinPitch = -5.0
	CannonMaxPitch = 80.0

	// CannonMinRootHeight triggers the lift to CannonLiftHeight when the root spawns underground
	CannonMinRootHeight = 0.1
	CannonLiftHeight    = 1.0

	// CannonMuzzleLength is muzzle distance from the root along the barrel
	CannonMuzzleLength = 0.5
)

// Shot
const (
	// CannonShotSpeed is muzzle velocity in m/s
	CannonShotSpeed = 15.0

	// Random projectile ranges used on fire
	CannonMassMin   = 0.5
	CannonMassMax   = 3.0
	CannonRadiusMin = 0.05
	CannonRadiusMax = 0.25
)
