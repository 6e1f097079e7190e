package parameter

// Target random ranges
const (
	TargetMassMin        = 0.2
	TargetMassMax        = 2.5
	TargetRadiusMin      = 0.08
	TargetRadiusMax      = 0.4
	TargetHorizSpeedMin  = 0.5
	TargetHorizSpeedMax  = 3.0
	TargetDefaultCount   = 6
	TargetAreaCenterX    = 10.0
	TargetAreaCenterY    = 2.0
	TargetAreaCenterZ    = 10.0
	TargetAreaSizeX      = 20.0
	TargetAreaSizeY      = 6.0
	TargetAreaSizeZ      = 20.0
	TargetMinSpawnHeight = 0.5
)

// Target behaviour limits
const (
	// TargetZoneRadius is the default wander radius around the spawn center
	TargetZoneRadius = 12.0

	// TargetMinZoneRadius floors the wander radius
	TargetMinZoneRadius = 5.0

	// TargetMaxSpeed is the default horizontal speed cap
	TargetMaxSpeed = 3.0

	// TargetMinMaxSpeed floors the speed cap
	TargetMinMaxSpeed = 0.5

	// TargetMinMass and TargetMinRadius floor target body params
	TargetMinMass   = 1e-4
	TargetMinRadius = 1e-3

	// TargetReturnJitter is the random lateral component added when steering back into the zone
	TargetReturnJitter = 0.3

	// TargetReturnSpeedFactor scales max speed on the return heading
	TargetReturnSpeedFactor = 0.8
)

// Target contacts
const (
	// TargetRestitution is the bounce factor between touching targets
	TargetRestitution = 0.8

	// ContactMargin is extra separation applied when pushing overlapping spheres apart
	ContactMargin = 1e-3
)
