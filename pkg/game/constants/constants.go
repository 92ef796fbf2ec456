package constants

const (

	// PlayerSpeed is the horizontal distance a player moves per frame
	PlayerSpeed float64 = 4.0
	// PlayerGravity is added to the player's vertical velocity every frame
	PlayerGravity float64 = 0.25
	// PlayerJumpPower is the upward velocity given by a jump
	PlayerJumpPower float64 = 12.0
	// Player Height
	PlayerHeight float64 = 75.0
	// Player Width
	PlayerWidth float64 = 75.0
	// Player Starting X
	PlayerStartingX float64 = 100.0
	// Player Starting Y
	PlayerStartingY float64 = 200.0

	// GroundLevel is the fraction of the canvas height where the ground surface sits
	GroundLevel float64 = 0.7

	// ObstacleCount is the number of obstacles generated per session
	ObstacleCount int = 5
	// ObstacleWidth is the collision width of an obstacle (the diameter of its leaves)
	ObstacleWidth float64 = 50.0
	// ObstacleTrunkWidth is the drawn width of an obstacle's trunk
	ObstacleTrunkWidth float64 = 20.0
	// ObstacleMinHeight is the minimum obstacle height
	ObstacleMinHeight float64 = 60.0
	// ObstacleMaxHeight is the maximum obstacle height
	ObstacleMaxHeight float64 = 300.0
	// ObstacleMinGap is the minimum horizontal distance between the left edges of consecutive obstacles
	ObstacleMinGap float64 = 100.0
	// ObstacleStartX is the smallest x an obstacle can be placed at
	ObstacleStartX float64 = 200.0
	// ObstacleReservedWidth is the canvas width kept free of random obstacle spread
	ObstacleReservedWidth float64 = 600.0

	// CollectibleSize is the width and height of the collectible
	CollectibleSize float64 = 60.0
	// CollectibleMargin is the horizontal distance kept between the collectible and either canvas edge
	CollectibleMargin float64 = 200.0
	// CollectibleMinLift is the smallest distance between the ground and the collectible's top edge
	CollectibleMinLift float64 = 150.0
	// CollectibleLiftRange is the random extra lift added on top of CollectibleMinLift
	CollectibleLiftRange float64 = 150.0

	// SubSteps is the number of integration and collision passes per frame
	SubSteps int = 5
	// BroadphaseCellSize is the cell size of the collision space
	BroadphaseCellSize int = 16
)
