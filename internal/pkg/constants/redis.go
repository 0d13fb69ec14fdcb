package constants

// Redis key formats
const (
	// Fleet board mirror
	KeyFleetBoardGeo        = "fleet:board:geo"         // GEO set of the drivers on the latest board
	KeyFleetBoardGeoStaging = "fleet:board:geo:staging" // Scratch set renamed over KeyFleetBoardGeo
	KeyFleetDriver          = "fleet:driver:%d"         // Format: fleet:driver:{driver_id}
	KeyFleetBoardTS         = "fleet:board:ts"          // Unix millis of the last mirrored snapshot

	// SOS mirror
	KeySOSActive = "sos:active" // JSON list of active alerts
)
