package upload

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateImageID produces a new image identifier for a photo of the given
// entity. The id is generated client-side — no server round-trip — and is
// unique in practice through the millisecond timestamp plus a six-digit
// random suffix: slipway_<entityId>_<timestamp>_<random6>.
func GenerateImageID(entityID string) string {
	return fmt.Sprintf("slipway_%s_%d_%06d", entityID, time.Now().UnixMilli(), rand.Intn(1000000))
}
