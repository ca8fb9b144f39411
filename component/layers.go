package component

// Collision layers. Each is a single bit so masks can combine them.
const (
	LayerPlayer     uint32 = 1 << 0
	LayerEnemy      uint32 = 1 << 1
	LayerObstacle   uint32 = 1 << 2
	LayerProjectile uint32 = 1 << 3
	LayerPowerup    uint32 = 1 << 4
)

// MaskAll matches every layer.
const MaskAll uint32 = 0xFFFFFFFF

var layerNames = map[string]uint32{
	"player":     LayerPlayer,
	"enemy":      LayerEnemy,
	"obstacle":   LayerObstacle,
	"projectile": LayerProjectile,
	"powerup":    LayerPowerup,
	"all":        MaskAll,
}

// LayerByName resolves a layer name to its bit. Unknown names return ok=false.
func LayerByName(name string) (uint32, bool) {
	v, ok := layerNames[name]
	return v, ok
}
