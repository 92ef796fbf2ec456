package kinematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStep(t *testing.T) {
	tests := []struct {
		name         string
		position     float64
		velocity     float64
		acceleration float64
		time         float64
		wantPosition float64
		wantVelocity float64
	}{
		{
			name:         "at rest under gravity",
			position:     10,
			velocity:     0,
			acceleration: 0.25,
			time:         1,
			wantPosition: 10,
			wantVelocity: 0.25,
		},
		{
			name:         "rising under gravity",
			position:     100,
			velocity:     -12,
			acceleration: 0.25,
			time:         1,
			wantPosition: 88,
			wantVelocity: -11.75,
		},
		{
			name:         "fractional step",
			position:     0,
			velocity:     5,
			acceleration: 0.25,
			time:         0.5,
			wantPosition: 2.5,
			wantVelocity: 5.125,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPosition, gotVelocity := Step(tt.position, tt.velocity, tt.acceleration, tt.time)
			assert.InDelta(t, tt.wantPosition, gotPosition, 1e-9)
			assert.InDelta(t, tt.wantVelocity, gotVelocity, 1e-9)
		})
	}
}
