package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "0 mi", FormatDistance(0))
	assert.Equal(t, "999 mi", FormatDistance(999.9))
	assert.Equal(t, "238.9 K mi", FormatDistance(238_900))
	assert.Equal(t, "140.00 M mi", FormatDistance(140_000_000))
	assert.Equal(t, "1.0000 ly", FormatDistance(distInterstellar))
	assert.Equal(t, "2.5000 ly", FormatDistance(distInterstellar*2.5))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "5s", FormatDuration(4.2))
	assert.Equal(t, "59s", FormatDuration(59))
	assert.Equal(t, "1m", FormatDuration(60))
	assert.Equal(t, "2m", FormatDuration(61))
	assert.Equal(t, "1h", FormatDuration(3600))
	assert.Equal(t, "24h", FormatDuration(86_399))
	assert.Equal(t, "2d", FormatDuration(100_000))
}

func TestTimeToMilestone(t *testing.T) {
	assert.Equal(t, "Reached", TimeToMilestone(distMoon, distMoon, 120))
	assert.Equal(t, "Never", TimeToMilestone(0, distMoon, 0))

	// 1200 mi remaining at 120 speed is 100 seconds of travel.
	assert.Equal(t, "2m", TimeToMilestone(0, 1200, 120))
	assert.Equal(t, "10s", TimeToMilestone(0, 120, 120))
}
