package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOfDay(t *testing.T) {
	assert.True(t, TimeOfDay{}.IsEmpty())
	assert.False(t, TimeOfDay{}.IsComplete())
	assert.False(t, TimeOfDay{Hour: "13", Minute: "00", Period: "PM"}.IsComplete())
	assert.False(t, TimeOfDay{Hour: "12", Minute: "60", Period: "PM"}.IsComplete())
	assert.False(t, TimeOfDay{Hour: "12", Minute: "00", Period: "noon"}.IsComplete())
	assert.Equal(t, "12:00 AM", TimeOfDay{Hour: "12", Minute: "0", Period: "am"}.String())
	assert.Equal(t, "", TimeOfDay{Hour: "12"}.String())

	assert.True(t, CheckOptionalTime(TimeOfDay{}))
	assert.False(t, CheckOptionalTime(TimeOfDay{Minute: "15"}))
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("7:30 pm")
	require.NoError(t, err)
	assert.Equal(t, "07:30 PM", tod.String())

	for _, bad := range []string{"", "7:30", "19:30 PM", "7 PM", "ab:cd AM"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, bad)
	}
}
