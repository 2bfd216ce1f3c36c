package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendora/Agendora-BookingService/pkg/types"
)

func TestNormalize_FlatListOnly(t *testing.T) {
	raw := Raw{
		Slots: []string{"10:00", "09:30", "09:00", "10:30"},
	}

	resp := Normalize(raw)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, resp.Slots)
	assert.Equal(t, []string{"09", "10"}, resp.Hours)
	assert.Equal(t, map[string][]string{
		"09": {"00", "30"},
		"10": {"00", "30"},
	}, resp.MinutesByHour)
}

func TestNormalize_MapIsSourceOfTruth(t *testing.T) {
	// When the map is present, the flat list is ignored even when the two
	// disagree.
	raw := Raw{
		Slots: []string{"08:00", "08:30"},
		MinutesByHour: map[string][]string{
			"10": {"15", "45"},
		},
	}

	resp := Normalize(raw)

	assert.Equal(t, []string{"10:15", "10:45"}, resp.Slots)
	assert.Equal(t, []string{"10"}, resp.Hours)
	assert.Equal(t, map[string][]string{"10": {"15", "45"}}, resp.MinutesByHour)
}

func TestNormalize_PadsSloppyComponents(t *testing.T) {
	raw := Raw{
		Slots: []string{"9:5", "9:30", " 10:00"},
	}

	resp := Normalize(raw)

	assert.Equal(t, []string{"09:05", "09:30", "10:00"}, resp.Slots)
	assert.Equal(t, []string{"09", "10"}, resp.Hours)
}

func TestNormalize_DropsMalformedTokens(t *testing.T) {
	raw := Raw{
		Slots: []string{"09:00", "garbage", "25:00", "10:75", "10", "", "10:30"},
	}

	resp := Normalize(raw)

	assert.Equal(t, []string{"09:00", "10:30"}, resp.Slots)
}

func TestNormalize_MapWithSloppyKeysAndDuplicates(t *testing.T) {
	raw := Raw{
		MinutesByHour: map[string][]string{
			"9":  {"0", "30", "30"},
			"14": {"15"},
			"xx": {"00"},
			"10": {"99"},
		},
	}

	resp := Normalize(raw)

	// The "10" hour loses its only minute and disappears entirely.
	assert.Equal(t, []string{"09:00", "09:30", "14:15"}, resp.Slots)
	assert.Equal(t, []string{"09", "14"}, resp.Hours)
	assert.NotContains(t, resp.MinutesByHour, "10")
}

func TestNormalize_EmptyInput(t *testing.T) {
	resp := Normalize(Raw{})

	assert.Empty(t, resp.Slots)
	assert.Empty(t, resp.Hours)
	assert.Empty(t, resp.MinutesByHour)
	assert.True(t, resp.IsEmpty())

	// Even the empty response is well-formed: non-nil views
	assert.NotNil(t, resp.Slots)
	assert.NotNil(t, resp.Hours)
	assert.NotNil(t, resp.MinutesByHour)
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := Raw{
		Slots: []string{"9:5", "14:30", "8:00", "14:00"},
	}

	first := Normalize(raw)
	second := Normalize(first.AsRaw())

	assert.Equal(t, first, second)
}

func TestNormalize_CrossViewConsistency(t *testing.T) {
	raw := Raw{
		MinutesByHour: map[string][]string{
			"11": {"30", "00"},
			"09": {"45"},
			"16": {"00", "20", "40"},
		},
	}

	resp := Normalize(raw)

	// Slots must be exactly the flattening of MinutesByHour in Hours order
	flattened := make([]string, 0)
	for _, hour := range resp.Hours {
		require.Contains(t, resp.MinutesByHour, hour)
		for _, minute := range resp.MinutesByHour[hour] {
			flattened = append(flattened, hour+":"+minute)
		}
	}
	assert.Equal(t, resp.Slots, flattened)
}

func TestFromSlots(t *testing.T) {
	slots := []types.TimeString{"09:00", "09:30", "11:00"}

	resp := FromSlots(slots)

	assert.Equal(t, []string{"09:00", "09:30", "11:00"}, resp.Slots)
	assert.Equal(t, []string{"09", "11"}, resp.Hours)
	assert.Equal(t, map[string][]string{
		"09": {"00", "30"},
		"11": {"00"},
	}, resp.MinutesByHour)
}
