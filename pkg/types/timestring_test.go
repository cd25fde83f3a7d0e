package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59", "24:00"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"", "9:30", "09:60", "25:00", "24:01", "09-30", "0930", "morning"}
	for _, s := range invalid {
		assert.Error(t, TimeString(s).Validate(), s)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = TimeString("09:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	// "24:00" - граница суток
	m, err = TimeString("24:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 1440, m)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("23:59").IsBefore("24:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	result, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), result)

	// Ровно до полуночи
	result, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), result)

	// За пределы суток
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
}

func TestTimeString_OnDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	result, err := TimeString("09:30").OnDate(date, loc)
	require.NoError(t, err)

	assert.Equal(t, 2025, result.Year())
	assert.Equal(t, time.June, result.Month())
	assert.Equal(t, 2, result.Day())
	assert.Equal(t, 9, result.Hour())
	assert.Equal(t, 30, result.Minute())
	assert.Equal(t, loc, result.Location())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит как "10:00:00"
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("18:30:00")))
	assert.Equal(t, TimeString("18:30"), ts)
}

func TestTimeString_JSON(t *testing.T) {
	data, err := json.Marshal(TimeString("09:00"))
	require.NoError(t, err)
	assert.Equal(t, `"09:00"`, string(data))

	var ts TimeString
	require.NoError(t, json.Unmarshal([]byte(`"18:30"`), &ts))
	assert.Equal(t, TimeString("18:30"), ts)

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &ts))
}
