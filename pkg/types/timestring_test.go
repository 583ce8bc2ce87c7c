package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeString
		wantErr bool
	}{
		{"10:00", "10:00", false},
		{"00:00", "00:00", false},
		{"23:59", "23:59", false},
		{"24:00", "", true},
		{"10:60", "", true},
		{"10", "", true},
		{"10:00:00", "", true},
		{"abc", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_MinutesSinceMidnight(t *testing.T) {
	tests := []struct {
		input TimeString
		want  int
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"10:30", 630},
		{"21:00", 1260},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			got, err := tt.input.MinutesSinceMidnight()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := TimeString("bad").MinutesSinceMidnight()
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	got, err = TimeString("10:30").AddMinutes(-45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:45"), got)

	// Переход через полночь не поддерживается
	_, err = TimeString("23:30").AddMinutes(60)
	require.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("00:30").AddMinutes(-60)
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("18:45:00")))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	require.ErrorIs(t, ts.Scan(42), ErrInvalidTimeString)
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("nonsense").Value()
	require.ErrorIs(t, err, ErrInvalidTimeString)
}
