package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/huelib/modifier"
)

func init() {
	logger = log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

func Test_parseAdjustment(t *testing.T) {
	tests := []struct {
		input   string
		t       modifier.Type
		value   int
		wantErr bool
	}{
		{input: "200", t: modifier.Override, value: 200},
		{input: "+20", t: modifier.Increment, value: 20},
		{input: "-35", t: modifier.Decrement, value: 35},
		{input: "255", wantErr: true},
		{input: "bright", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, c := range tests {
		t.Run(c.input, func(t *testing.T) {
			// act
			typ, value, err := parseAdjustment(c.input, 254)

			// assert
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.t, typ)
			assert.Equal(t, c.value, value)
		})
	}
}

func Test_bestMatch(t *testing.T) {
	names := map[string]string{"1": "Kitchen", "2": "Bedroom", "10": "Living room"}

	t.Run("should prefer an exact id", func(t *testing.T) {
		id, err := bestMatch("10", names)
		require.NoError(t, err)
		assert.Equal(t, "10", id)
	})

	t.Run("should match a misspelt name", func(t *testing.T) {
		id, err := bestMatch("kitchn", names)
		require.NoError(t, err)
		assert.Equal(t, "1", id)
	})

	t.Run("should fail when nothing is similar", func(t *testing.T) {
		_, err := bestMatch("garage", names)
		assert.Error(t, err)
	})
}

func Test_levelFromString(t *testing.T) {
	assert.Equal(t, log.DebugLevel, levelFromString("DEBUG"))
	assert.Equal(t, log.WarnLevel, levelFromString("warn"))
	assert.Equal(t, log.InfoLevel, levelFromString(""))
}
