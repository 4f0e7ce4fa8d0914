package patch

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name     Field[string] `json:"name"`
	Duration Field[int]    `json:"duration"`
	Notes    Field[string] `json:"notes"`
	When     Field[time.Time] `json:"when"`
}

func TestFieldOmitted(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

	assert.False(t, p.Name.Present())
	assert.False(t, p.Name.Null())
	_, ok := p.Name.Value()
	assert.False(t, ok)
}

func TestFieldExplicitNull(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"notes": null}`), &p))

	assert.True(t, p.Notes.Present())
	assert.True(t, p.Notes.Null())
	assert.Nil(t, p.Notes.Ptr())
	assert.False(t, p.Name.Present())
}

func TestFieldSet(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Science Fair", "duration": 4}`), &p))

	name, ok := p.Name.Value()
	require.True(t, ok)
	assert.Equal(t, "Science Fair", name)

	duration, ok := p.Duration.Value()
	require.True(t, ok)
	assert.Equal(t, 4, duration)

	require.NotNil(t, p.Name.Ptr())
	assert.Equal(t, "Science Fair", *p.Name.Ptr())
}

func TestFieldTime(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"when": "2024-06-01T10:00:00Z"}`), &p))

	when, ok := p.When.Value()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), when)
}

func TestFieldReuseAfterNull(t *testing.T) {
	var f Field[string]
	require.NoError(t, json.Unmarshal([]byte(`"x"`), &f))
	require.NoError(t, json.Unmarshal([]byte(`null`), &f))
	assert.True(t, f.Null())
	_, ok := f.Value()
	assert.False(t, ok)
}

func TestFieldMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		Name  Field[string] `json:"name"`
		Notes Field[string] `json:"notes"`
	}{Name: Set("CS"), Notes: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"CS","notes":null}`, string(out))
}
