package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadPreservesInsertionOrder(t *testing.T) {
	p := NewPayload().
		Set("zeta", StringValue("z")).
		Set("alpha", IntValue(1)).
		Set("mid", BoolValue(true)).
		Set("alpha", IntValue(2))

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"z","alpha":2,"mid":true}`, string(b))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, p.Keys())
}

func TestPayloadUnmarshalKeepsSourceOrder(t *testing.T) {
	src := `{"b":null,"a":{"y":1.5,"x":"s"},"c":false}`
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(src), &p))

	assert.Equal(t, []string{"b", "a", "c"}, p.Keys())
	nested, ok := p.Get("a")
	require.True(t, ok)
	m, ok := nested.Map()
	require.True(t, ok)
	assert.Equal(t, []string{"y", "x"}, m.Keys())

	out, err := json.Marshal(&p)
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestPayloadRejectsArrays(t *testing.T) {
	var p Payload
	err := json.Unmarshal([]byte(`{"list":[1,2]}`), &p)
	assert.ErrorIs(t, err, ErrUnsupportedPayloadValue)

	err = json.Unmarshal([]byte(`"text"`), &p)
	assert.Error(t, err)
}

func TestPayloadScanAndValue(t *testing.T) {
	p := NewPayload().Set("application_id", IntValue(42))
	v, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"application_id":42}`, v)

	var scanned Payload
	require.NoError(t, scanned.Scan([]byte(v.(string))))
	assert.True(t, p.Equal(&scanned))

	var empty Payload
	require.NoError(t, empty.Scan(nil))
	assert.Equal(t, 0, empty.Len())

	var nilPayload *Payload
	nv, err := nilPayload.Value()
	require.NoError(t, err)
	assert.Nil(t, nv)
}

func TestPayloadDelete(t *testing.T) {
	p := NewPayload().Set("a", NullValue()).Set("b", NullValue())
	p.Delete("a")
	p.Delete("missing")
	assert.Equal(t, []string{"b"}, p.Keys())
}
