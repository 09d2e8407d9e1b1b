package jwt_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/effective-security/xjwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "null", jwt.KindNull.String())
	assert.Equal(t, "integer", jwt.KindInteger.String())
	assert.Equal(t, "object", jwt.KindObject.String())
	assert.Equal(t, "kind(42)", jwt.Kind(42).String())
}

func TestValue_Narrowing(t *testing.T) {
	v := jwt.IntValue(12)
	i, ok := v.AsInt()
	assert.True(t, ok)
	assert.Equal(t, 12, i)
	f, ok := v.AsFloat64()
	assert.True(t, ok)
	assert.Equal(t, 12.0, f)
	n, ok := v.AsNumber()
	assert.True(t, ok)
	assert.Equal(t, json.Number("12"), n)
	_, ok = v.AsString()
	assert.False(t, ok)

	v = jwt.FloatValue(1.75)
	_, ok = v.AsInt64()
	assert.False(t, ok, "float is never narrowed to int")
	f32, ok := v.AsFloat32()
	assert.True(t, ok)
	assert.Equal(t, float32(1.75), f32)

	v = jwt.FloatValue(3)
	_, ok = v.AsInt()
	assert.False(t, ok, "integral float is still a float")

	v = jwt.StringValue("12")
	_, ok = v.AsInt()
	assert.False(t, ok)
	_, ok = v.AsNumber()
	assert.False(t, ok)
	s, ok := v.AsString()
	assert.True(t, ok)
	assert.Equal(t, "12", s)

	v = jwt.BoolValue(true)
	b, ok := v.AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	v = jwt.NullValue()
	assert.True(t, v.IsNull())
	_, ok = v.AsBool()
	assert.False(t, ok)
	_, ok = v.AsArray()
	assert.False(t, ok)
	_, ok = v.AsObject()
	assert.False(t, ok)

	var zero jwt.Value
	assert.True(t, zero.IsNull())
	assert.Nil(t, zero.Interface())
}

func TestValue_MaxInt64(t *testing.T) {
	v := jwt.IntValue(math.MaxInt64)
	i, ok := v.AsInt64()
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), i)
}

func TestValue_Copies(t *testing.T) {
	v := jwt.ArrayValue(jwt.StringValue("a"), jwt.ObjectValue(map[string]jwt.Value{"k": jwt.IntValue(1)}))

	items, ok := v.AsArray()
	require.True(t, ok)
	require.Len(t, items, 2)
	items[0] = jwt.StringValue("changed")

	obj, ok := items[1].AsObject()
	require.True(t, ok)
	obj["k"] = jwt.IntValue(2)
	obj["new"] = jwt.NullValue()

	assert.Equal(t, `["a",{"k":1}]`, v.String())
}

func TestValue_Equal(t *testing.T) {
	a := jwt.ObjectValue(map[string]jwt.Value{
		"a": jwt.ArrayValue(jwt.IntValue(1), jwt.FloatValue(2.5), jwt.NullValue()),
		"b": jwt.BoolValue(false),
	})
	b := jwt.ObjectValue(map[string]jwt.Value{
		"b": jwt.BoolValue(false),
		"a": jwt.ArrayValue(jwt.IntValue(1), jwt.FloatValue(2.5), jwt.NullValue()),
	})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(jwt.ObjectValue(nil)))
	assert.False(t, jwt.IntValue(1).Equal(jwt.FloatValue(1)))
	assert.False(t, jwt.StringValue("1").Equal(jwt.IntValue(1)))
	assert.True(t, jwt.NullValue().Equal(jwt.Value{}))
}

func TestValue_JSON(t *testing.T) {
	v := jwt.ObjectValue(map[string]jwt.Value{
		"s": jwt.StringValue("x\"y"),
		"i": jwt.IntValue(-3),
		"f": jwt.FloatValue(1.75),
		"a": jwt.ArrayValue(jwt.BoolValue(true), jwt.NullValue()),
		"o": jwt.ObjectValue(nil),
	})
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"a":[true,null],"f":1.75,"i":-3,"o":{},"s":"x\"y"}`, string(raw))
	assert.Equal(t, string(raw), v.String())

	assert.Equal(t, map[string]any{
		"s": "x\"y",
		"i": int64(-3),
		"f": 1.75,
		"a": []any{true, nil},
		"o": map[string]any{},
	}, v.Interface())

	_, err = jwt.FloatValue(math.Inf(1)).MarshalJSON()
	assert.EqualError(t, err, "unsupported number: +Inf")
	_, err = jwt.FloatValue(math.NaN()).MarshalJSON()
	assert.EqualError(t, err, "unsupported number: NaN")
}
