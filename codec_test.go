package dlist_test

import (
	"encoding/json"
	"testing"

	"github.com/graxinc/dlist"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestList_JSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(dlist.New(1, 2, 3))
	require.NoError(t, err)
	require.Equal(t, "[1,2,3]", string(b))

	b, err = json.Marshal(dlist.New[int]())
	require.NoError(t, err)
	require.Equal(t, "[]", string(b))

	l := dlist.New(0)
	require.NoError(t, json.Unmarshal([]byte("[1,2]"), l))
	checkList(t, l, 0, 1, 2)

	require.Error(t, json.Unmarshal([]byte(`{"a":1}`), l))
	checkList(t, l, 0, 1, 2)
}

func TestList_JSON_field(t *testing.T) {
	t.Parallel()

	type doc struct {
		Items *dlist.List[string] `json:"items"`
	}

	b, err := json.Marshal(doc{dlist.New("a", "b")})
	require.NoError(t, err)
	require.Equal(t, `{"items":["a","b"]}`, string(b))

	var got doc
	require.NoError(t, json.Unmarshal(b, &got))
	checkList(t, got.Items, "a", "b")
}

func TestList_YAML(t *testing.T) {
	t.Parallel()

	b, err := yaml.Marshal(dlist.New("a", "b"))
	require.NoError(t, err)
	require.Equal(t, "- a\n- b\n", string(b))

	l := dlist.New(0)
	require.NoError(t, yaml.Unmarshal([]byte("[3, 4]"), l))
	checkList(t, l, 0, 3, 4)

	require.Error(t, yaml.Unmarshal([]byte("a: b"), l))
	checkList(t, l, 0, 3, 4)
}
