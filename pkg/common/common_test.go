package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesPreserveInsertionOrder(t *testing.T) {
	attrs := NewAttributes("diet", "清淡饮食", "care", "定期测量血压", "age_limit", "18-65")
	attrs.Set("diet", "低盐")

	keys := make([]string, 0, attrs.Len())
	for _, a := range attrs {
		keys = append(keys, a.Key)
	}
	assert.Equal(t, []string{"diet", "care", "age_limit"}, keys)

	v, ok := attrs.Get("diet")
	require.True(t, ok)
	assert.Equal(t, "低盐", v)
}

func TestAttributesSetIfAbsent(t *testing.T) {
	attrs := NewAttributes("price", "10000-30000/月")

	assert.False(t, attrs.SetIfAbsent("price", "0"))
	assert.True(t, attrs.SetIfAbsent("rating", "5"))

	v, _ := attrs.Get("price")
	assert.Equal(t, "10000-30000/月", v)
	assert.Equal(t, 2, attrs.Len())
}

func TestNewAttributesIgnoresDanglingKey(t *testing.T) {
	attrs := NewAttributes("a", "1", "b")
	assert.Equal(t, Attributes{{Key: "a", Value: "1"}}, attrs)
}

func TestAttributesClone(t *testing.T) {
	var empty Attributes
	assert.Nil(t, empty.Clone())

	orig := NewAttributes("k", "v")
	cp := orig.Clone()
	cp.Set("k", "changed")

	v, _ := orig.Get("k")
	assert.Equal(t, "v", v)
}

func TestNodePlaceholder(t *testing.T) {
	assert.True(t, Node{ID: "高血压"}.Placeholder())
	assert.False(t, Node{ID: "高血压", Type: "Disease"}.Placeholder())
}
