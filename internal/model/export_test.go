package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalExport(t *testing.T) {
	t.Run("records are listed with a count", func(t *testing.T) {
		data, err := MarshalExport([]Student{
			New("S1", "Alice", 20, "CS"),
			New("S2", "Bob", 21, "Math"),
		})
		require.NoError(t, err)

		var doc ExportDocument
		require.NoError(t, yaml.Unmarshal(data, &doc))
		assert.Equal(t, 2, doc.Count)
		require.Len(t, doc.Students, 2)
		assert.Equal(t, "Bob", doc.Students[1].Name)

		assert.Contains(t, string(data), "roll_number: S1")
	})

	t.Run("empty set encodes an empty list", func(t *testing.T) {
		data, err := MarshalExport(nil)
		require.NoError(t, err)
		assert.Contains(t, string(data), "count: 0")
		assert.Contains(t, string(data), "students: []")
	})
}
