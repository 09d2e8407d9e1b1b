package metricskey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	names := map[string]bool{}
	for _, m := range Metrics {
		assert.NotEmpty(t, m.Help, m.Name)
		assert.NotEmpty(t, m.RequiredTags, m.Name)
		assert.False(t, names[m.Name], "duplicate metric: %s", m.Name)
		names[m.Name] = true
	}
	assert.Len(t, names, 2)
}
