package server

import (
	"fmt"
	"sort"
	"sync"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/rollup"
)

// ChartConfig describes one dashboard chart in a shape the frontend can
// feed straight into Chart.js.
type ChartConfig struct {
	ChartType string    `json:"chartType"`
	XLabel    string    `json:"xLabel"`
	YLabel    string    `json:"yLabel"`
	Labels    []string  `json:"labels"`
	Values    []float64 `json:"values"`
	Title     string    `json:"title"`
	Insights  string    `json:"insights,omitempty"`
}

// ChartJS converts the configuration to Chart.js data and options
// objects.
func (c ChartConfig) ChartJS() (map[string]any, map[string]any) {
	data := map[string]any{
		"labels": c.Labels,
		"datasets": []map[string]any{
			{
				"label":           c.YLabel,
				"data":            c.Values,
				"backgroundColor": "rgba(59, 130, 246, 0.5)",
			},
		},
	}

	options := map[string]any{
		"responsive": true,
		"plugins": map[string]any{
			"title": map[string]any{
				"display": true,
				"text":    c.Title,
			},
		},
		"scales": map[string]any{
			"x": map[string]any{
				"title": map[string]any{
					"display": true,
					"text":    c.XLabel,
				},
			},
			"y": map[string]any{
				"title": map[string]any{
					"display": true,
					"text":    c.YLabel,
				},
			},
		},
	}

	return data, options
}

// ChartBuilder produces a chart configuration from a rollup suite.
type ChartBuilder func(s *rollup.Suite) ChartConfig

var (
	charts = make(map[string]ChartBuilder)
	mu     sync.RWMutex
)

// RegisterChart adds a chart builder to the registry.
func RegisterChart(name string, build ChartBuilder) {
	mu.Lock()
	defer mu.Unlock()
	charts[name] = build
}

// Chart retrieves a chart builder by name.
func Chart(name string) (ChartBuilder, error) {
	mu.RLock()
	defer mu.RUnlock()

	build, ok := charts[name]
	if !ok {
		return nil, fmt.Errorf("unknown chart: %s", name)
	}
	return build, nil
}

// ChartNames returns all registered chart names in sorted order.
func ChartNames() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(charts))
	for name := range charts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
