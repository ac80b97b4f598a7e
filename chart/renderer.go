package chart

import "github.com/bitmark-inc/covid-chart/schema"

type HoverFunc func(HoverEvent)

// Renderer - interface of a chart drawing backend
type Renderer interface {
	Render(ds schema.ChartDataset, ext schema.Extents) error
	OnHover(fn HoverFunc)
}
