package domain

// ChartSpec é a especificação entregue ao colaborador de charting no formato
// esperado pelo Plotly: uma lista de traces mais o layout
type ChartSpec struct {
	Data   []ChartTrace `json:"data"`
	Layout *ChartLayout `json:"layout,omitempty"`
}

type ChartTrace struct {
	Type   string       `json:"type"`
	Mode   string       `json:"mode,omitempty"`
	Name   string       `json:"name,omitempty"`
	X      []string     `json:"x,omitempty"`
	Y      []float64    `json:"y,omitempty"`
	Values []float64    `json:"values,omitempty"`
	Labels []string     `json:"labels,omitempty"`
	Line   *ChartLine   `json:"line,omitempty"`
	Marker *ChartMarker `json:"marker,omitempty"`
}

type ChartLine struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

type ChartMarker struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
}

type ChartLayout struct {
	Title string     `json:"title,omitempty"`
	XAxis *ChartAxis `json:"xaxis,omitempty"`
	YAxis *ChartAxis `json:"yaxis,omitempty"`
}

type ChartAxis struct {
	Title string `json:"title,omitempty"`
}
