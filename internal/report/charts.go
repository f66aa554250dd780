package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/wikilex/wikilex/internal/model"
)

// ChartsWriter renders the survey results as a single HTML page with three
// chart sections: one word cloud per topic built from its matched words, a
// bar chart of match counts, and a stacked bar chart of match counts
// against total word counts with percentage labels.
type ChartsWriter struct {
	baseWriter
}

// NewChartsWriter creates a ChartsWriter that outputs to the given writer.
func NewChartsWriter(output io.Writer) *ChartsWriter {
	return &ChartsWriter{
		baseWriter: newBaseWriter(output),
	}
}

// countingWriter tracks bytes written so Write can report them.
type countingWriter struct {
	w io.Writer
	n int
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += n
	return n, err
}

// Write renders the chart page.
func (w *ChartsWriter) Write(results *model.Results) (int, error) {
	page := components.NewPage()
	page.PageTitle = "Keyword Survey Charts"

	for _, topic := range results.Topics() {
		page.AddCharts(w.wordCloud(topic, results))
	}
	page.AddCharts(w.matchBar(results))
	page.AddCharts(w.stackedBar(results))

	cw := &countingWriter{w: w.output}
	if err := page.Render(cw); err != nil {
		return cw.n, fmt.Errorf("render charts: %w", err)
	}
	return cw.n, nil
}

// wordCloud builds one topic's word cloud from its matched-word
// frequencies. Words appear in first-encounter order so the rendering is
// deterministic for a given aggregate.
func (w *ChartsWriter) wordCloud(topic string, results *model.Results) *charts.WordCloud {
	agg, _ := results.Get(topic)

	freq := make(map[string]int)
	var order []string
	for _, word := range agg.MatchedWords {
		if _, seen := freq[word]; !seen {
			order = append(order, word)
		}
		freq[word]++
	}

	data := make([]opts.WordCloudData, 0, len(order))
	for _, word := range order {
		data = append(data, opts.WordCloudData{Name: word, Value: freq[word]})
	}

	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: topic}),
	)
	wc.AddSeries("matches", data,
		charts.WithWorldCloudChartOpts(opts.WordCloudChart{
			SizeRange: []float32{14, 64},
			Shape:     "circle",
		}),
	)
	return wc
}

// matchBar builds the bar chart of match counts per topic with the count
// displayed above each bar.
func (w *ChartsWriter) matchBar(results *model.Results) *charts.Bar {
	topics := results.Topics()
	values := make([]opts.BarData, 0, len(topics))
	for _, topic := range topics {
		agg, _ := results.Get(topic)
		values = append(values, opts.BarData{
			Value: agg.MatchCount,
			Label: &opts.Label{
				Show:     opts.Bool(true),
				Position: "top",
			},
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Match Counts per Topic"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Match Count (# of words)"}),
	)
	bar.SetXAxis(topics).AddSeries("Match Count", values)
	return bar
}

// stackedBar builds the stacked bar chart of match count versus total word
// count, labelling each topic with its match percentage. A topic with zero
// total words is labelled 0.00% rather than failing the division.
func (w *ChartsWriter) stackedBar(results *model.Results) *charts.Bar {
	topics := results.Topics()
	totals := make([]opts.BarData, 0, len(topics))
	matches := make([]opts.BarData, 0, len(topics))
	for _, topic := range topics {
		agg, _ := results.Get(topic)
		totals = append(totals, opts.BarData{Value: agg.TotalWordCount})
		matches = append(matches, opts.BarData{
			Value: agg.MatchCount,
			Label: &opts.Label{
				Show:      opts.Bool(true),
				Position:  "top",
				Formatter: fmt.Sprintf("%.2f%%", agg.MatchRate()),
			},
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Match Counts and Percentages per Topic"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Counts (# of words)"}),
	)
	bar.SetXAxis(topics).
		AddSeries("Total Word Count", totals, charts.WithBarChartOpts(opts.BarChart{Stack: "counts"})).
		AddSeries("Match Count", matches, charts.WithBarChartOpts(opts.BarChart{Stack: "counts"}))
	return bar
}
