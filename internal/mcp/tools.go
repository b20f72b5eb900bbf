package mcp

import (
	"github.com/google/jsonschema-go/jsonschema"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// seriesKinds enumerates the chart series the get_series tool can build.
var seriesKinds = []interface{}{
	"cumulative_xp",
	"cumulative_count",
	"rolling_xp",
	"rolling_attainment",
	"week_xp",
	"week_count",
	"week_attainment",
}

var ingestReportTool = &sdk.Tool{
	Name:        "ingest_report",
	Description: "Parse a pasted Math Academy activity-log export and add its records to the working set.",
	InputSchema: &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"text": {
				Type:        "string",
				Description: "Raw activity-log text, including date headers.",
			},
			"replace": {
				Type:        "boolean",
				Description: "Discard previously ingested records first.",
			},
		},
		Required: []string{"text"},
	},
}

var getSnapshotTool = &sdk.Tool{
	Name:        "get_snapshot",
	Description: "Compute the full statistics snapshot over every ingested record: totals, outcome partition, success rate, highlight days, and daily aggregates.",
	InputSchema: &jsonschema.Schema{
		Type:       "object",
		Properties: map[string]*jsonschema.Schema{},
	},
}

var getSeriesTool = &sdk.Tool{
	Name:        "get_series",
	Description: "Build a chart-ready time series over the ingested records.",
	InputSchema: &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"kind": {
				Type:        "string",
				Enum:        seriesKinds,
				Description: "Which series to build.",
			},
			"windowDays": {
				Type:        "integer",
				Description: "Trailing window size for rolling series. Defaults to 7.",
			},
		},
		Required: []string{"kind"},
	},
}
