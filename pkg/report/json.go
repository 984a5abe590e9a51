package report

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/dkoosis/innostat/pkg/status"
)

// JSONVersion is the schema version of the JSON output.
const JSONVersion = "1.0"

// JSON renders the catalog as structured JSON for automation.
type JSON struct {
	opts Options
}

// NewJSON creates a JSON renderer.
func NewJSON(opts Options) *JSON {
	return &JSON{opts: opts}
}

type jsonOutput struct {
	Version  string              `json:"version"`
	Origin   string              `json:"origin,omitempty"`
	Slots    map[string]jsonSlot `json:"slots"`
	Sections []string            `json:"sections"`
	Derived  jsonDerived         `json:"derived"`
}

type jsonSlot struct {
	Cardinality status.Cardinality `json:"cardinality"`
	Values      []string           `json:"values"`
}

type jsonDerived struct {
	UnflushedKB *float64          `json:"unflushed_kb,omitempty"`
	Rows        *status.RowCounts `json:"rows,omitempty"`
}

// Render formats present slots, the emitted section titles, and derived values.
func (j *JSON) Render(cat *status.Catalog) string {
	log := j.opts.logger()
	out := jsonOutput{
		Version: JSONVersion,
		Origin:  cat.Origin(),
		Slots:   make(map[string]jsonSlot),
	}

	for _, s := range cat.Slots() {
		if s.Present() {
			out.Slots[s.Name] = jsonSlot{Cardinality: s.Cardinality, Values: s.Values}
		}
	}
	for _, s := range Sections(cat, log) {
		out.Sections = append(out.Sections, s.Title)
	}

	if kb, ok, err := Unflushed(cat); ok {
		out.Derived.UnflushedKB = &kb
	} else if err != nil {
		log.Debug("omitting unflushed_kb", zap.Error(err))
	}
	if rows, ok := cat.Rows(); ok {
		out.Derived.Rows = &rows
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
