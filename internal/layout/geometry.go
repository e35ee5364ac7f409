package layout

import (
	"encoding/json"
	"fmt"
	"strings"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/lacriee/prices-tracker/constants"
	"github.com/lacriee/prices-tracker/internal/common"
)

//go:embed layouts.json
var layoutsJSON []byte

//go:embed layouts.schema.json
var layoutsSchemaJSON string

// Band is an inclusive [min,max] horizontal range, serialized as a
// two-element JSON array.
type Band struct {
	Min float64
	Max float64
}

func (b *Band) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	b.Min, b.Max = pair[0], pair[1]
	return nil
}

func (b Band) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{b.Min, b.Max})
}

func (b Band) Contains(x float64) bool { return x >= b.Min && x <= b.Max }

// RoleBands binds a token role to the x bands where it appears, one band
// per document column.
type RoleBands struct {
	Role  string `json:"role"`
	Bands []Band `json:"bands"`
}

// Geometry is the declarative layout calibration for one vendor format.
// Only the fields the vendor's classifier consults are set; everything
// else stays zero. The values are measured from reference documents and
// live in layouts.json so template drift is a config change.
type Geometry struct {
	// row clustering
	YTolerance float64 `json:"y_tolerance,omitempty"`

	// two-column split at a page-width ratio
	ColumnSplitRatio float64 `json:"column_split_ratio,omitempty"`

	// typographic section headers
	SectionFontMin float64 `json:"section_font_min,omitempty"`
	SectionMinX    float64 `json:"section_min_x,omitempty"`
	SectionMinY    float64 `json:"section_min_y,omitempty"`

	// page furniture
	HeaderMaxY float64 `json:"header_max_y,omitempty"`
	FooterMinY float64 `json:"footer_min_y,omitempty"`
	DateBand   *Band   `json:"date_band,omitempty"`
	MinY       float64 `json:"min_y,omitempty"`

	// fixed-x role classification (Hennequin regime)
	Roles []RoleBands `json:"roles,omitempty"`

	// fixed-pixel columns with page-width-relative role thresholds
	// (Laurent-Daniel regime); one entry per column
	Columns        []Band    `json:"columns,omitempty"`
	PricePct       []Band    `json:"price_pct,omitempty"`
	QualityMinPct  []float64 `json:"quality_min_pct,omitempty"`
	CategoryMinPct []float64 `json:"category_min_pct,omitempty"`

	// proximity association (VVQM regime)
	CalibreMaxDist float64 `json:"calibre_max_dist,omitempty"`
}

// RoleFor returns the role whose band contains x, or "" when none does.
func (g *Geometry) RoleFor(x float64) string {
	for _, r := range g.Roles {
		for _, b := range r.Bands {
			if b.Contains(x) {
				return r.Role
			}
		}
	}
	return ""
}

var geometries map[constants.Vendor]*Geometry

func init() {
	var err error
	geometries, err = loadGeometries(layoutsJSON, layoutsSchemaJSON)
	if err != nil {
		panic(fmt.Sprintf("layout: invalid embedded geometry: %v", err))
	}
}

func loadGeometries(doc []byte, schemaSrc string) (map[constants.Vendor]*Geometry, error) {
	schema, err := jsonschema.CompileString("layouts.schema.json", schemaSrc)
	if err != nil {
		return nil, common.WrapError(err, "compiling layout schema")
	}

	var generic any
	if err := json.Unmarshal(doc, &generic); err != nil {
		return nil, common.WrapError(err, "decoding layout config")
	}
	if err := schema.Validate(generic); err != nil {
		return nil, common.WrapError(err, "validating layout config")
	}

	raw := map[string]*Geometry{}
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, common.WrapError(err, "decoding layout config")
	}

	out := make(map[constants.Vendor]*Geometry, len(raw))
	for name, g := range raw {
		vendor, ok := constants.ParseVendor(name)
		if !ok {
			return nil, fmt.Errorf("layout config references unknown vendor %q", name)
		}
		out[vendor] = g
	}
	return out, nil
}

// ForVendor returns the vendor's layout geometry.
func ForVendor(vendor constants.Vendor) (*Geometry, error) {
	g, ok := geometries[vendor]
	if !ok {
		return nil, fmt.Errorf("no layout geometry for vendor %s", strings.ToLower(string(vendor)))
	}
	return g, nil
}
