package ast

import (
	"encoding/json"

	"specdoc/internal/metadata"
	"specdoc/internal/mson"
)

// Document is the parsed specification tree produced by the structural
// parser and progressively enriched before rendering. One conversion
// owns exactly one Document; passes mutate it in place.
type Document struct {
	Version     string       `json:"_version,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Metadata    []MetadataKV `json:"metadata,omitempty"`

	ResourceGroups []*ResourceGroup `json:"resourceGroups"`
	Content        []*ContentNode   `json:"content,omitempty"`

	// Enrichment outputs consumed by the renderer.
	APIMetadata    *metadata.Section         `json:"api_metadata,omitempty"`
	DataStructures map[string]*DataStructure `json:"data_structures,omitempty"`
	ReferenceLinks []*Link                   `json:"reference_links"`
	IsPDF          bool                      `json:"is_PDF"`
}

// MetadataKV is one front-matter pair the structural parser kept.
type MetadataKV struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ResourceGroup struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Resources   []*Resource `json:"resources"`
}

type Resource struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	URITemplate string       `json:"uriTemplate"`
	Parameters  []*Parameter `json:"parameters,omitempty"`
	Actions     []*Action    `json:"actions"`

	ID          string `json:"id,omitempty"`
	IgnoreTOC   bool   `json:"ignoreTOC"`
	CustomCodes any    `json:"custom_codes,omitempty"`
}

type Action struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Method      string           `json:"method"`
	Parameters  []*Parameter     `json:"parameters,omitempty"`
	Attributes  ActionAttributes `json:"attributes"`
	Examples    []*Example       `json:"examples"`

	ID          string `json:"id,omitempty"`
	CustomCodes any    `json:"custom_codes,omitempty"`
}

type ActionAttributes struct {
	URITemplate string `json:"uriTemplate"`
}

type Parameter struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Type        string            `json:"type,omitempty"`
	Required    bool              `json:"required,omitempty"`
	Default     string            `json:"default,omitempty"`
	Example     string            `json:"example,omitempty"`
	Values      []*ParameterValue `json:"values"`
}

// ParameterValue is one enumerated value of a parameter. Description is
// empty until the annotator splices a nested description onto it.
type ParameterValue struct {
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

type Example struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Requests    []*Payload `json:"requests"`
	Responses   []*Payload `json:"responses"`
}

// Payload is a request or response of an example.
type Payload struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Body        string          `json:"body"`
	Content     []*PayloadBlock `json:"content,omitempty"`
}

type PayloadBlock struct {
	Content  string            `json:"content,omitempty"`
	Sections []json.RawMessage `json:"sections,omitempty"`
}

// ContentNode models the parser's generic content tree, of which the
// only consumed part is the "Data Structures" category: a node whose
// children each carry a literal name and a block-description section
// holding the raw member declarations.
type ContentNode struct {
	Name     Literal           `json:"name,omitempty"`
	Sections []*ContentSection `json:"sections,omitempty"`
	Content  []*ContentNode    `json:"content,omitempty"`
}

type ContentSection struct {
	Class   string `json:"class"`
	Content string `json:"content"`
}

// Literal is a name that the parser serializes either as a bare string
// or as {"literal": ...} depending on the node kind.
type Literal struct {
	Literal string `json:"literal"`
}

func (l *Literal) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.Literal = s
		return nil
	}

	var obj struct {
		Literal string `json:"literal"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	l.Literal = obj.Literal
	return nil
}

// DataStructure is the renderer-facing form of one named structure.
type DataStructure struct {
	Attributes []*mson.Property `json:"attributes"`
}

// Link is one reference link collected from descriptions and bodies.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
