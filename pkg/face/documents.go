package face

// Documents holds the materialized document of every [Expression].
// It is built once by [NewDocuments] and only read afterwards, so a single
// value can be shared freely, including across goroutines.
type Documents struct {
	byExpr  map[Expression]Document
	configs map[Expression]Config
}

// NewDocuments materializes the document of every expression. Expressions
// that share a configuration share one document string.
func NewDocuments() *Documents {
	d := &Documents{
		byExpr:  make(map[Expression]Document, len(expressionNames)),
		configs: make(map[Expression]Config, len(expressionNames)),
	}
	built := make(map[Config]Document)
	for _, e := range Expressions() {
		cfg := ConfigFor(e)
		doc, ok := built[cfg]
		if !ok {
			doc = cfg.Document()
			built[cfg] = doc
		}
		d.byExpr[e] = doc
		d.configs[e] = cfg
	}
	return d
}

// Get returns the document for e. Unknown expressions fall back to
// [Neutral].
func (d *Documents) Get(e Expression) Document {
	if doc, ok := d.byExpr[e]; ok {
		return doc
	}
	return d.byExpr[Neutral]
}

// Config returns the configuration that produced the document for e.
func (d *Documents) Config(e Expression) Config {
	if cfg, ok := d.configs[e]; ok {
		return cfg
	}
	return d.configs[Neutral]
}

// Len returns the number of distinct documents held.
func (d *Documents) Len() int {
	seen := make(map[Document]struct{}, len(d.byExpr))
	for _, doc := range d.byExpr {
		seen[doc] = struct{}{}
	}
	return len(seen)
}
