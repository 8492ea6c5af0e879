package dialect

// Dialect renders the engine specific pieces of a statement. Values are never
// rendered into statement text; they always travel as bound parameters.
type Dialect interface {
	QuoteIdentifier(name string) string
	Placeholder(n int) string
	Cast(kind Kind, isArray bool) string
}
