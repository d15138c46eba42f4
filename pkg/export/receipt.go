package export

// Field is a single labelled value on a receipt.
type Field struct {
	Label string
	Value string
}

// Receipt is the printable summary of a submitted application. Fields render as a
// two-column table; Sections render as headed free-text blocks.
type Receipt struct {
	Title    string
	Fields   []Field
	Sections []Field
}

// Renderer turns a receipt into a downloadable document.
type Renderer interface {
	Render(r Receipt) ([]byte, error)
	ContentType() string
	Extension() string
}
