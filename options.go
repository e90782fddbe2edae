package quill

// ConvertOptions holds configuration for Markdown to DOCX conversion.
type ConvertOptions struct {
	// Document properties
	title  string
	author string
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		title:  "", // no title paragraph unless set
		author: "",
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		title:  o.title,
		author: o.author,
	}
}
