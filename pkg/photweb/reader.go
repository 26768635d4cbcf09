package photweb

// Reader reads a file at path into a web.
type Reader interface {
	Read(path string) (*Web, error)
}

// Writer writes a web to a file at path.
type Writer interface {
	Write(web *Web, path string) error
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(path string) (*Web, error)

// Read calls f(path).
func (f ReaderFunc) Read(path string) (*Web, error) { return f(path) }

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(web *Web, path string) error

// Write calls f(web, path).
func (f WriterFunc) Write(web *Web, path string) error { return f(web, path) }
