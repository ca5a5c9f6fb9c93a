package export

// File is the delivery contract for an export: the host surface (CLI file
// write or HTTP attachment response) must hand the user a file with exactly
// this name, media type, and byte-for-byte content.
type File struct {
	Filename  string
	Content   string
	MediaType string
}

// CSVFile wraps delimited-text content in the delivery contract.
func CSVFile(filename, content string) File {
	return File{Filename: filename, Content: content, MediaType: MediaTypeCSV}
}

// HTMLFile wraps an HTML document in the delivery contract.
func HTMLFile(filename, content string) File {
	return File{Filename: filename, Content: content, MediaType: MediaTypeHTML}
}
