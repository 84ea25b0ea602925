package gallery

import "io"

// Upload is a single incoming file upload. Content must support seeking so
// the full size can be measured before the object is written; multipart
// file parts from net/http satisfy this.
type Upload struct {
	Filename    string
	ContentType string
	Content     io.ReadSeeker
}
