package api

import (
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/microcosm-cc/bluemonday"

	"github.com/polygongallery/certification/internal/models"
	"github.com/polygongallery/certification/internal/upload"
)

// sanitizePolicy strips any markup from user-entered text before it reaches
// the stores.
var sanitizePolicy = bluemonday.StrictPolicy()

func sanitize(s string) string {
	return sanitizePolicy.Sanitize(s)
}

func sanitizePayload(p *models.SubmissionPayload) {
	p.Artist.FullName = sanitize(p.Artist.FullName)
	p.Artist.Email = sanitize(p.Artist.Email)
	p.Artist.Country = sanitize(p.Artist.Country)
	for i := range p.Artworks {
		p.Artworks[i].Title = sanitize(p.Artworks[i].Title)
		p.Artworks[i].Medium = sanitize(p.Artworks[i].Medium)
		p.Artworks[i].Dimensions = sanitize(p.Artworks[i].Dimensions)
		p.Artworks[i].Year = sanitize(p.Artworks[i].Year)
	}
}

// blobFromFileHeader adapts a multipart part into a reopenable blob, so a
// failed transfer can restart from the beginning of the part.
func blobFromFileHeader(fh *multipart.FileHeader) upload.Blob {
	return upload.Blob{
		Filename: filepath.Base(fh.Filename),
		Size:     fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
