package gcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"cloud.google.com/go/storage"

	"github.com/polygongallery/certification/internal/upload"
)

// Uploader streams binary objects into a Cloud Storage bucket, reporting
// transfer progress as bytes move. It implements upload.Uploader.
type Uploader struct {
	client *storage.Client
	bucket string
}

// NewUploader creates a storage client bound to the given bucket.
func NewUploader(ctx context.Context, bucket string) (*Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket must be provided to create an uploader")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &Uploader{client: client, bucket: bucket}, nil
}

// Close releases the underlying storage client.
func (u *Uploader) Close() error {
	return u.client.Close()
}

// Upload writes the blob to objectName and returns the object's public URL.
// Progress is reported as bytesTransferred/totalBytes*100 through onProgress.
// Transient failures are retried with doubled backoff, reopening the source
// for each attempt.
func (u *Uploader) Upload(ctx context.Context, objectName string, blob upload.Blob, onProgress func(float64)) (string, error) {
	const maxRetries = 4
	backoff := 1 * time.Second
	var lastErr error

	for i := 0; i < maxRetries; i++ {
		err := u.uploadOnce(ctx, objectName, blob, onProgress)
		if err == nil {
			return u.objectURL(objectName), nil
		}

		lastErr = err
		slog.Warn(
			"Upload failed, will retry.",
			"gcsObject", objectName,
			"attempt", i+1,
			"maxRetries", maxRetries,
			"backoff", backoff.String(),
			"error", err,
		)

		select {
		case <-time.After(backoff):
			backoff *= 2
		case <-ctx.Done():
			slog.Error("Context cancelled during backoff. Aborting retries.", "gcsObject", objectName, "error", ctx.Err())
			return "", ctx.Err()
		}
	}
	slog.Error("Upload failed after all retries.", "gcsObject", objectName, "error", lastErr)
	return "", fmt.Errorf("upload for %s failed after all retries: %w", objectName, lastErr)
}

func (u *Uploader) uploadOnce(ctx context.Context, objectName string, blob upload.Blob, onProgress func(float64)) error {
	source, err := blob.Open()
	if err != nil {
		return fmt.Errorf("could not open source for %s: %w", blob.Filename, err)
	}
	defer source.Close()

	writeCtx, cancel := context.WithTimeout(ctx, time.Second*50)
	defer cancel()

	gcsWriter := u.client.Bucket(u.bucket).Object(objectName).NewWriter(writeCtx)

	counted := &progressReader{r: source, total: blob.Size, onProgress: onProgress}
	if _, err := io.Copy(gcsWriter, counted); err != nil {
		_ = gcsWriter.Close()
		return fmt.Errorf("io.Copy to GCS failed: %w", err)
	}

	if err := gcsWriter.Close(); err != nil {
		return fmt.Errorf("failed to close GCS writer (finalize upload): %w", err)
	}
	return nil
}

// objectURL returns the public retrieval URL for a stored object. The bucket
// grants public read; signed URLs are not needed here.
func (u *Uploader) objectURL(objectName string) string {
	loc := url.URL{
		Scheme: "https",
		Host:   "storage.googleapis.com",
		Path:   "/" + u.bucket + "/" + objectName,
	}
	return loc.String()
}

// progressReader counts bytes as they pass through and reports the running
// percentage of the total.
type progressReader struct {
	r           io.Reader
	total       int64
	transferred int64
	onProgress  func(float64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.transferred += int64(n)
		if p.onProgress != nil && p.total > 0 {
			p.onProgress(float64(p.transferred) / float64(p.total) * 100)
		}
	}
	return n, err
}
