// Package blobstore provides a storage abstraction for datasets and reports.
//
// BlobStore is the interface for reading and writing named blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem, reads are memory mapped where supported
//   - MemoryStore: In-memory map, for tests
//   - s3.Store: Amazon S3 with range reads and managed uploads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)   // Open for reading
//	    Put(ctx, name, data) error      // Atomic write
//	}
//
// A Blob is an io.ReaderAt with a known size, so NewReader turns any blob
// into a sequential stream for the dataset parser.
package blobstore
