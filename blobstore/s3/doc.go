// Package s3 implements blobstore.BlobStore on Amazon S3.
//
// Reads use ranged GetObject requests, so a dataset is streamed without
// buffering the whole object. Writes go through the S3 upload manager.
//
//	store, err := s3.NewStoreFromConfig(ctx, "my-bucket", "datasets/", "")
//	blob, err := store.Open(ctx, "spect.txt.zst")
package s3
