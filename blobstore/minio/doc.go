// Package minio provides a BlobStore implementation using the MinIO client.
//
// It works with MinIO and other S3-compatible storage systems like Ceph,
// SeaweedFS and Garage, without pulling in the AWS SDK.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "datasets/")
//	m, err := midos.Load(ctx, store, "spect.txt.gz")
//
// NewStoreFromEnv builds the client from MINIO_ENDPOINT, MINIO_ACCESS_KEY,
// MINIO_SECRET_KEY and MINIO_SECURE.
package minio
