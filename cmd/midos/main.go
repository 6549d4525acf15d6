// midos mines the best K subgroups of a binary dataset.
//
// Usage:
//
//	midos run data.txt                         # K and function from the header
//	midos run data.txt.zst -k 20 --function 2  # override the header
//	midos run s3://bucket/data.txt -o s3://bucket/report.json --format json
//	midos run minio://bucket/data.txt --config run.yaml
//	midos version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
