package datadir

import (
	"context"
	"fmt"
)

// ColumnarTestData returns the columnar fixture corpus directory, by
// default `testdata/columnar` under the repository root. The default
// can be overridden with the QUIVER_TEST_DATA environment variable.
//
// Panics when the directory cannot be found: tests that depend on the
// corpus are meaningless without it.
//
// Example:
//
//	testdata := datadir.ColumnarTestData(ctx)
//	csv := filepath.Join(testdata, "aggregate_100.csv")
func ColumnarTestData(ctx context.Context) string {
	dir, err := Resolve(ctx, "QUIVER_TEST_DATA", "testdata/columnar")
	if err != nil {
		panic(fmt.Sprintf("failed to get columnar data dir: %v", err))
	}
	return dir
}

// ParquetTestData returns the parquet fixture corpus directory, by
// default `testdata/parquet` under the repository root. The default can
// be overridden with the PARQUET_TEST_DATA environment variable.
//
// Panics when the directory cannot be found.
func ParquetTestData(ctx context.Context) string {
	dir, err := Resolve(ctx, "PARQUET_TEST_DATA", "testdata/parquet")
	if err != nil {
		panic(fmt.Sprintf("failed to get parquet data dir: %v", err))
	}
	return dir
}
