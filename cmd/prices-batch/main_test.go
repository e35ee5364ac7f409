package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacriee/prices-tracker/constants"
	processor "github.com/lacriee/prices-tracker/internal/pipeline"
)

func writeTempDoc(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
	return path
}

func TestRunJobsFailureStaysLocal(t *testing.T) {
	jobs := []job{
		{vendor: constants.VendorAudierne, path: writeTempDoc(t, "bad.tokens.json")},
		{vendor: constants.VendorHennequin, path: writeTempDoc(t, "good.tokens.json")},
	}

	failed := make(chan struct{})
	do := func(ctx context.Context, vendor constants.Vendor, filename string, content []byte, fallbackDate string) (*processor.Result, error) {
		if vendor == constants.VendorAudierne {
			close(failed)
			return nil, errors.New("unreadable document")
		}
		// Wait until the sibling has failed, then make sure that failure
		// did not cancel our context.
		<-failed
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return &processor.Result{RowsLoaded: 3}, nil
	}

	results, err := runJobs(context.Background(), do, jobs, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreadable document")
	assert.Nil(t, results[0])
	require.NotNil(t, results[1], "a sibling failure must not abort this document")
	assert.Equal(t, 3, results[1].RowsLoaded)
}

func TestRunJobsMissingFile(t *testing.T) {
	jobs := []job{{vendor: constants.VendorVVQM, path: filepath.Join(t.TempDir(), "absent.json")}}

	do := func(ctx context.Context, vendor constants.Vendor, filename string, content []byte, fallbackDate string) (*processor.Result, error) {
		t.Error("process should not run for an unreadable file")
		return nil, nil
	}

	results, err := runJobs(context.Background(), do, jobs, "")
	require.Error(t, err)
	assert.Nil(t, results[0])
}
