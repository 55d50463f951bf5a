package fixtures

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"hrdash/internal/domain/hr"
	"hrdash/internal/domain/metrics"
)

//go:embed sample.yaml
var sample []byte

// Load reads a YAML dataset from path, or the embedded sample when path is empty.
// The dataset is rejected unless every record passes validation and every payslip reconciles.
func Load(path string) (hr.Dataset, error) {
	if path == "" {
		return Decode(bytes.NewReader(sample))
	}
	f, err := os.Open(path)
	if err != nil {
		return hr.Dataset{}, fmt.Errorf("fixtures: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (hr.Dataset, error) {
	var ds hr.Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return hr.Dataset{}, fmt.Errorf("fixtures: decode: %w", err)
	}
	if err := errors.Join(ds.Validate(), metrics.ReconcilePayroll(ds.Payroll)); err != nil {
		return hr.Dataset{}, fmt.Errorf("fixtures: %w", err)
	}
	return ds, nil
}

// Store serves a fixed dataset. It satisfies hr.StoreAPI.
type Store struct {
	ds hr.Dataset
}

func NewStore(ds hr.Dataset) *Store {
	return &Store{ds: ds}
}

func (s *Store) Snapshot(ctx context.Context) (hr.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return hr.Dataset{}, err
	}
	return s.ds, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}
