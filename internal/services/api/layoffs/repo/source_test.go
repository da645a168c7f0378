package repo

import (
	"testing"

	"layoffs/internal/platform/config"
	perr "layoffs/internal/platform/errors"
	"layoffs/internal/platform/store"
)

func TestSourceConfigFrom(t *testing.T) {
	t.Setenv("LAYOFFS_DATA_SOURCE", "file")
	t.Setenv("LAYOFFS_DATA_FILE", "/tmp/l.json")
	sc := SourceConfigFrom(config.New().Prefix("LAYOFFS_DATA_"))
	if sc.Kind != SourceFile || sc.File != "/tmp/l.json" || sc.Table != DefaultTable {
		t.Fatalf("config = %+v", sc)
	}
}

func TestLoader_Kinds(t *testing.T) {
	st := &store.Store{PG: &fakePG{}, CH: &fakeCH{}}
	cases := []struct {
		sc   SourceConfig
		name string
	}{
		{SourceConfig{}, "embedded"},
		{SourceConfig{Kind: SourceFile, File: "x.json"}, "file:x.json"},
		{SourceConfig{Kind: SourcePG, Table: "layoffs"}, "pg:layoffs"},
		{SourceConfig{Kind: SourceClickhouse, Table: "events"}, "clickhouse:events"},
	}
	for _, tc := range cases {
		l, err := Loader(tc.sc, st)
		if err != nil {
			t.Fatalf("%+v: %v", tc.sc, err)
		}
		if l.Name() != tc.name {
			t.Fatalf("name = %q, want %q", l.Name(), tc.name)
		}
	}
}

func TestLoader_Errors(t *testing.T) {
	cases := []struct {
		sc   SourceConfig
		st   *store.Store
		code perr.ErrorCode
	}{
		{SourceConfig{Kind: SourcePG}, nil, perr.ErrorCodeUnavailable},
		{SourceConfig{Kind: SourceClickhouse}, &store.Store{}, perr.ErrorCodeUnavailable},
		{SourceConfig{Kind: SourcePG, Table: "x;y"}, &store.Store{PG: &fakePG{}}, perr.ErrorCodeInvalidArgument},
		{SourceConfig{Kind: "s3"}, nil, perr.ErrorCodeInvalidArgument},
	}
	for _, tc := range cases {
		if _, err := Loader(tc.sc, tc.st); !perr.IsCode(err, tc.code) {
			t.Fatalf("%+v: err = %v", tc.sc, err)
		}
	}
}
