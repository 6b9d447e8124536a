package main

import (
	"context"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"golang.org/x/sync/errgroup"

	"wsprops/iapws"
)

// InputRow is one state to evaluate.
//
//	kind "Tp": x = T, K
//	kind "tp": x = t, degree C
//	kind "ph": x = h, J/kg
//	kind "ps": x = s, J/kg K
type InputRow struct {
	Kind string  `csv:"kind"`
	P    float64 `csv:"p"`
	X    float64 `csv:"x"`
}

func readRows(r io.Reader) ([]InputRow, error) {
	var rows []InputRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return rows, nil
}

func evaluate(lookup *iapws.Lookup, in InputRow) (iapws.State, error) {
	switch in.Kind {
	case "Tp":
		return lookup.PropertiesTp(in.X, in.P)
	case "tp":
		return lookup.PropertiesCelsius(in.X, in.P)
	case "ph":
		return lookup.PropertiesPH(in.P, in.X)
	case "ps":
		return lookup.PropertiesPS(in.P, in.X)
	}
	return iapws.State{}, fmt.Errorf("unknown kind %q", in.Kind)
}

/*
入力行を並列に計算する。

	Args:
	    rows: 入力行
	    workers: 並列数。0 以下なら制限なし
	    strict: true なら最初に失敗した行で中断してエラーを返す

	Returns:
	    入力順の計算結果
*/
func runBatch(ctx context.Context, lookup *iapws.Lookup, rows []InputRow, workers int, strict bool) (*Recorder, error) {
	rec := NewRecorder(len(rows))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := evaluate(lookup, row)
			if err != nil && strict {
				return fmt.Errorf("row %d (%s p=%g x=%g): %w", i+1, row.Kind, row.P, row.X, err)
			}
			rec.Record(i, row, st, err)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rec, nil
}
