package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"runtime"
	"time"

	"wsprops/iapws"
)

type Config struct {
	Mode       string
	InputPath  string
	OutputPath string
	Workers    int
	Strict     bool

	P      float64 // 圧力, Pa
	T      float64 // 温度, K
	TC     float64 // 温度, degree C
	H      float64 // 比エンタルピー, J/kg
	S      float64 // 比エントロピー, J/kg K
	RH     float64 // 相対湿度, %
	TMin   float64 // 等圧表の下限温度, degree C
	TMax   float64 // 等圧表の上限温度, degree C
	NTable int
}

/*
物性値計算の実行

	Args:
	    cfg: 実行条件
	    out: 出力先
*/
func run(ctx context.Context, cfg Config, out io.Writer) error {
	lookup := iapws.NewLookup()

	switch cfg.Mode {
	case "point":
		st, err := runPoint(lookup, cfg)
		if err != nil {
			return err
		}
		printState(out, st)
		return nil

	case "humid":
		hm, err := runHumid(cfg.TC, cfg.RH, cfg.P)
		if err != nil {
			return err
		}
		printHumid(out, hm)
		return nil

	case "table":
		log.Printf("等圧表の作成開始 p = %g Pa", cfg.P)
		rec, err := runTable(lookup, cfg.P, cfg.TMin, cfg.TMax, cfg.NTable)
		if err != nil {
			return err
		}
		return rec.Save(out)

	case "batch":
		log.Printf("入力ファイルの読み込み開始 `%s`", cfg.InputPath)
		file, err := os.Open(cfg.InputPath)
		if err != nil {
			return err
		}
		defer file.Close()

		rows, err := readRows(file)
		if err != nil {
			return err
		}

		log.Printf("計算開始 %d 行", len(rows))
		rec, err := runBatch(ctx, lookup, rows, cfg.Workers, cfg.Strict)
		if err != nil {
			return err
		}
		if n := rec.Failed(); n > 0 {
			log.Printf("%d 行で計算できませんでした", n)
		}
		return rec.Save(out)
	}

	return fmt.Errorf("unknown mode %q", cfg.Mode)
}

func runPoint(lookup *iapws.Lookup, cfg Config) (iapws.State, error) {
	switch {
	case !math.IsNaN(cfg.T):
		return lookup.PropertiesTp(cfg.T, cfg.P)
	case !math.IsNaN(cfg.TC):
		return lookup.PropertiesCelsius(cfg.TC, cfg.P)
	case !math.IsNaN(cfg.H):
		return lookup.PropertiesPH(cfg.P, cfg.H)
	case !math.IsNaN(cfg.S):
		return lookup.PropertiesPS(cfg.P, cfg.S)
	}
	return iapws.State{}, fmt.Errorf("one of -T, -t, -h, -s is required")
}

func printState(w io.Writer, st iapws.State) {
	fmt.Fprintf(w, "phase: %s\n", st.Phase)
	fmt.Fprintf(w, "T:  %.6f K (%.6f C)\n", st.T, st.Celsius())
	fmt.Fprintf(w, "p:  %.6g Pa\n", st.P)
	fmt.Fprintf(w, "v:  %.9g m3/kg\n", st.V)
	fmt.Fprintf(w, "u:  %.9g J/kg\n", st.U)
	fmt.Fprintf(w, "s:  %.9g J/kg K\n", st.S)
	fmt.Fprintf(w, "h:  %.9g J/kg\n", st.H)
	fmt.Fprintf(w, "cv: %.9g J/kg K\n", st.Cv)
	fmt.Fprintf(w, "cp: %.9g J/kg K\n", st.Cp)
	fmt.Fprintf(w, "w:  %.9g m/s\n", st.W)
	if mu, err := st.Viscosity(); err == nil {
		fmt.Fprintf(w, "mu: %.9g Pa s\n", mu)
	}
}

// parseFlags reads the command line into a Config.
func parseFlags(name string, args []string) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.Mode, "mode", "point", "計算方法 (point, humid, table, batch)")
	fs.StringVar(&cfg.InputPath, "input", "", "batch の入力CSVファイル (kind,p,x)")
	fs.StringVar(&cfg.OutputPath, "output", "", "出力ファイル。省略時は標準出力")
	fs.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "batch の並列数")
	fs.BoolVar(&cfg.Strict, "strict", false, "batch で1行でも失敗したら中断する")

	fs.Float64Var(&cfg.P, "p", 101325, "圧力, Pa")
	fs.Float64Var(&cfg.T, "T", math.NaN(), "温度, K")
	fs.Float64Var(&cfg.TC, "t", math.NaN(), "温度, degree C")
	fs.Float64Var(&cfg.H, "h", math.NaN(), "比エンタルピー, J/kg")
	fs.Float64Var(&cfg.S, "s", math.NaN(), "比エントロピー, J/kg K")
	fs.Float64Var(&cfg.RH, "rh", 50, "humid の相対湿度, %")
	fs.Float64Var(&cfg.TMin, "tmin", 0, "table の下限温度, degree C")
	fs.Float64Var(&cfg.TMax, "tmax", 800, "table の上限温度, degree C")
	fs.IntVar(&cfg.NTable, "n", 81, "table の点数")

	err := fs.Parse(args)
	return cfg, err
}

func main() {
	cfg, err := parseFlags(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		os.Exit(2)
	}

	out := io.Writer(os.Stdout)
	if cfg.OutputPath != "" {
		file, err := os.Create(cfg.OutputPath)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		out = file
	}

	start := time.Now()

	if err := run(context.Background(), cfg, out); err != nil {
		log.Fatal(err)
	}

	log.Printf("elapsed_time: %v", time.Since(start))
}
