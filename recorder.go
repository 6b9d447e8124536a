package main

import (
	"io"
	"math"

	"github.com/gocarina/gocsv"

	"wsprops/iapws"
)

// Row is one line of the result CSV.
type Row struct {
	Kind  string  `csv:"kind"`
	X     float64 `csv:"x"`
	T     float64 `csv:"T_K"`
	P     float64 `csv:"p_Pa"`
	V     float64 `csv:"v_m3_kg"`
	Rho   float64 `csv:"rho_kg_m3"`
	U     float64 `csv:"u_J_kg"`
	S     float64 `csv:"s_J_kgK"`
	H     float64 `csv:"h_J_kg"`
	Cv    float64 `csv:"cv_J_kgK"`
	Cp    float64 `csv:"cp_J_kgK"`
	W     float64 `csv:"w_m_s"`
	Mu    float64 `csv:"mu_Pa_s"`
	Phase string  `csv:"phase"`
	Error string  `csv:"error"`
}

// Recorder holds one result row per input, in input order.
// Record may be called concurrently for distinct indices.
type Recorder struct {
	rows []Row
}

func NewRecorder(n int) *Recorder {
	return &Recorder{rows: make([]Row, n)}
}

/*
計算結果を記録する。

	Args:
	    i: 行番号
	    in: 入力
	    st: 計算結果
	    err: 計算エラー。nil でなければ st は使わない
*/
func (r *Recorder) Record(i int, in InputRow, st iapws.State, err error) {
	row := Row{Kind: in.Kind, X: in.X, P: in.P, Mu: math.NaN()}
	if err != nil {
		row.Error = err.Error()
		r.rows[i] = row
		return
	}

	row.T = st.T
	row.P = st.P
	row.V = st.V
	row.Rho = st.Density()
	row.U = st.U
	row.S = st.S
	row.H = st.H
	row.Cv = st.Cv
	row.Cp = st.Cp
	row.W = st.W
	row.Phase = st.Phase.String()

	if mu, err := st.Viscosity(); err == nil {
		row.Mu = mu
	}

	r.rows[i] = row
}

func (r *Recorder) Rows() []Row {
	return r.rows
}

// Failed returns the number of rows recorded with an error.
func (r *Recorder) Failed() int {
	n := 0
	for _, row := range r.rows {
		if row.Error != "" {
			n++
		}
	}
	return n
}

// Column returns one property over all successful rows.
func (r *Recorder) Column(get func(Row) float64) []float64 {
	col := make([]float64, 0, len(r.rows))
	for _, row := range r.rows {
		if row.Error == "" {
			col = append(col, get(row))
		}
	}
	return col
}

func (r *Recorder) Save(w io.Writer) error {
	return gocsv.Marshal(&r.rows, w)
}
