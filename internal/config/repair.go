package config

// The classifier commits to a uniformly numeric or uniformly textual shape.
// A payload mixing label rows with numeric rows therefore lands in the string
// branch whole. The repair pass re-scans string vectors and matrices and
// upgrades the parts that are actually numeric. It is a pure stage: the input
// mapping is not mutated, and repaired shapes are never re-touched, so the
// pass is idempotent.

func repairMapping(m Mapping) Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		switch t := v.(type) {
		case StrVec:
			out[k] = repairStrVec(t)
		case StrMat:
			out[k] = repairStrMat(t)
		default:
			out[k] = v
		}
	}
	return out
}

// repairStrMat upgrades rows atomically: a row becomes a numeric vector only
// if the whole row converts, otherwise it stays a string row.
func repairStrMat(m StrMat) Value {
	rows := make([]Value, len(m))
	numeric := 0
	for i, row := range m {
		if nv, ok := repairRow(row); ok {
			rows[i] = nv
			numeric++
			continue
		}
		rows[i] = StrVec(row)
	}
	if numeric == 0 {
		return m
	}
	if numeric == len(m) {
		out := make(NumMat, len(rows))
		for i, r := range rows {
			out[i] = r.(NumVec)
		}
		return out
	}
	return Rows(rows)
}

// repairRow converts a string row to floats. If exactly one element resists
// element-wise conversion, that element is additionally tried as a
// whitespace-separated numeric run and spliced into the row.
func repairRow(row []string) (NumVec, bool) {
	out := make(NumVec, 0, len(row))
	failed := -1
	for i, el := range row {
		f, ok := parseFloat(el)
		if !ok {
			if failed >= 0 {
				return nil, false
			}
			failed = i
			continue
		}
		out = append(out, f)
	}
	if failed < 0 {
		return out, true
	}
	run, ok := splitFloats(row[failed])
	if !ok {
		return nil, false
	}
	spliced := make(NumVec, 0, len(out)+len(run))
	spliced = append(spliced, out[:failed]...)
	spliced = append(spliced, run...)
	spliced = append(spliced, out[failed:]...)
	return spliced, true
}

// repairStrVec upgrades element-wise: a fully convertible vector becomes a
// numeric vector; otherwise each element is replaced by a number or a numeric
// run where the conversion succeeds, and kept as a string where it does not.
func repairStrVec(v StrVec) Value {
	els := make([]Value, len(v))
	scalars := 0
	changed := false
	for i, s := range v {
		if f, ok := parseFloat(s); ok {
			els[i] = Num(f)
			scalars++
			changed = true
			continue
		}
		if run, ok := splitFloats(s); ok {
			els[i] = NumVec(run)
			changed = true
			continue
		}
		els[i] = Str(s)
	}
	if !changed {
		return v
	}
	if scalars == len(v) {
		out := make(NumVec, len(els))
		for i, el := range els {
			out[i] = float64(el.(Num))
		}
		return out
	}
	return Fields(els)
}
