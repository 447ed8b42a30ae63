// Package analysis derives secondary observables from recorded
// magnetization series.
package analysis

import "math"

// Mean returns the arithmetic mean of the series.
func Mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

// Variance returns the population variance of the series.
func Variance(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	mean := Mean(series)
	sum := 0.0
	for _, v := range series {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(series))
}

// Susceptibility estimates the magnetic susceptibility per site from a
// series of total-spin samples:
//
//	χ = (⟨M²⟩ − ⟨M⟩²) / (k_B·T·N)
//
// Returns 0 for an empty series or non-positive temperature.
func Susceptibility(totals []float64, kB, temp float64, sites int) float64 {
	if len(totals) == 0 || temp <= 0 || sites <= 0 {
		return 0
	}
	return Variance(totals) / (kB * temp * float64(sites))
}

// BinderCumulant returns U = 1 − ⟨M⁴⟩ / (3⟨M²⟩²), the fourth-order
// cumulant used to locate the phase transition. Returns 0 when the
// second moment vanishes.
func BinderCumulant(totals []float64) float64 {
	if len(totals) == 0 {
		return 0
	}
	var m2, m4 float64
	for _, m := range totals {
		s := m * m
		m2 += s
		m4 += s * s
	}
	m2 /= float64(len(totals))
	m4 /= float64(len(totals))
	if m2 == 0 {
		return 0
	}
	return 1 - m4/(3*m2*m2)
}

// Autocorrelation returns the normalized autocorrelation function of the
// series up to maxLag. Lag 0 is always 1 for a non-constant series.
func Autocorrelation(series []float64, maxLag int) []float64 {
	n := len(series)
	if n == 0 || maxLag < 0 {
		return nil
	}
	if maxLag >= n {
		maxLag = n - 1
	}

	mean := Mean(series)
	varSum := 0.0
	for _, v := range series {
		d := v - mean
		varSum += d * d
	}

	acf := make([]float64, maxLag+1)
	if varSum == 0 {
		return acf
	}
	for lag := 0; lag <= maxLag; lag++ {
		sum := 0.0
		for i := 0; i < n-lag; i++ {
			sum += (series[i] - mean) * (series[i+lag] - mean)
		}
		acf[lag] = sum / varSum
	}
	return acf
}

// IntegratedAutocorrelationTime estimates τ = 1/2 + Σ ρ(lag), truncating
// the sum at the first non-positive autocorrelation (the standard
// windowing rule for Monte Carlo series).
func IntegratedAutocorrelationTime(series []float64) float64 {
	acf := Autocorrelation(series, len(series)-1)
	if len(acf) == 0 {
		return 0
	}
	tau := 0.5
	for lag := 1; lag < len(acf); lag++ {
		if acf[lag] <= 0 {
			break
		}
		tau += acf[lag]
	}
	if math.IsNaN(tau) {
		return 0
	}
	return tau
}
