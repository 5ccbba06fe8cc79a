package qcmdpc

import "math"

// lnBino returns ln(C(n, t)), the log of the binomial coefficient, via the
// log-gamma identity C(n,t) = n! / (t! (n-t)!), the same one the original's
// lnbino uses (lgamma, for the same reason: n and t get large enough that
// the factorials themselves would overflow). ln(C(n,0)) = ln(C(n,n)) = 0 is
// special-cased rather than computed, since lgamma(1) is exactly 0 anyway
// but the original guards it explicitly and this mirrors that.
func lnBino(n, t float64) float64 {
	if t == 0 || n == t {
		return 0
	}
	g1, _ := math.Lgamma(n + 1)
	g2, _ := math.Lgamma(t + 1)
	g3, _ := math.Lgamma(n - t + 1)
	return g1 - g2 - g3
}

// xlny returns x*ln(y), defined as 0 when x is 0 regardless of y, matching
// the original's xlny guard against log(0) in terms that are multiplied by
// a zero coefficient anyway.
func xlny(x, y float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log(y)
}

// lnBinomialPMF returns ln(C(n,k) p^k q^(n-k)). p and q are taken
// separately rather than as (p, 1-p) because the original's callers
// sometimes pass distinct p/q parameters for the two counter hypotheses.
func lnBinomialPMF(n, k, p, q float64) float64 {
	return lnBino(n, k) + xlny(k, p) + xlny(n-k, q)
}

// euhLog is the original's Euh_log: the log-probability that exactly i of
// the t unsatisfied parity checks come from the "wrong" side of the error
// support, under the uniform model used to estimate X below.
func euhLog(blockWeight, blockLength int32, t, i float64) float64 {
	n1 := float64(Index) * float64(blockWeight)
	n2 := float64(Index) * float64(blockLength-blockWeight)
	n3 := float64(Index) * float64(blockLength)
	return lnBino(n1, i) + lnBino(n2, t-i) - lnBino(n3, t)
}

// iks is the original's iks/X(t): sum((i-1)*E_i, i odd), normalized by the
// same sum without the (i-1) weight, truncated at i=10 since euhLog decays
// fast enough that higher terms are negligible for the parameter ranges
// this package targets.
func iks(blockWeight, blockLength int32, t float64) float64 {
	limit := int(t)
	var x, denom float64
	for i := 1; i < 10 && i < limit; i += 2 {
		e := math.Exp(euhLog(blockWeight, blockLength, t, float64(i)))
		x += float64(i-1) * e
		denom += e
	}
	if denom == 0 {
		return 0
	}
	return x / denom
}

// countersC0 estimates the probability that a bit's counter comes from the
// "syndrome bit is 0" hypothesis, given syndrome weight s, remaining-error
// estimate t, and the correction term x = iks(t)*s.
func countersC0(blockWeight, blockLength int32, s, t, x float64) float64 {
	return ((float64(Index)*float64(blockWeight)-1)*s - x) / (float64(Index)*float64(blockLength) - t) / float64(blockWeight)
}

// countersC1 estimates the same probability under the "syndrome bit is 1"
// hypothesis.
func countersC1(blockWeight int32, s, t, x float64) float64 {
	return (s + x) / t / float64(blockWeight)
}

// ComputeThreshold picks the per-iteration flip threshold from a binomial
// model of the counters distribution, exactly reproducing the original's
// compute_threshold decision ladder. syndromeWeight is the current
// syndrome's Hamming weight; remainingError is an estimate of how many
// true errors are still uncorrected (ERROR_WEIGHT - len(flip list), clamped
// to at least 1 by the caller).
//
//   - if the "bit is 1" hypothesis is at least as likely as "bit is 0"
//     everywhere in range (p >= 1 || p > q), the threshold is the full
//     block weight: nothing short of unanimous agreement is trusted;
//   - otherwise walk the threshold down from blockWeight+1 while the
//     cumulative-tail comparison between the two hypotheses still favors a
//     higher threshold, then back off by one (the last value that still
//     passed), floored at (blockWeight+1)/2.
func ComputeThreshold(blockWeight, blockLength, syndromeWeight, remainingError int32) int32 {
	s := float64(syndromeWeight)
	t := float64(remainingError)
	x := iks(blockWeight, blockLength, t) * s
	p := countersC0(blockWeight, blockLength, s, t, x)
	q := countersC1(blockWeight, s, t, x)

	w := blockWeight
	floor := (w + 1) / 2
	n := float64(Index) * float64(blockLength)

	if p >= 1 || p > q {
		return w
	}

	threshold := w + 1
	if q >= 1 {
		for {
			threshold--
			diff := -math.Exp(lnBinomialPMF(float64(w), float64(threshold), p, 1-p))*(n-t) + 1
			if !(diff >= 0 && threshold > floor) {
				break
			}
		}
	} else {
		for {
			threshold--
			diff := -math.Exp(lnBinomialPMF(float64(w), float64(threshold), p, 1-p))*(n-t) +
				math.Exp(lnBinomialPMF(float64(w), float64(threshold), q, 1-q))*t
			if !(diff >= 0 && threshold > floor) {
				break
			}
		}
	}

	if threshold < w {
		return threshold + 1
	}
	return w
}
