package simulation

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/KirkDiggler/otsim/internal/models"
)

// estimate returns the observed proportion with its binomial standard error
// and Wilson score interval
func estimate(successes, n int64, confidence float64) models.Estimate {
	if n <= 0 {
		return models.Estimate{}
	}

	nf := float64(n)
	p := float64(successes) / nf
	z := distuv.UnitNormal.Quantile(1 - (1-confidence)/2)
	z2 := z * z

	denom := 1 + z2/nf
	center := (p + z2/(2*nf)) / denom
	half := z * math.Sqrt(p*(1-p)/nf+z2/(4*nf*nf)) / denom

	e := models.Estimate{
		Rate:   p,
		StdErr: math.Sqrt(p * (1 - p) / nf),
		Lower:  math.Max(0, center-half),
		Upper:  math.Min(1, center+half),
	}
	// the endpoints are exact at the edges; center-half cancels to rounding noise
	if successes == 0 {
		e.Lower = 0
	}
	if successes == n {
		e.Upper = 1
	}
	return e
}

// summarize turns a pairing's tally into reported rates
func summarize(pairing *models.Pairing, tally models.SimulationTally, confidence float64) *models.PairingResult {
	games := tally.Games()
	result := &models.PairingResult{
		Pairing:   *pairing,
		Tally:     tally,
		FirstWin:  estimate(tally.FirstWins, games, confidence),
		SecondWin: estimate(tally.SecondWins, games, confidence),
		Tie:       estimate(tally.Ties, games, confidence),
	}
	if games > 0 {
		result.MeanPossessions = float64(tally.Possessions) / float64(games)
		result.SuddenDeathRate = float64(tally.SuddenDeathGames) / float64(games)
	}
	return result
}
