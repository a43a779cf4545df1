// Package betmath concentra o cálculo puro de valuation de apostas:
// conversão de odds americanas, agregação de parlay, classificação de
// edge/EV e detecção de hedge. Nenhuma função faz I/O; os chamadores
// passam snapshots já materializados.
package betmath

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput indica stake ou odds fora do domínio válido.
// Os handlers HTTP devem traduzir para 400 com a mensagem, nunca ajustar o valor.
var ErrInvalidInput = errors.New("invalid input")

// PotentialReturnCents calcula o retorno potencial (stake + lucro) em cents
// a partir de odds americanas.
//
//	odds > 0: stake + stake*odds/100
//	odds < 0: stake + stake*100/|odds|
//
// Usada na criação E na edição da aposta; o valor persistido é sempre
// recalculado a partir do stake/odds recebidos, nunca reaproveitado.
func PotentialReturnCents(stakeCents int64, american int) (int64, error) {
	if stakeCents <= 0 {
		return 0, fmt.Errorf("%w: stake must be positive, got %d", ErrInvalidInput, stakeCents)
	}
	if american == 0 {
		return 0, fmt.Errorf("%w: american odds cannot be 0", ErrInvalidInput)
	}

	stake := float64(stakeCents)
	var profit float64
	if american > 0 {
		profit = stake * float64(american) / 100.0
	} else {
		profit = stake * 100.0 / float64(-american)
	}
	return stakeCents + int64(math.Round(profit)), nil
}

// AmericanToDecimal converte odds americanas em odds decimais.
// +150 -> 2.50, -150 -> 1.67
func AmericanToDecimal(american int) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("%w: american odds cannot be 0", ErrInvalidInput)
	}
	if american > 0 {
		return float64(american)/100.0 + 1.0, nil
	}
	return 100.0/float64(-american) + 1.0, nil
}

// ImpliedProbability retorna a probabilidade implícita (0-1) de odds americanas.
func ImpliedProbability(american int) (float64, error) {
	dec, err := AmericanToDecimal(american)
	if err != nil {
		return 0, err
	}
	return 1.0 / dec, nil
}
