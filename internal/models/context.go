package models

import "time"

// RankContext carrega as opções de uma chamada de ranking.
// Campos ausentes apenas desabilitam o comportamento correspondente:
// sem CacheKey não há cache para a chamada, sem Now o motor usa o
// provedor de instante configurado.
type RankContext struct {
	// CacheEligible indica se o resultado pode ser servido/gravado em cache
	CacheEligible bool
	// CacheKey é a chave composta categoria::query (ver BuildCacheKey)
	CacheKey string
	// CacheVersion é a versão do catálogo; entradas com versão diferente
	// são descartadas no lookup
	CacheVersion int64
	// Now fixa o instante de referência da chamada (zero = provedor do motor)
	Now time.Time
}

// EffectiveNow resolve o instante de referência da chamada
func (c *RankContext) EffectiveNow(fallback func() time.Time) time.Time {
	if c != nil && !c.Now.IsZero() {
		return c.Now
	}
	return fallback()
}
