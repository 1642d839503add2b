package ranking

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// TierWeight define a pontuação e a qualidade (0-1) de um nível de match.
// A qualidade modula os bônus de frequência, recência e padrão temporal.
type TierWeight struct {
	Score   float64 `json:"score"`
	Quality float64 `json:"quality"`
}

// TextWeights define os níveis de match textual, do mais forte ao mais
// fraco. A ordem relativa (exato > prefixo > palavra > substring > path >
// descrição > fuzzy) é contrato do motor; os valores absolutos são
// calibráveis.
type TextWeights struct {
	ExactTitle     TierWeight `json:"exact_title"`
	TitlePrefix    TierWeight `json:"title_prefix"`
	TitleWord      TierWeight `json:"title_word"`
	TitleSubstring TierWeight `json:"title_substring"`
	PathWord       TierWeight `json:"path_word"`
	PathSubstring  TierWeight `json:"path_substring"`
	Description    TierWeight `json:"description"`
	FuzzyTitle     TierWeight `json:"fuzzy_title"`
	FuzzyPath      TierWeight `json:"fuzzy_path"`
}

// SignalWeights define os bônus aplicados sobre o score textual
type SignalWeights struct {
	// Frequência: usage * PerUse, limitado a Cap, ponderado por Weight
	FrequencyPerUse float64 `json:"frequency_per_use"`
	FrequencyCap    float64 `json:"frequency_cap"`
	FrequencyWeight float64 `json:"frequency_weight"`

	// Recência: Max * exp(-horas/HalfLifeDivisor)
	RecencyMax             float64 `json:"recency_max"`
	RecencyHalfLifeDivisor float64 `json:"recency_half_life_divisor"`
	RecencyWeight          float64 `json:"recency_weight"`

	// Padrão temporal: contagens históricas por hora e dia da semana
	HourFactor     float64 `json:"hour_factor"`
	HourCap        float64 `json:"hour_cap"`
	WeekdayFactor  float64 `json:"weekday_factor"`
	WeekdayCap     float64 `json:"weekday_cap"`
	TemporalWeight float64 `json:"temporal_weight"`

	StaticBonus  float64 `json:"static_bonus"`
	DepthPenalty float64 `json:"depth_penalty"`

	// Boost multiplicativo para matches multi-token de alta qualidade
	MultiTokenBoost      float64 `json:"multi_token_boost"`
	MultiTokenQualityMin float64 `json:"multi_token_quality_min"`
}

// ContextWeights define o score de contexto da visão padrão (sem query)
type ContextWeights struct {
	UsageFactor   float64 `json:"usage_factor"`
	RecencyMax    float64 `json:"recency_max"`
	HourFactor    float64 `json:"hour_factor"`
	WeekdayFactor float64 `json:"weekday_factor"`
	StaticBonus   float64 `json:"static_bonus"`
	DepthPenalty  float64 `json:"depth_penalty"`
}

// Weights reúne toda a calibração do motor de ranking
type Weights struct {
	Text    TextWeights    `json:"text"`
	Signal  SignalWeights  `json:"signal"`
	Context ContextWeights `json:"context"`
	// Diferenças de score abaixo de TieTolerance são tratadas como empate
	// e resolvidas por categoria, path e título
	TieTolerance float64 `json:"tie_tolerance"`
}

// CalibrationConfig é a estrutura do arquivo de calibração em JSON
type CalibrationConfig struct {
	Version string  `json:"version"`
	Weights Weights `json:"weights"`
}

// DefaultWeights retorna a calibração padrão do motor.
// Os valores vêm de ajuste empírico sobre o uso real do navegador.
func DefaultWeights() *Weights {
	return &Weights{
		Text: TextWeights{
			ExactTitle:     TierWeight{Score: 1000, Quality: 1.0},
			TitlePrefix:    TierWeight{Score: 800, Quality: 0.9},
			TitleWord:      TierWeight{Score: 600, Quality: 0.8},
			TitleSubstring: TierWeight{Score: 400, Quality: 0.7},
			PathWord:       TierWeight{Score: 300, Quality: 0.6},
			PathSubstring:  TierWeight{Score: 200, Quality: 0.5},
			Description:    TierWeight{Score: 150, Quality: 0.4},
			FuzzyTitle:     TierWeight{Score: 100, Quality: 0.3},
			FuzzyPath:      TierWeight{Score: 50, Quality: 0.2},
		},
		Signal: SignalWeights{
			FrequencyPerUse: 50,
			FrequencyCap:    500,
			FrequencyWeight: 0.8,

			RecencyMax:             300,
			RecencyHalfLifeDivisor: 16, // meia-vida de ~11 horas
			RecencyWeight:          0.7,

			HourFactor:     20,
			HourCap:        100,
			WeekdayFactor:  15,
			WeekdayCap:     100,
			TemporalWeight: 0.5,

			StaticBonus:  50,
			DepthPenalty: 10,

			MultiTokenBoost:      1.2,
			MultiTokenQualityMin: 0.9,
		},
		Context: ContextWeights{
			UsageFactor:   100,
			RecencyMax:    500,
			HourFactor:    50,
			WeekdayFactor: 30,
			StaticBonus:   20,
			DepthPenalty:  5,
		},
		TieTolerance: 0.1,
	}
}

// LoadCalibration carrega pesos de um arquivo JSON de calibração.
// Arquivo ausente ou inválido degrada para os pesos padrão com erro.
// Configurações parciais são mescladas sobre os defaults.
func LoadCalibration(path string) (*Weights, error) {
	if path == "" {
		return DefaultWeights(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Falha ao ler calibração %s, usando defaults: %v", path, err)
		return DefaultWeights(), fmt.Errorf("falha ao ler arquivo de calibração: %w", err)
	}

	var config CalibrationConfig
	if err := json.Unmarshal(data, &config); err != nil {
		log.Printf("Falha ao interpretar calibração %s, usando defaults: %v", path, err)
		return DefaultWeights(), fmt.Errorf("falha ao interpretar calibração: %w", err)
	}

	return MergeCalibration(DefaultWeights(), &config.Weights), nil
}

// MergeCalibration mescla pesos de override sobre uma base; apenas valores
// não-zero do override são aplicados, permitindo calibração parcial
func MergeCalibration(base *Weights, override *Weights) *Weights {
	if base == nil {
		return DefaultWeights()
	}
	if override == nil {
		result := *base
		return &result
	}

	result := *base

	mergeTier := func(dst *TierWeight, src TierWeight) {
		if src.Score != 0 {
			dst.Score = src.Score
		}
		if src.Quality != 0 {
			dst.Quality = src.Quality
		}
	}

	mergeTier(&result.Text.ExactTitle, override.Text.ExactTitle)
	mergeTier(&result.Text.TitlePrefix, override.Text.TitlePrefix)
	mergeTier(&result.Text.TitleWord, override.Text.TitleWord)
	mergeTier(&result.Text.TitleSubstring, override.Text.TitleSubstring)
	mergeTier(&result.Text.PathWord, override.Text.PathWord)
	mergeTier(&result.Text.PathSubstring, override.Text.PathSubstring)
	mergeTier(&result.Text.Description, override.Text.Description)
	mergeTier(&result.Text.FuzzyTitle, override.Text.FuzzyTitle)
	mergeTier(&result.Text.FuzzyPath, override.Text.FuzzyPath)

	mergeFloat := func(dst *float64, src float64) {
		if src != 0 {
			*dst = src
		}
	}

	mergeFloat(&result.Signal.FrequencyPerUse, override.Signal.FrequencyPerUse)
	mergeFloat(&result.Signal.FrequencyCap, override.Signal.FrequencyCap)
	mergeFloat(&result.Signal.FrequencyWeight, override.Signal.FrequencyWeight)
	mergeFloat(&result.Signal.RecencyMax, override.Signal.RecencyMax)
	mergeFloat(&result.Signal.RecencyHalfLifeDivisor, override.Signal.RecencyHalfLifeDivisor)
	mergeFloat(&result.Signal.RecencyWeight, override.Signal.RecencyWeight)
	mergeFloat(&result.Signal.HourFactor, override.Signal.HourFactor)
	mergeFloat(&result.Signal.HourCap, override.Signal.HourCap)
	mergeFloat(&result.Signal.WeekdayFactor, override.Signal.WeekdayFactor)
	mergeFloat(&result.Signal.WeekdayCap, override.Signal.WeekdayCap)
	mergeFloat(&result.Signal.TemporalWeight, override.Signal.TemporalWeight)
	mergeFloat(&result.Signal.StaticBonus, override.Signal.StaticBonus)
	mergeFloat(&result.Signal.DepthPenalty, override.Signal.DepthPenalty)
	mergeFloat(&result.Signal.MultiTokenBoost, override.Signal.MultiTokenBoost)
	mergeFloat(&result.Signal.MultiTokenQualityMin, override.Signal.MultiTokenQualityMin)

	mergeFloat(&result.Context.UsageFactor, override.Context.UsageFactor)
	mergeFloat(&result.Context.RecencyMax, override.Context.RecencyMax)
	mergeFloat(&result.Context.HourFactor, override.Context.HourFactor)
	mergeFloat(&result.Context.WeekdayFactor, override.Context.WeekdayFactor)
	mergeFloat(&result.Context.StaticBonus, override.Context.StaticBonus)
	mergeFloat(&result.Context.DepthPenalty, override.Context.DepthPenalty)

	mergeFloat(&result.TieTolerance, override.TieTolerance)

	return &result
}
