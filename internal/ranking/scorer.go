package ranking

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-navegador-search/internal/models"
)

// ModuleDeprecated é o rótulo de módulo que marca nós descontinuados
const ModuleDeprecated = "deprecado"

// IsDeprecated verifica se um nó é descontinuado: módulo normalizado igual
// a "deprecado" ou status "legacy". Nós descontinuados sempre ordenam
// depois dos ativos, independente do score.
func IsDeprecated(node *models.Node) bool {
	if node == nil {
		return false
	}
	if node.Status == models.StatusLegacy {
		return true
	}
	return strings.TrimSpace(Normalize(node.Module)) == ModuleDeprecated
}

// Token é um token de query com o padrão de fronteira de palavra
// pré-compilado. Metacaracteres vêm escapados, então a compilação nunca
// falha por entrada do usuário; ainda assim um padrão nulo degrada para
// match por substring.
type Token struct {
	Text string
	word *regexp.Regexp
}

// CompileTokens prepara tokens normalizados para o scoring
func CompileTokens(tokens []string) []Token {
	compiled := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(t) + `\b`)
		if err != nil {
			pattern = nil
		}
		compiled = append(compiled, Token{Text: t, word: pattern})
	}
	return compiled
}

func (t Token) matchesWord(text string) bool {
	if t.word == nil {
		return false
	}
	return t.word.MatchString(text)
}

// Scorer calcula scores de relevância para nós do catálogo
type Scorer struct {
	weights *Weights
	freq    *models.FrequencyData
}

// NewScorer cria um scorer com a calibração e o snapshot de frequência dados
func NewScorer(weights *Weights, freq *models.FrequencyData) *Scorer {
	if weights == nil {
		weights = DefaultWeights()
	}
	if freq == nil {
		freq = models.NewFrequencyData()
	}
	return &Scorer{weights: weights, freq: freq}
}

// ScoreNode calcula o score de um nó contra os tokens da query.
// Todo token precisa casar em algum nível (título, path ou descrição);
// basta um token sem match para o nó ser rejeitado com score zero.
func (s *Scorer) ScoreNode(tokens []Token, node *models.Node, now time.Time) float64 {
	if node == nil || len(tokens) == 0 {
		return 0
	}

	title := node.TitleLower
	if title == "" {
		title = Normalize(node.Title)
	}
	tag := node.TagLower
	if tag == "" && len(node.Tag) > 0 {
		tag = Normalize(strings.Join(node.Tag, " "))
	}
	description := Normalize(node.Description)

	w := s.weights
	textScore := 0.0
	matchQuality := 0.0

	for _, token := range tokens {
		var tier TierWeight

		switch {
		case title == token.Text:
			tier = w.Text.ExactTitle
		case strings.HasPrefix(title, token.Text):
			tier = w.Text.TitlePrefix
		case token.matchesWord(title):
			tier = w.Text.TitleWord
		case strings.Contains(title, token.Text):
			tier = w.Text.TitleSubstring
		case token.matchesWord(tag):
			tier = w.Text.PathWord
		case strings.Contains(tag, token.Text):
			tier = w.Text.PathSubstring
		case strings.Contains(description, token.Text):
			tier = w.Text.Description
		case fuzzyIncludes(title, token.Text):
			tier = w.Text.FuzzyTitle
		case fuzzyIncludes(tag, token.Text):
			tier = w.Text.FuzzyPath
		default:
			return 0
		}

		textScore += tier.Score
		matchQuality += tier.Quality
	}

	matchQuality /= float64(len(tokens))

	frequencyScore := math.Min(w.Signal.FrequencyCap, float64(node.Usage)*w.Signal.FrequencyPerUse)

	recencyScore := 0.0
	if lastAccess, ok := s.freq.LastAccess(node.ID); ok {
		hoursSince := now.Sub(lastAccess).Hours()
		recencyScore = w.Signal.RecencyMax * math.Exp(-hoursSince/w.Signal.RecencyHalfLifeDivisor)
	}

	temporalScore := 0.0
	if hourCount := s.freq.HourCount(node.ID, now.Hour()); hourCount > 0 {
		temporalScore += math.Min(w.Signal.HourCap, float64(hourCount)*w.Signal.HourFactor)
	}
	if dayCount := s.freq.WeekdayCount(node.ID, now.Weekday()); dayCount > 0 {
		temporalScore += math.Min(w.Signal.WeekdayCap, float64(dayCount)*w.Signal.WeekdayFactor)
	}

	staticBonus := 0.0
	if node.Source == models.SourceStatic {
		staticBonus = w.Signal.StaticBonus
	}
	depthPenalty := float64(node.Depth) * w.Signal.DepthPenalty

	finalScore := textScore +
		frequencyScore*matchQuality*w.Signal.FrequencyWeight +
		recencyScore*matchQuality*w.Signal.RecencyWeight +
		temporalScore*matchQuality*w.Signal.TemporalWeight +
		staticBonus -
		depthPenalty

	// Matches multi-token limpos valem mais que coincidências de um token só
	if matchQuality >= w.Signal.MultiTokenQualityMin && len(tokens) > 1 {
		finalScore *= w.Signal.MultiTokenBoost
	}

	return math.Max(0, finalScore)
}

// ContextScore calcula o score de contexto da visão padrão, sem query:
// uso acumulado, recência, padrão temporal, procedência e profundidade.
func (s *Scorer) ContextScore(node *models.Node, now time.Time) float64 {
	if node == nil {
		return 0
	}

	w := s.weights.Context
	score := float64(node.Usage) * w.UsageFactor

	if lastAccess, ok := s.freq.LastAccess(node.ID); ok {
		hoursSince := now.Sub(lastAccess).Hours()
		score += w.RecencyMax * math.Exp(-hoursSince/s.weights.Signal.RecencyHalfLifeDivisor)
	}

	if hourCount := s.freq.HourCount(node.ID, now.Hour()); hourCount > 0 {
		score += float64(hourCount) * w.HourFactor
	}
	if dayCount := s.freq.WeekdayCount(node.ID, now.Weekday()); dayCount > 0 {
		score += float64(dayCount) * w.WeekdayFactor
	}

	if node.Source == models.SourceStatic {
		score += w.StaticBonus
	}

	score -= float64(node.Depth) * w.DepthPenalty
	return score
}

// fuzzyIncludes verifica se needle aparece como subsequência de haystack.
// Needles de até 2 caracteres exigem substring literal. Para needles
// maiores, os caracteres devem aparecer em ordem; cada salto de mais de 2
// posições entre matches consecutivos conta como lacuna, e o match só vale
// com no máximo floor(len/2) lacunas, o que evita coincidências esparsas.
func fuzzyIncludes(haystack, needle string) bool {
	if len(needle) <= 2 {
		return strings.Contains(haystack, needle)
	}

	needleRunes := []rune(needle)
	index := 0
	lastMatchIndex := -1
	gapCount := 0

	for i, r := range []rune(haystack) {
		if r != needleRunes[index] {
			continue
		}
		if lastMatchIndex >= 0 && i-lastMatchIndex > 2 {
			gapCount++
		}
		lastMatchIndex = i
		index++
		if index == len(needleRunes) {
			return gapCount <= len(needleRunes)/2
		}
	}

	return false
}
