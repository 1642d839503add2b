package ranking

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultWeightsHierarquiaDosNiveis(t *testing.T) {
	w := DefaultWeights()

	tiers := []struct {
		name string
		tier TierWeight
	}{
		{"exact_title", w.Text.ExactTitle},
		{"title_prefix", w.Text.TitlePrefix},
		{"title_word", w.Text.TitleWord},
		{"title_substring", w.Text.TitleSubstring},
		{"path_word", w.Text.PathWord},
		{"path_substring", w.Text.PathSubstring},
		{"description", w.Text.Description},
		{"fuzzy_title", w.Text.FuzzyTitle},
		{"fuzzy_path", w.Text.FuzzyPath},
	}

	for i := 1; i < len(tiers); i++ {
		prev, cur := tiers[i-1], tiers[i]
		if cur.tier.Score >= prev.tier.Score {
			t.Errorf("nível %s (%v) deveria pontuar abaixo de %s (%v)",
				cur.name, cur.tier.Score, prev.name, prev.tier.Score)
		}
		if cur.tier.Quality >= prev.tier.Quality {
			t.Errorf("nível %s (%v) deveria ter qualidade abaixo de %s (%v)",
				cur.name, cur.tier.Quality, prev.name, prev.tier.Quality)
		}
	}

	if w.TieTolerance != 0.1 {
		t.Errorf("TieTolerance = %v, want 0.1", w.TieTolerance)
	}
}

func TestMergeCalibration(t *testing.T) {
	base := DefaultWeights()
	override := &Weights{}
	override.Text.ExactTitle.Score = 2000
	override.Signal.DepthPenalty = 25
	override.TieTolerance = 0.5

	merged := MergeCalibration(base, override)

	if merged.Text.ExactTitle.Score != 2000 {
		t.Errorf("ExactTitle.Score = %v, want 2000", merged.Text.ExactTitle.Score)
	}
	if merged.Text.ExactTitle.Quality != 1.0 {
		t.Errorf("ExactTitle.Quality = %v, want 1.0 (não sobrescrito)", merged.Text.ExactTitle.Quality)
	}
	if merged.Signal.DepthPenalty != 25 {
		t.Errorf("DepthPenalty = %v, want 25", merged.Signal.DepthPenalty)
	}
	if merged.TieTolerance != 0.5 {
		t.Errorf("TieTolerance = %v, want 0.5", merged.TieTolerance)
	}

	// Campos não mencionados mantêm o default
	if merged.Signal.FrequencyCap != 500 {
		t.Errorf("FrequencyCap = %v, want 500", merged.Signal.FrequencyCap)
	}
	// A base original não é alterada
	if base.Text.ExactTitle.Score != 1000 {
		t.Errorf("base mutada: ExactTitle.Score = %v, want 1000", base.Text.ExactTitle.Score)
	}
}

func TestLoadCalibration(t *testing.T) {
	t.Run("caminho vazio usa defaults", func(t *testing.T) {
		w, err := LoadCalibration("")
		if err != nil {
			t.Fatalf("LoadCalibration(\"\") retornou erro: %v", err)
		}
		if w.Text.ExactTitle.Score != 1000 {
			t.Errorf("ExactTitle.Score = %v, want 1000", w.Text.ExactTitle.Score)
		}
	})

	t.Run("arquivo válido mescla sobre defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "calibration.json")
		content := `{"version": "2026-03", "weights": {"text": {"exact_title": {"score": 1500}}, "signal": {"static_bonus": 80}}}`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		w, err := LoadCalibration(path)
		if err != nil {
			t.Fatalf("LoadCalibration retornou erro: %v", err)
		}
		if w.Text.ExactTitle.Score != 1500 {
			t.Errorf("ExactTitle.Score = %v, want 1500", w.Text.ExactTitle.Score)
		}
		if w.Signal.StaticBonus != 80 {
			t.Errorf("StaticBonus = %v, want 80", w.Signal.StaticBonus)
		}
		if w.Text.TitlePrefix.Score != 800 {
			t.Errorf("TitlePrefix.Score = %v, want 800 (default preservado)", w.Text.TitlePrefix.Score)
		}
	})

	t.Run("arquivo ausente degrada para defaults com erro", func(t *testing.T) {
		w, err := LoadCalibration(filepath.Join(t.TempDir(), "nao-existe.json"))
		if err == nil {
			t.Error("LoadCalibration de arquivo ausente não retornou erro")
		}
		if w == nil || w.Text.ExactTitle.Score != 1000 {
			t.Error("LoadCalibration de arquivo ausente não degradou para defaults")
		}
	})

	t.Run("JSON inválido degrada para defaults com erro", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "calibration.json")
		if err := os.WriteFile(path, []byte("{invalido"), 0o644); err != nil {
			t.Fatal(err)
		}

		w, err := LoadCalibration(path)
		if err == nil {
			t.Error("LoadCalibration de JSON inválido não retornou erro")
		}
		if w == nil || w.Signal.FrequencyCap != 500 {
			t.Error("LoadCalibration de JSON inválido não degradou para defaults")
		}
	})
}
