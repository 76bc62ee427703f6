package audio

import (
	"os"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/lixenwraith/gogo-ame/parameter"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	CueVolumes   map[Cue]float64
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
		CueVolumes: map[Cue]float64{
			CueCombine:    0.8,
			CueEliminate:  0.7,
			CueDegrade:    0.6,
			CueDestroy:    0.6,
			CueBounce:     0.3,
			CueLifeGained: 0.8,
			CueLifeLost:   0.9,
			CueLevelUp:    0.9,
			CueWindSnap:   0.4,
			CueGameOver:   1.0,
		},
	}
}

// Volume is the effective linear volume of cue
func (c *AudioConfig) Volume(cue Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}

// LoadAudioConfig overlays environment settings on the defaults
//
//	AME_AUDIO_ENABLED  bool
//	AME_MASTER_VOLUME  0-100
//	AME_CUE_VOLUMES    JSON object of cue name to 0.0-1.0, e.g. {"bounce":0}
//	AME_SAMPLE_RATE    Hz
func LoadAudioConfig(log *zap.Logger) *AudioConfig {
	if log == nil {
		log = zap.NewNop()
	}
	cfg := DefaultAudioConfig()

	if v := os.Getenv("AME_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		} else {
			log.Warn("bad AME_AUDIO_ENABLED", zap.Error(err))
		}
	}

	if v := os.Getenv("AME_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MasterVolume = min(max(float64(n)/100, 0), 1)
		} else {
			log.Warn("bad AME_MASTER_VOLUME", zap.Error(err))
		}
	}

	if v := os.Getenv("AME_CUE_VOLUMES"); v != "" {
		var vols map[string]float64
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(v, &vols); err != nil {
			log.Warn("bad AME_CUE_VOLUMES", zap.Error(err))
		}
		for name, vol := range vols {
			if cue, ok := ParseCue(name); ok {
				cfg.CueVolumes[cue] = vol
			} else {
				log.Warn("unknown cue in AME_CUE_VOLUMES", zap.String("cue", name))
			}
		}
	}

	if v := os.Getenv("AME_SAMPLE_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SampleRate = n
		}
	}

	return cfg
}
