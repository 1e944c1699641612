package config

import "time"

// EngineConfig exposes the switching thresholds as tunables.
type EngineConfig struct {
	AutoLockDuration time.Duration
	HotnessDelta     int
	OverrideHotness  int
}

func loadEngine() EngineConfig {
	return EngineConfig{
		AutoLockDuration: durationEnvOrDefault(envAutoLock, defaultAutoLock),
		HotnessDelta:     intEnvOrDefault(envHotnessDelta, defaultHotnessDelta),
		OverrideHotness:  intEnvOrDefault(envHotnessOverride, defaultHotnessOverride),
	}
}
