package usecase

import (
	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
)

// NewTokenRegistry creates a registry with a custom random source.
func NewTokenRegistry(builtins []domain.TokenEntry, config domain.TokensConfig, randIntN func(n int) int) mvc.TokenRegistry {
	return newTokenRegistry(builtins, config, randIntN)
}
