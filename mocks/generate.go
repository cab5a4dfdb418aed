package mocks

//go:generate mockgen -destination=./mock_strategy.go -package=mocks github.com/rxtech-lab/argo-crypto-trader/internal/strategy Strategy
