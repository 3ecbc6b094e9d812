// Package mocks holds gomock mocks for the service's outbound interfaces.
//
// Regenerate after interface changes with:
//
//	go generate ./internal/mocks
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=notifier_mock.go safespace-srv/internal/alert Notifier
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=discord_mock.go safespace-srv/pkg/discord IDiscord
