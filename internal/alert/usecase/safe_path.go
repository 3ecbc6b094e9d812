package usecase

import (
	"context"

	"safespace-srv/internal/alert"
)

const placeholderLocation = "User Location"

var placeholderPath = [...]string{
	"Main Street (well-lit)",
	"Police Station nearby",
	"Avoid Dark Alley",
}

func (uc *implUseCase) SuggestSafePath(ctx context.Context) alert.SafePath {
	path := make([]string, len(placeholderPath))
	copy(path, placeholderPath[:])

	return alert.SafePath{
		CurrentLocation: placeholderLocation,
		SuggestedPath:   path,
	}
}
