package service

import (
	"FlashVault/model"
	"context"
	"math/rand"
)

// QuizCards returns the deck's cards in a fresh random order, one shuffle
// per call, so every quiz session walks the deck differently.
func QuizCards(ctx context.Context, deckId uint64) ([]model.Card, error) {
	cards, err := ListCardsByDeck(ctx, deckId)
	if err != nil {
		return nil, err
	}
	shuffled := make([]model.Card, len(cards))
	copy(shuffled, cards)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled, nil
}
