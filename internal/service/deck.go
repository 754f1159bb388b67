package service

import (
	"FlashVault/internal/repo"
	"FlashVault/model"
	"FlashVault/utils"
	"context"
)

// CreateDeck inserts a deck record.
func CreateDeck(deck *model.Deck) error {
	return repo.Db.Create(deck).Error
}

// GetDeck finds a deck by ID.
func GetDeck(id uint64) (*model.Deck, error) {
	var deck model.Deck
	if err := repo.Db.Where("id = ?", id).First(&deck).Error; err != nil {
		return nil, err
	}
	return &deck, nil
}

// ListDecksBySubject returns all decks in a subject.
func ListDecksBySubject(subjectId uint64) ([]model.Deck, error) {
	decks := make([]model.Deck, 0)
	if err := repo.Db.Where("subject_id = ?", subjectId).Order("created_at asc").Find(&decks).Error; err != nil {
		return nil, err
	}
	return decks, nil
}

// UpdateDeck renames a deck and updates its description.
func UpdateDeck(id uint64, name, description string) error {
	return repo.Db.Model(&model.Deck{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        name,
		"description": description,
	}).Error
}

// DeleteDeck removes a deck. Cards cascade at the database; their blobs
// stay in the media store.
func DeleteDeck(id uint64) error {
	if err := repo.Db.Delete(&model.Deck{}, id).Error; err != nil {
		return err
	}
	_ = utils.InvalidateDeckCardsCache(context.Background(), id)
	return nil
}

// DeckOwnerID returns the creator of the subject a deck belongs to.
func DeckOwnerID(deckId uint64) (uint64, error) {
	var deck model.Deck
	if err := repo.Db.Where("id = ?", deckId).First(&deck).Error; err != nil {
		return 0, err
	}
	return SubjectOwnerID(deck.SubjectID)
}
