package service

import (
	"FlashVault/internal/pipeline"
	"FlashVault/internal/repo"
	"FlashVault/internal/transcode"
	"FlashVault/model"
	"FlashVault/utils"
	"errors"
	"fmt"
	"time"

	"golang.org/x/net/context"
	"gorm.io/gorm"
)

const deckCardsCacheTTL = 5 * time.Minute

// FaceUpload carries one freshly uploaded face image.
type FaceUpload struct {
	Filename string
	Data     []byte
}

// CardInput is the caller-supplied state for a card save.
type CardInput struct {
	Question       string
	Answer         string
	QuestionUpload *FaceUpload
	AnswerUpload   *FaceUpload
}

// LoadCardOwner walks Deck -> Subject -> creator to find the username that
// namespaces the card's blobs. An incomplete chain is an owner-context
// failure, not a generic lookup error.
func LoadCardOwner(deckId uint64) (string, error) {
	var deck model.Deck
	if err := repo.Db.Where("id = ?", deckId).First(&deck).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", pipeline.ErrMissingOwnerContext
		}
		return "", err
	}
	var subject model.Subject
	if err := repo.Db.Where("id = ?", deck.SubjectID).First(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", pipeline.ErrMissingOwnerContext
		}
		return "", err
	}
	var user model.User
	if err := repo.Db.Where("id = ?", subject.CreatorID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", pipeline.ErrMissingOwnerContext
		}
		return "", err
	}
	return user.UserName, nil
}

// applyCardInput sanitizes the face text, validates both faces, pushes each
// new upload through the attachment pipeline at the card bound and rewrites
// the image references. Face validation runs before any image work so an
// empty face fails cheaply; it runs again on the final state so a face
// cannot end up empty after processing. ownerFn is only consulted when a new
// upload is present, so a re-save without new bytes touches no image work
// at all.
func applyCardInput(ctx context.Context, ownerFn func() (string, error), card *model.Card, in CardInput) error {
	card.Question = utils.SanitizeCardText(in.Question)
	card.Answer = utils.SanitizeCardText(in.Answer)

	if err := pipeline.ValidateFace(card.Question, card.QuestionImage, in.QuestionUpload != nil); err != nil {
		return fmt.Errorf("question: %w", err)
	}
	if err := pipeline.ValidateFace(card.Answer, card.AnswerImage, in.AnswerUpload != nil); err != nil {
		return fmt.Errorf("answer: %w", err)
	}

	if in.QuestionUpload != nil || in.AnswerUpload != nil {
		owner, err := ownerFn()
		if err != nil {
			return err
		}
		bound := transcode.CardBound()
		if in.QuestionUpload != nil {
			key, err := pipeline.Process(ctx, owner, in.QuestionUpload.Filename, in.QuestionUpload.Data, bound)
			if err != nil {
				return err
			}
			card.QuestionImage = key
		}
		if in.AnswerUpload != nil {
			key, err := pipeline.Process(ctx, owner, in.AnswerUpload.Filename, in.AnswerUpload.Data, bound)
			if err != nil {
				return err
			}
			card.AnswerImage = key
		}
	}

	if err := pipeline.ValidateFace(card.Question, card.QuestionImage, false); err != nil {
		return fmt.Errorf("question: %w", err)
	}
	if err := pipeline.ValidateFace(card.Answer, card.AnswerImage, false); err != nil {
		return fmt.Errorf("answer: %w", err)
	}
	return nil
}

// SaveCard runs one card save: apply the input (validation plus per-face
// pipeline), persist the row, drop the deck's cached card list.
func SaveCard(ctx context.Context, card *model.Card, in CardInput) error {
	ownerFn := func() (string, error) { return LoadCardOwner(card.DeckID) }
	if err := applyCardInput(ctx, ownerFn, card, in); err != nil {
		return err
	}

	// A row failure here leaves any blob written above in place. Accepted:
	// the next save under the same filename overwrites it.
	if err := repo.Db.Save(card).Error; err != nil {
		return err
	}
	_ = utils.InvalidateDeckCardsCache(ctx, card.DeckID)
	return nil
}

// GetCard finds a card by ID.
func GetCard(id uint64) (*model.Card, error) {
	var card model.Card
	if err := repo.Db.Where("id = ?", id).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// ListCardsByDeck returns all cards in a deck, cached per deck.
func ListCardsByDeck(ctx context.Context, deckId uint64) ([]model.Card, error) {
	if cached, ok := utils.GetDeckCardsFromCache(ctx, deckId); ok {
		return cached, nil
	}
	cards := make([]model.Card, 0)
	if err := repo.Db.Where("deck_id = ?", deckId).Order("created_at asc").Find(&cards).Error; err != nil {
		return nil, err
	}
	_ = utils.SetDeckCardsToCache(ctx, deckId, cards, deckCardsCacheTTL)
	return cards, nil
}

// DeleteCard removes a card row. Its blobs stay in the media store.
func DeleteCard(id uint64) error {
	card, err := GetCard(id)
	if err != nil {
		return err
	}
	if err := repo.Db.Delete(&model.Card{}, id).Error; err != nil {
		return err
	}
	_ = utils.InvalidateDeckCardsCache(context.Background(), card.DeckID)
	return nil
}

// CardOwnerID returns the creator of the subject a card belongs to.
func CardOwnerID(cardId uint64) (uint64, error) {
	card, err := GetCard(cardId)
	if err != nil {
		return 0, err
	}
	return DeckOwnerID(card.DeckID)
}
