package handler

import (
	"FlashVault/config"
	"FlashVault/internal/dto"
	"FlashVault/internal/pipeline"
	"FlashVault/internal/service"
	"FlashVault/internal/transcode"
	"FlashVault/model"
	"FlashVault/utils"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// readFaceUpload pulls one optional image file out of the multipart form.
// A missing file is not an error; an oversized one is.
func readFaceUpload(c *gin.Context, field string) (*service.FaceUpload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	if max := config.MediaConfigInstance.MaxUploadBytes; fileHeader.Size > max {
		return nil, fmt.Errorf("%s exceeds the %d byte upload limit", field, max)
	}
	data, err := readMultipartFile(fileHeader)
	if err != nil {
		return nil, err
	}
	return &service.FaceUpload{
		Filename: utils.SanitizeHeaderFilename(fileHeader.Filename),
		Data:     data,
	}, nil
}

func readMultipartFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// cardInputError reports whether err is the client's fault.
func cardInputError(err error) bool {
	return errors.Is(err, pipeline.ErrMissingContent) ||
		errors.Is(err, pipeline.ErrBadFilename) ||
		errors.Is(err, pipeline.ErrMissingOwnerContext) ||
		errors.Is(err, transcode.ErrDecode)
}

// CreateCard creates a card in a deck the user owns. Text fields arrive as
// multipart form values alongside the optional face images.
func CreateCard(c *gin.Context) {
	deckId, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ownerId, err := service.DeckOwnerID(deckId)
	if !requireOwner(c, ownerId, err) {
		return
	}

	in := service.CardInput{
		Question: c.PostForm("question"),
		Answer:   c.PostForm("answer"),
	}
	if in.QuestionUpload, err = readFaceUpload(c, "question_image"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.AnswerUpload, err = readFaceUpload(c, "answer_image"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card := model.Card{DeckID: deckId}
	if err := service.SaveCard(c.Request.Context(), &card, in); err != nil {
		if cardInputError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.Success(c, dto.NewCardResponse(&card))
}

// UpdateCard edits a card's text and optionally replaces face images.
func UpdateCard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ownerId, err := service.CardOwnerID(id)
	if !requireOwner(c, ownerId, err) {
		return
	}
	card, err := service.GetCard(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	in := service.CardInput{
		Question: c.PostForm("question"),
		Answer:   c.PostForm("answer"),
	}
	if in.QuestionUpload, err = readFaceUpload(c, "question_image"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.AnswerUpload, err = readFaceUpload(c, "answer_image"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := service.SaveCard(c.Request.Context(), card, in); err != nil {
		if cardInputError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.Success(c, dto.NewCardResponse(card))
}

// ListCards lists the cards of a deck the user owns.
func ListCards(c *gin.Context) {
	deckId, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ownerId, err := service.DeckOwnerID(deckId)
	if !requireOwner(c, ownerId, err) {
		return
	}
	cards, err := service.ListCardsByDeck(c.Request.Context(), deckId)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	resp := make([]dto.CardResponse, 0, len(cards))
	for i := range cards {
		resp = append(resp, dto.NewCardResponse(&cards[i]))
	}
	utils.Success(c, resp)
}

// GetCard returns one card the user owns.
func GetCard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ownerId, err := service.CardOwnerID(id)
	if !requireOwner(c, ownerId, err) {
		return
	}
	card, err := service.GetCard(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	utils.Success(c, dto.NewCardResponse(card))
}

// DeleteCard removes a card row. Stored blobs are left in place.
func DeleteCard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ownerId, err := service.CardOwnerID(id)
	if !requireOwner(c, ownerId, err) {
		return
	}
	if err := service.DeleteCard(id); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}
