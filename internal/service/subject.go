package service

import (
	"FlashVault/internal/repo"
	"FlashVault/model"
)

// CreateSubject inserts a subject record.
func CreateSubject(subject *model.Subject) error {
	return repo.Db.Create(subject).Error
}

// GetSubject finds a subject by ID.
func GetSubject(id uint64) (*model.Subject, error) {
	var subject model.Subject
	if err := repo.Db.Where("id = ?", id).First(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

// ListSubjectsByCreator returns all subjects a user created.
func ListSubjectsByCreator(userId uint64) ([]model.Subject, error) {
	subjects := make([]model.Subject, 0)
	if err := repo.Db.Where("creator_id = ?", userId).Order("created_at asc").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

// UpdateSubjectName renames a subject.
func UpdateSubjectName(id uint64, name string) error {
	return repo.Db.Model(&model.Subject{}).Where("id = ?", id).Update("name", name).Error
}

// DeleteSubject removes a subject. Decks and cards cascade at the database;
// blobs referenced by cascaded cards stay in the media store.
func DeleteSubject(id uint64) error {
	return repo.Db.Delete(&model.Subject{}, id).Error
}

// SubjectOwnerID returns the creator of a subject.
func SubjectOwnerID(subjectId uint64) (uint64, error) {
	var subject model.Subject
	if err := repo.Db.Where("id = ?", subjectId).First(&subject).Error; err != nil {
		return 0, err
	}
	return subject.CreatorID, nil
}
