package services

import (
	"context"

	"bazaarBack/internal/models"
	"bazaarBack/internal/repositories"
)

type MessageService struct {
	MessageRepo *repositories.MessageRepository
}

func (s *MessageService) CreateMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	return s.MessageRepo.CreateMessage(ctx, msg)
}

func (s *MessageService) GetMessageByID(ctx context.Context, id int) (models.Message, error) {
	return s.MessageRepo.GetMessageByID(ctx, id)
}

func (s *MessageService) GetMessagesForAd(ctx context.Context, adID, limit, offset int) ([]models.Message, error) {
	return s.MessageRepo.GetMessagesForAd(ctx, adID, limit, offset)
}

func (s *MessageService) GetConversation(ctx context.Context, user1ID, user2ID, adID, limit, offset int) ([]models.Message, error) {
	return s.MessageRepo.GetConversation(ctx, user1ID, user2ID, adID, limit, offset)
}

func (s *MessageService) GetMessagesByUser(ctx context.Context, userID, limit, offset int) ([]models.Message, error) {
	return s.MessageRepo.GetMessagesByUser(ctx, userID, limit, offset)
}

func (s *MessageService) UpdateMessage(ctx context.Context, id int, upd models.MessageUpdate) (models.Message, error) {
	return s.MessageRepo.UpdateMessage(ctx, id, upd)
}

func (s *MessageService) DeleteMessage(ctx context.Context, id int) error {
	return s.MessageRepo.DeleteMessage(ctx, id)
}
