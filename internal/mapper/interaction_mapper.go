package mapper

import (
	"askmedix-be/internal/entity"
	"askmedix-be/internal/model"
)

type InteractionMapper struct{}

func NewInteractionMapper() *InteractionMapper {
	return &InteractionMapper{}
}

func (m *InteractionMapper) ToEntity(i *model.Interaction) *entity.Interaction {
	if i == nil {
		return nil
	}
	return &entity.Interaction{
		Id:        i.Id,
		Question:  i.Question,
		Answer:    i.Answer,
		CreatedAt: i.CreatedAt,
	}
}

func (m *InteractionMapper) ToModel(i *entity.Interaction) *model.Interaction {
	if i == nil {
		return nil
	}
	return &model.Interaction{
		Id:        i.Id,
		Question:  i.Question,
		Answer:    i.Answer,
		CreatedAt: i.CreatedAt,
	}
}
